package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	endpoint      string
	dsn           string
	amqpURL       string
	logLevel      string
	env           string
	authSecretKey string
}

// fileConfig is the optional YAML layer. Anything set here overrides the
// flag defaults; environment variables override both.
type fileConfig struct {
	Endpoint      string `yaml:"endpoint"`
	DSN           string `yaml:"dsn"`
	AmqpURL       string `yaml:"amqpUrl"`
	LogLevel      string `yaml:"logLevel"`
	Env           string `yaml:"env"`
	AuthSecretKey string `yaml:"authSecretKey"`
}

func generateRandomString(length int) string {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func NewConfig() Config {
	var (
		endpoint   string
		dsn        string
		amqpURL    string
		configPath string
	)

	flag.StringVar(&endpoint, "a", "localhost:8090", "address and port to run server")
	flag.StringVar(&dsn, "d", "", "data source name for database connection")
	flag.StringVar(&amqpURL, "q", "", "AMQP broker url for status events (optional)")
	flag.StringVar(&configPath, "c", "", "path to YAML config file (optional)")
	flag.Parse()

	var logLevel, env, authSecretKey string

	if path := os.Getenv("CONFIG"); path != "" {
		configPath = path
	}

	if configPath != "" {
		cfg, err := loadFileConfig(configPath)
		if err != nil {
			log.Fatalf("Config file %s wasn't loaded due to %s", configPath, err)
		}

		if cfg.Endpoint != "" {
			endpoint = cfg.Endpoint
		}
		if cfg.DSN != "" {
			dsn = cfg.DSN
		}
		if cfg.AmqpURL != "" {
			amqpURL = cfg.AmqpURL
		}
		logLevel = cfg.LogLevel
		env = cfg.Env
		authSecretKey = cfg.AuthSecretKey
	}

	if address := os.Getenv("RUN_ADDRESS"); address != "" {
		endpoint = address
	}

	if d := os.Getenv("DATABASE_URI"); d != "" {
		dsn = d
	}

	if q := os.Getenv("AMQP_URL"); q != "" {
		amqpURL = q
	}

	if l := os.Getenv("LOG_LEVEL"); l != "" {
		logLevel = l
	}
	if logLevel == "" {
		logLevel = "error"
	}

	if e := os.Getenv("ENV"); e != "" {
		env = e
	}
	if env == "" {
		env = "production"
	}

	if secret := os.Getenv("AUTH_SECRET_KEY"); secret != "" {
		authSecretKey = secret
	}
	if authSecretKey == "" {
		if env == "production" {
			authSecretKey = generateRandomString(10)
			log.Printf("WARNING: AUTH_SECRET_KEY has to be defined for production environment\n")
		} else {
			authSecretKey = "development-key"
		}
	}

	return Config{
		endpoint,
		dsn,
		amqpURL,
		logLevel,
		env,
		authSecretKey,
	}
}
