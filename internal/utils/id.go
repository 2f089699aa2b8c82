package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewID returns an opaque identifier like "ORD-9f2c41d0a3b7". Identifiers
// are server-assigned and immutable once handed out.
func NewID(prefix string) string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(b))
}
