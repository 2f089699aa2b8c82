package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/freshbox-tech/Freshbox-admin/internal/database"
	"github.com/freshbox-tech/Freshbox-admin/internal/logger"
	"github.com/freshbox-tech/Freshbox-admin/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAdminIsNotExist     = errors.New("admin does not exist")
	ErrPasswordIsIncorrect = errors.New("password is incorrect")
	ErrResetCodeIsInvalid  = errors.New("reset code is invalid or expired")
)

const resetCodeTTL = 15 * time.Minute

// AuthService handles console operator accounts: login, password reset by
// emailed code, and profile updates. Delivery of the code itself is the
// mail collaborator's job; this service only issues and checks codes.
type AuthService struct {
	storage authStorage
}

type authStorage interface {
	FindAdmin(ctx context.Context, email string) (*models.Admin, error)
	UpdateAdmin(ctx context.Context, admin models.Admin) error
	UpdateAdminHash(ctx context.Context, email, hash string) error
	SaveResetCode(ctx context.Context, email, code string, expiresAt time.Time) error
	FindResetCode(ctx context.Context, email string) (string, time.Time, error)
	DeleteResetCode(ctx context.Context, email string) error
}

func NewAuthService(storage authStorage) *AuthService {
	return &AuthService{storage: storage}
}

// Login verifies credentials and returns the admin account.
func (auth *AuthService) Login(ctx context.Context, creds models.Credentials) (*models.Admin, error) {
	if err := validateCredentials(creds); err != nil {
		return nil, err
	}

	admin, err := auth.storage.FindAdmin(ctx, *creds.Email)
	if err != nil {
		return nil, fmt.Errorf("error while looking up admin: %w", err)
	}

	if admin == nil {
		return nil, ErrAdminIsNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Hash), []byte(*creds.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrPasswordIsIncorrect
		}
		return nil, fmt.Errorf("error while comparing passwords: %w", err)
	}

	return admin, nil
}

// SendResetCode issues a fresh six-digit code with a short expiry,
// replacing any outstanding one for the same account.
func (auth *AuthService) SendResetCode(ctx context.Context, email string) error {
	admin, err := auth.storage.FindAdmin(ctx, email)
	if err != nil {
		return fmt.Errorf("error while looking up admin: %w", err)
	}

	if admin == nil {
		return ErrAdminIsNotExist
	}

	code, err := generateResetCode()
	if err != nil {
		return fmt.Errorf("error while generating reset code: %w", err)
	}

	if err := auth.storage.SaveResetCode(ctx, email, code, time.Now().Add(resetCodeTTL)); err != nil {
		return err
	}

	logger.Log.Info("reset code issued", zap.String("email", email))

	return nil
}

// ConfirmResetCode checks a submitted code against the stored one.
func (auth *AuthService) ConfirmResetCode(ctx context.Context, email, code string) error {
	stored, expiresAt, err := auth.storage.FindResetCode(ctx, email)
	if err != nil {
		return err
	}

	if stored == "" || stored != code || time.Now().After(expiresAt) {
		return ErrResetCodeIsInvalid
	}

	return nil
}

// ChangePassword rehashes and stores the new password, then burns the
// outstanding reset code.
func (auth *AuthService) ChangePassword(ctx context.Context, email, newPassword string) error {
	if newPassword == "" {
		return errors.New("new password must not be empty")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error while hashing password: %w", err)
	}

	if err := auth.storage.UpdateAdminHash(ctx, email, string(hashedPassword)); err != nil {
		if errors.Is(err, database.ErrAdminNotFound) {
			return ErrAdminIsNotExist
		}
		return err
	}

	if err := auth.storage.DeleteResetCode(ctx, email); err != nil {
		logger.Log.Error("failed to delete redeemed reset code", zap.String("email", email), zap.Error(err))
	}

	return nil
}

// UpdateProfile persists the editable fields and returns the fresh record.
func (auth *AuthService) UpdateProfile(ctx context.Context, update models.AdminUpdate) (*models.Admin, error) {
	if update.ID == "" {
		return nil, errors.New("admin id must not be empty")
	}

	admin := models.Admin{ID: update.ID}
	if update.Name != nil {
		admin.Name = *update.Name
	}
	if update.Email != nil {
		admin.Email = *update.Email
	}
	if update.PhoneNumber != nil {
		admin.PhoneNumber = *update.PhoneNumber
	}

	if err := auth.storage.UpdateAdmin(ctx, admin); err != nil {
		if errors.Is(err, database.ErrAdminNotFound) {
			return nil, ErrAdminIsNotExist
		}
		return nil, err
	}

	updated, err := auth.storage.FindAdmin(ctx, admin.Email)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrAdminIsNotExist
	}

	return updated, nil
}

// GetAdmin resolves a session subject back to an account.
func (auth *AuthService) GetAdmin(ctx context.Context, email string) (*models.Admin, error) {
	admin, err := auth.storage.FindAdmin(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error while looking up admin: %w", err)
	}

	if admin == nil {
		return nil, ErrAdminIsNotExist
	}

	return admin, nil
}

func validateCredentials(creds models.Credentials) error {
	if creds.Email == nil || *creds.Email == "" {
		return errors.New("email must not be empty")
	}
	if creds.Password == nil || *creds.Password == "" {
		return errors.New("password must not be empty")
	}
	return nil
}

func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
