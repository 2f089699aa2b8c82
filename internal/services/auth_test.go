package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/freshbox-tech/Freshbox-admin/internal/models"
)

type authStorageStub struct {
	admins map[string]*models.Admin
	codes  map[string]string
	expiry map[string]time.Time
}

func newAuthStorageStub() *authStorageStub {
	return &authStorageStub{
		admins: map[string]*models.Admin{},
		codes:  map[string]string{},
		expiry: map[string]time.Time{},
	}
}

func (s *authStorageStub) FindAdmin(ctx context.Context, email string) (*models.Admin, error) {
	admin, ok := s.admins[email]
	if !ok {
		return nil, nil
	}
	copied := *admin
	return &copied, nil
}

func (s *authStorageStub) UpdateAdmin(ctx context.Context, admin models.Admin) error {
	for _, existing := range s.admins {
		if existing.ID == admin.ID {
			existing.Name = admin.Name
			existing.PhoneNumber = admin.PhoneNumber
			return nil
		}
	}
	return nil
}

func (s *authStorageStub) UpdateAdminHash(ctx context.Context, email, hash string) error {
	if admin, ok := s.admins[email]; ok {
		admin.Hash = hash
	}
	return nil
}

func (s *authStorageStub) SaveResetCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	s.codes[email] = code
	s.expiry[email] = expiresAt
	return nil
}

func (s *authStorageStub) FindResetCode(ctx context.Context, email string) (string, time.Time, error) {
	return s.codes[email], s.expiry[email], nil
}

func (s *authStorageStub) DeleteResetCode(ctx context.Context, email string) error {
	delete(s.codes, email)
	delete(s.expiry, email)
	return nil
}

func seedAdmin(t *testing.T, storage *authStorageStub, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	storage.admins[email] = &models.Admin{ID: "ADM-1", Name: "Robin", Email: email, Hash: string(hash)}
}

func strPtr(s string) *string { return &s }

func TestLogin(t *testing.T) {
	storage := newAuthStorageStub()
	seedAdmin(t, storage, "ops@freshbox.test", "secret")
	service := NewAuthService(storage)

	t.Run("accepts correct credentials", func(t *testing.T) {
		admin, err := service.Login(context.Background(), models.Credentials{
			Email:    strPtr("ops@freshbox.test"),
			Password: strPtr("secret"),
		})
		require.NoError(t, err)
		assert.Equal(t, "ADM-1", admin.ID)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		_, err := service.Login(context.Background(), models.Credentials{
			Email:    strPtr("ops@freshbox.test"),
			Password: strPtr("wrong"),
		})
		assert.ErrorIs(t, err, ErrPasswordIsIncorrect)
	})

	t.Run("rejects unknown admin", func(t *testing.T) {
		_, err := service.Login(context.Background(), models.Credentials{
			Email:    strPtr("nobody@freshbox.test"),
			Password: strPtr("secret"),
		})
		assert.ErrorIs(t, err, ErrAdminIsNotExist)
	})
}

func TestResetCodeFlow(t *testing.T) {
	storage := newAuthStorageStub()
	seedAdmin(t, storage, "ops@freshbox.test", "secret")
	service := NewAuthService(storage)
	ctx := context.Background()

	require.NoError(t, service.SendResetCode(ctx, "ops@freshbox.test"))

	code := storage.codes["ops@freshbox.test"]
	require.Len(t, code, 6)

	t.Run("rejects a wrong code", func(t *testing.T) {
		assert.ErrorIs(t, service.ConfirmResetCode(ctx, "ops@freshbox.test", "000000x"), ErrResetCodeIsInvalid)
	})

	t.Run("accepts the issued code", func(t *testing.T) {
		assert.NoError(t, service.ConfirmResetCode(ctx, "ops@freshbox.test", code))
	})

	t.Run("rejects an expired code", func(t *testing.T) {
		storage.expiry["ops@freshbox.test"] = time.Now().Add(-time.Minute)
		assert.ErrorIs(t, service.ConfirmResetCode(ctx, "ops@freshbox.test", code), ErrResetCodeIsInvalid)
		storage.expiry["ops@freshbox.test"] = time.Now().Add(time.Minute)
	})

	t.Run("change password burns the code", func(t *testing.T) {
		require.NoError(t, service.ChangePassword(ctx, "ops@freshbox.test", "newsecret"))

		_, err := service.Login(ctx, models.Credentials{
			Email:    strPtr("ops@freshbox.test"),
			Password: strPtr("newsecret"),
		})
		assert.NoError(t, err)

		assert.ErrorIs(t, service.ConfirmResetCode(ctx, "ops@freshbox.test", code), ErrResetCodeIsInvalid)
	})
}

func TestSendResetCodeUnknownAdmin(t *testing.T) {
	service := NewAuthService(newAuthStorageStub())
	assert.ErrorIs(t, service.SendResetCode(context.Background(), "ghost@freshbox.test"), ErrAdminIsNotExist)
}
