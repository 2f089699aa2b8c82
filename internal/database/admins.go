package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/freshbox-tech/Freshbox-admin/internal/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrDuplicateAdmin = errors.New("admin already exists")
	ErrAdminNotFound  = errors.New("admin does not exist")
)

const (
	InsertAdminQuery = `
		INSERT INTO
			admins (id, name, email, phone_number, hash)
		VALUES ($1, $2, $3, $4, $5)
	`
	SelectAdminQuery = `
		SELECT
			id,
			name,
			email,
			phone_number,
			hash
		FROM
			admins
		WHERE
			email = $1
	`
	UpdateAdminQuery = `
		UPDATE
			admins
		SET
			name = $2,
			email = $3,
			phone_number = $4
		WHERE
			id = $1
	`
	UpdateAdminHashQuery = `
		UPDATE
			admins
		SET
			hash = $2
		WHERE
			email = $1
	`
	UpsertResetCodeQuery = `
		INSERT INTO
			admin_reset_codes (email, code, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET code = $2, expires_at = $3
	`
	SelectResetCodeQuery = `
		SELECT
			code,
			expires_at
		FROM
			admin_reset_codes
		WHERE
			email = $1
	`
	DeleteResetCodeQuery = `
		DELETE FROM
			admin_reset_codes
		WHERE
			email = $1
	`
)

// CreateAdmin inserts a console operator account.
func (d *Database) CreateAdmin(ctx context.Context, admin models.Admin) error {
	_, err := d.db.Exec(ctx, InsertAdminQuery, admin.ID, admin.Name, admin.Email, admin.PhoneNumber, admin.Hash)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateAdmin
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// FindAdmin looks an admin up by email. Returns nil without an error when
// no account matches.
func (d *Database) FindAdmin(ctx context.Context, email string) (*models.Admin, error) {
	admin := &models.Admin{}

	err := d.db.QueryRow(ctx, SelectAdminQuery, email).
		Scan(&admin.ID, &admin.Name, &admin.Email, &admin.PhoneNumber, &admin.Hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}

	return admin, nil
}

// UpdateAdmin persists the editable profile fields.
func (d *Database) UpdateAdmin(ctx context.Context, admin models.Admin) error {
	tag, err := d.db.Exec(ctx, UpdateAdminQuery, admin.ID, admin.Name, admin.Email, admin.PhoneNumber)
	if err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAdminNotFound
	}
	return nil
}

// UpdateAdminHash replaces the password hash after a confirmed reset.
func (d *Database) UpdateAdminHash(ctx context.Context, email, hash string) error {
	tag, err := d.db.Exec(ctx, UpdateAdminHashQuery, email, hash)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAdminNotFound
	}
	return nil
}

// SaveResetCode stores the latest reset code for an email, replacing any
// previous one.
func (d *Database) SaveResetCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	if _, err := d.db.Exec(ctx, UpsertResetCodeQuery, email, code, expiresAt); err != nil {
		return fmt.Errorf("failed to save reset code: %w", err)
	}
	return nil
}

// FindResetCode returns the stored code and expiry, or nil time when no
// code is outstanding.
func (d *Database) FindResetCode(ctx context.Context, email string) (string, time.Time, error) {
	var (
		code      string
		expiresAt time.Time
	)

	err := d.db.QueryRow(ctx, SelectResetCodeQuery, email).Scan(&code, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, nil
		}
		return "", time.Time{}, fmt.Errorf("failed to load reset code: %w", err)
	}

	return code, expiresAt, nil
}

// DeleteResetCode drops a redeemed or abandoned code.
func (d *Database) DeleteResetCode(ctx context.Context, email string) error {
	if _, err := d.db.Exec(ctx, DeleteResetCodeQuery, email); err != nil {
		return fmt.Errorf("failed to delete reset code: %w", err)
	}
	return nil
}
