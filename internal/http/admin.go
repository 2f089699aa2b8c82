package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/freshbox-tech/Freshbox-admin/internal/middlewares"
	"github.com/freshbox-tech/Freshbox-admin/internal/models"
	"github.com/freshbox-tech/Freshbox-admin/internal/services"
)

// Login verifies admin credentials and issues a session token both as an
// HTTP-only cookie and in the response body.
func Login(w http.ResponseWriter, r *http.Request) {
	creds := middlewares.GetParsedJSONData[models.Credentials](w, r)
	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)
	jwtService := middlewares.GetServiceFromContext[models.JWTService](w, r, middlewares.JwtServiceKey)

	if creds.Email == nil || *creds.Email == "" || creds.Password == nil || *creds.Password == "" {
		middlewares.EncodeJSONError(w, "Request doesn't contain email or password", http.StatusBadRequest)
		return
	}

	admin, err := (*authService).Login(r.Context(), creds)
	if err != nil {
		if errors.Is(err, services.ErrAdminIsNotExist) || errors.Is(err, services.ErrPasswordIsIncorrect) {
			middlewares.EncodeJSONError(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}

		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during login: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	token, err := (*jwtService).GenerateJWT(admin.Email)
	if err != nil {
		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during generating token: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success": true,
		"user":    admin,
		"token":   token,
	}, http.StatusOK)
}

func SendResetCode(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.ResetRequest](w, r)
	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)

	if data.Email == "" {
		middlewares.EncodeJSONError(w, "Email must not be empty", http.StatusBadRequest)
		return
	}

	if err := (*authService).SendResetCode(r.Context(), data.Email); err != nil {
		// Respond 200 even for unknown accounts so the endpoint does not
		// leak which emails have admin access.
		if errors.Is(err, services.ErrAdminIsNotExist) {
			middlewares.EncodeJSONResponse(w, map[string]interface{}{"success": true}, http.StatusOK)
			return
		}

		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during sending reset code: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{"success": true}, http.StatusOK)
}

func ConfirmResetCode(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.ResetConfirm](w, r)
	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)

	if data.Email == "" || data.Code == "" {
		middlewares.EncodeJSONError(w, "Email and code must not be empty", http.StatusBadRequest)
		return
	}

	if err := (*authService).ConfirmResetCode(r.Context(), data.Email, data.Code); err != nil {
		if errors.Is(err, services.ErrResetCodeIsInvalid) {
			middlewares.EncodeJSONError(w, "Reset code is invalid or expired", http.StatusUnauthorized)
			return
		}

		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during confirming reset code: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{"success": true}, http.StatusOK)
}

// ChangePassword rechecks the reset code before storing the new hash, so
// the unauthenticated reset flow cannot be skipped ahead.
func ChangePassword(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.PasswordChange](w, r)
	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)

	if data.Email == "" || data.Code == "" || data.NewPassword == "" {
		middlewares.EncodeJSONError(w, "Email, code and new password must not be empty", http.StatusBadRequest)
		return
	}

	if err := (*authService).ConfirmResetCode(r.Context(), data.Email, data.Code); err != nil {
		if errors.Is(err, services.ErrResetCodeIsInvalid) {
			middlewares.EncodeJSONError(w, "Reset code is invalid or expired", http.StatusUnauthorized)
			return
		}

		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during confirming reset code: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	if err := (*authService).ChangePassword(r.Context(), data.Email, data.NewPassword); err != nil {
		if errors.Is(err, services.ErrAdminIsNotExist) {
			middlewares.EncodeJSONError(w, "Admin does not exist", http.StatusNotFound)
			return
		}

		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during changing password: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{"success": true}, http.StatusOK)
}

func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.AdminUpdate](w, r)
	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)

	admin := middlewares.GetAdminFromContext(w, r)
	if admin == nil {
		return
	}
	data.ID = admin.ID

	updated, err := (*authService).UpdateProfile(r.Context(), data)
	if err != nil {
		if errors.Is(err, services.ErrAdminIsNotExist) {
			middlewares.EncodeJSONError(w, "Admin does not exist", http.StatusNotFound)
			return
		}

		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during updating profile: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success": true,
		"user":    updated,
	}, http.StatusOK)
}
