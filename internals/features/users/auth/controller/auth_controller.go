package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"santri_backend/internals/configs"
	authDTO "santri_backend/internals/features/users/auth/dto"
	authRepo "santri_backend/internals/features/users/auth/repository"
	"santri_backend/internals/features/users/auth/service"
	helper "santri_backend/internals/helpers"
	helperAuth "santri_backend/internals/helpers/auth"
)

const accessCookie = "access_token"

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	p, err := service.Authenticate(c.UserContext(), ac.DB, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	case errors.Is(err, service.ErrInactiveAccount):
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	case err != nil:
		log.Printf("[ERROR] login staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	token, exp, err := service.IssueToken(configs.JWTSecret, p, time.Now(), configs.AccessTokenTTL)
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     accessCookie,
		Value:    token,
		HTTPOnly: true,
		Secure:   configs.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		Expires:  exp,
	})

	identity := helperAuth.StaffOf(service.StaffIdentityOf(p))
	return helper.JsonOK(c, "Login berhasil", authDTO.LoginResponse{
		AccessToken: token,
		ExpiresAt:   exp,
		User:        authDTO.NewProfileResponse(p),
		RedirectTo:  helperAuth.HomeFor(identity),
	})
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	raw := helperAuth.RawAccessToken(c)
	fallback := time.Duration(configs.BlacklistTTLDays) * 24 * time.Hour
	if err := service.Logout(c.UserContext(), ac.DB, configs.JWTSecret, raw, time.Now(), fallback); err != nil {
		log.Printf("[WARN] Failed to blacklist token: %v", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     accessCookie,
		Value:    "",
		HTTPOnly: true,
		Secure:   configs.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	staff, err := helperAuth.MustStaff(c)
	if err != nil {
		return err
	}
	p, err := authRepo.FindProfileByID(c.UserContext(), ac.DB, staff.ProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Profil tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.JsonOK(c, "Profil ditemukan", fiber.Map{
		"user":        authDTO.NewProfileResponse(p),
		"redirect_to": helperAuth.HomeFor(helperAuth.GetIdentity(c)),
	})
}

// POST /api/auth/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	staff, err := helperAuth.MustStaff(c)
	if err != nil {
		return err
	}
	var req authDTO.ChangePasswordRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	err = service.ChangePassword(c.UserContext(), ac.DB, staff.ProfileID, req.CurrentPassword, req.NewPassword)
	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusUnauthorized, "Profil tidak ditemukan")
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah password")
	}
	return helper.JsonUpdated(c, "Password berhasil diubah", nil)
}
