package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"santri_backend/internals/configs"
	waliAuthDTO "santri_backend/internals/features/wali/auth/dto"
	waliAuthService "santri_backend/internals/features/wali/auth/service"
	"santri_backend/internals/features/wali/auth/session"
	helper "santri_backend/internals/helpers"
	helperAuth "santri_backend/internals/helpers/auth"
)

type WaliAuthController struct {
	DB       *gorm.DB
	Sessions *session.Store
}

func NewWaliAuthController(db *gorm.DB, sessions *session.Store) *WaliAuthController {
	return &WaliAuthController{DB: db, Sessions: sessions}
}

func (h *WaliAuthController) setCookie(c *fiber.Ctx, value string, expires time.Time) {
	ck := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    value,
		HTTPOnly: true,
		Secure:   configs.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		Expires:  expires,
	}
	if value == "" {
		ck.MaxAge = -1
	}
	c.Cookie(ck)
}

// POST /api/wali/auth/login
func (h *WaliAuthController) Login(c *fiber.Ctx) error {
	var req waliAuthDTO.WaliLoginRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	w, err := waliAuthService.LoginWali(c.UserContext(), h.DB, req.Phone, req.Password)
	switch {
	case errors.Is(err, waliAuthService.ErrInvalidCredentials):
		return helper.JsonError(c, fiber.StatusUnauthorized, "Nomor HP atau password salah")
	case errors.Is(err, waliAuthService.ErrInactiveAccount):
		return helper.JsonError(c, fiber.StatusForbidden, "Akun wali telah dinonaktifkan")
	case err != nil:
		log.Printf("[ERROR] login wali: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	sess, err := h.Sessions.Create(c.UserContext(), w.ID, w.Phone, w.Name)
	if err != nil {
		log.Printf("[ERROR] buat sesi wali: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat sesi")
	}
	h.setCookie(c, sess.ID, time.Now().Add(h.Sessions.TTL()))

	return helper.JsonOK(c, "Login berhasil", waliAuthDTO.WaliLoginResponse{
		User:       waliAuthDTO.WaliMeResponse{ID: w.ID, Phone: w.Phone, Name: w.Name},
		RedirectTo: helperAuth.ParentHomePath,
	})
}

// POST /api/wali/auth/logout (idempotent)
func (h *WaliAuthController) Logout(c *fiber.Ctx) error {
	if sid := c.Cookies(session.CookieName); sid != "" {
		if err := h.Sessions.Delete(c.UserContext(), sid); err != nil {
			log.Printf("[WARN] hapus sesi wali: %v", err)
		}
	}
	h.setCookie(c, "", time.Now().Add(-time.Hour))
	return helper.JsonOK(c, "Logout berhasil", fiber.Map{"redirect_to": helperAuth.ParentLoginPath})
}

// GET /api/wali/auth/me
func (h *WaliAuthController) Me(c *fiber.Ctx) error {
	p, err := helperAuth.MustParent(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Profil wali", waliAuthDTO.WaliMeResponse{ID: p.WaliID, Phone: p.Phone, Name: p.Name})
}

// POST /api/wali/auth/change-password
func (h *WaliAuthController) ChangePassword(c *fiber.Ctx) error {
	p, err := helperAuth.MustParent(c)
	if err != nil {
		return err
	}
	var req waliAuthDTO.WaliChangePasswordRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	changed, err := waliAuthService.ChangeWaliPassword(c.UserContext(), h.DB, p.WaliID, req.OldPassword, req.NewPassword)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun wali tidak ditemukan")
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah password")
	case !changed:
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	}
	return helper.JsonUpdated(c, "Password berhasil diubah", fiber.Map{"success": true})
}
