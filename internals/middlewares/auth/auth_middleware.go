// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "santri_backend/internals/features/users/auth/service"
	waliAuthService "santri_backend/internals/features/wali/auth/service"
	"santri_backend/internals/features/wali/auth/session"
	helperAuth "santri_backend/internals/helpers/auth"
)

type IdentityConfig struct {
	DB       *gorm.DB
	Sessions *session.Store // nil → sesi wali tidak tersedia
	Secret   string
}

// LoadIdentity membaca dua sumber sesi (JWT staff & cookie wali) lalu
// menyimpan satu Identity di locals. Tidak pernah menolak request; itu tugas Guard.
func LoadIdentity(cfg IdentityConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		var staff *helperAuth.StaffIdentity
		if raw := helperAuth.RawAccessToken(c); raw != "" {
			c.Locals(helperAuth.LocRawToken, raw)
			s, err := authService.ResolveStaff(ctx, cfg.DB, cfg.Secret, raw)
			if err != nil {
				log.Printf("[ERROR] resolve staff: %v", err)
			}
			staff = s
		}

		var parent *helperAuth.ParentIdentity
		if sid := c.Cookies(session.CookieName); sid != "" && cfg.Sessions != nil {
			sess, err := cfg.Sessions.Get(ctx, sid)
			switch {
			case err == nil:
				p, err := waliAuthService.ResolveParent(ctx, cfg.DB, sess.WaliID, sess.Phone)
				if err != nil {
					log.Printf("[ERROR] resolve akun wali: %v", err)
				}
				parent = p
			case !errors.Is(err, session.ErrNotFound):
				log.Printf("[ERROR] resolve sesi wali: %v", err)
			}
		}

		helperAuth.SetIdentity(c, helperAuth.ResolveIdentity(staff, parent, c.Path()))
		return c.Next()
	}
}
