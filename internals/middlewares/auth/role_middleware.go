package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "santri_backend/internals/helpers"
	helperAuth "santri_backend/internals/helpers/auth"
)

// Guard menerapkan AccessTable. Mismatch → 303 ke halaman yang diizinkan.
func Guard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := helperAuth.Authorize(helperAuth.GetIdentity(c), c.Path())
		if d.Allowed() {
			return c.Next()
		}
		return helper.JsonRedirect(c, d.Target)
	}
}

// RequireStaff untuk endpoint di luar AccessTable yang tetap butuh sesi staff (mis. /api/auth/me).
// roles kosong = semua role staff.
func RequireStaff(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := helperAuth.GetIdentity(c)
		if !id.IsStaff() {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Silakan login terlebih dahulu")
		}
		if len(roles) == 0 {
			return c.Next()
		}
		for _, allowed := range roles {
			if id.Staff.Role == allowed {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki akses ke fitur ini")
	}
}

