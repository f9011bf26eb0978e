package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "santri_backend/internals/features/users/auth/route"
	waliAuthRoute "santri_backend/internals/features/wali/auth/route"
	"santri_backend/internals/features/wali/auth/session"
)

// AuthRoutes: /api/auth (staff) dan /api/wali/auth (wali santri)
func AuthRoutes(api fiber.Router, wali fiber.Router, db *gorm.DB, sessions *session.Store) {
	authRoute.AuthRoutes(api, db)
	waliAuthRoute.WaliAuthRoutes(wali, db, sessions)
}
