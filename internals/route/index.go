// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"santri_backend/internals/configs"
	"santri_backend/internals/features/wali/auth/session"
	authMiddleware "santri_backend/internals/middlewares/auth"
	routeDetails "santri_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes: identitas dibaca sekali per request, lalu Guard menerapkan AccessTable
// sebelum handler mana pun dijalankan.
func SetupRoutes(app *fiber.App, db *gorm.DB, sessions *session.Store) {
	startTime = time.Now()

	app.Use(authMiddleware.LoadIdentity(authMiddleware.IdentityConfig{
		DB:       db,
		Sessions: sessions,
		Secret:   configs.JWTSecret,
	}))
	app.Use(authMiddleware.Guard())

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)
	routeDetails.DashboardDispatchRoutes(app, db)

	api := app.Group("/api")
	admin := api.Group("/admin")
	ustadz := api.Group("/ustadz")
	wali := api.Group("/wali")

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(api, wali, db, sessions)

	log.Println("[INFO] Mounting ADMIN routes...")
	routeDetails.PesantrenAdminRoutes(admin, db, sessions)

	log.Println("[INFO] Mounting USTADZ routes...")
	routeDetails.PesantrenTeacherRoutes(ustadz, db)

	log.Println("[INFO] Mounting WALI routes...")
	routeDetails.WaliRoutes(wali, db)
}
