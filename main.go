package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"santri_backend/internals/configs"
	database "santri_backend/internals/databases"
	scheduler "santri_backend/internals/features/users/auth/scheduler"
	"santri_backend/internals/features/wali/auth/session"
	helper "santri_backend/internals/helpers"
	"santri_backend/internals/helpers/dbtime"
	middlewares "santri_backend/internals/middlewares"
	routes "santri_backend/internals/route"
	"santri_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	dbtime.SetTimezone(configs.AppTimezone)

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.ErrorHandler,
		CaseSensitive:           true,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	middlewares.SetupMiddlewares(app, 5*time.Second)

	// 🔌 DB + Redis
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()
	database.ConnectRedis(configs.RedisURL)

	if configs.GetEnvBool("RUN_SEEDS", false) {
		seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
		if err := seeds.RunAllSeeds(seedCtx, database.DB); err != nil {
			log.Printf("[ERROR] seeding: %v", err)
		}
		cancelSeed()
	}

	sessions := session.NewStore(database.Redis, configs.WaliSessionTTL)

	// ⏱ scheduler setelah DB siap
	bgCtx, stopBg := context.WithCancel(context.Background())
	scheduler.StartBlacklistCleanupScheduler(bgCtx, database.DB, configs.BlacklistTTLDays)

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, sessions)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB & Redis
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] Shutting down...")

	stopBg()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("[WARN] shutdown: %v", err)
	}

	database.Close()
	database.CloseRedis()
}
