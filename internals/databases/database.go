package database

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"santri_backend/internals/configs"
)

var DB *gorm.DB

// statement_timeout sedikit di bawah batas waktu request (5s) agar query yang macet gagal lebih dulu.
const statementTimeoutMs = 3000

// buildDSN merangkai DSN postgres dari env DB_*.
// Untuk PgBouncer, arahkan DB_HOST/DB_PORT ke PgBouncer; PreferSimpleProtocol tetap aktif.
func buildDSN() string {
	q := url.Values{}
	q.Set("sslmode", configs.GetEnv("DB_SSLMODE", "require"))
	q.Set("application_name", "santri")
	q.Set("options", fmt.Sprintf("-c statement_timeout=%d", statementTimeoutMs))

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(configs.GetEnv("DB_USER"), configs.GetEnv("DB_PASSWORD")),
		Host:     configs.GetEnv("DB_HOST", "localhost") + ":" + configs.GetEnv("DB_PORT", "5432"),
		Path:     "/" + configs.GetEnv("DB_NAME"),
		RawQuery: q.Encode(),
	}
	return u.String()
}

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  buildDSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

// TunePool: batas koneksi dari DB_MAX_OPEN_CONNS / DB_MAX_IDLE_CONNS.
func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(time.Minute)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// WarmUpQueries membuka satu koneksi di belakang agar request pertama tidak menunggu handshake.
func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := Ping(ctx); err != nil {
			log.Printf("[WARN] warm-up ping: %v", err)
		}
	}()
}

func Ping(ctx context.Context) error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("[WARN] close DB: %v", err)
		}
	}
}
