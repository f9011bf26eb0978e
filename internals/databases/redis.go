package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis membuka client Redis untuk penyimpanan sesi wali.
func ConnectRedis(url string) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("❌ REDIS_URL tidak valid: %v", err)
	}
	opt.DialTimeout = 3 * time.Second
	opt.ReadTimeout = 2 * time.Second
	opt.WriteTimeout = 2 * time.Second

	Redis = redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] Redis belum bisa di-ping: %v", err)
		return
	}
	log.Println("✅ Redis connected.")
}

func CloseRedis() {
	if Redis != nil {
		_ = Redis.Close()
	}
}
