package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	admin "github.com/5w1tchy/passcheck-api/internal/api/handlers/admin"
	strengthapi "github.com/5w1tchy/passcheck-api/internal/api/handlers/strength"
	mw "github.com/5w1tchy/passcheck-api/internal/api/middlewares"
	"github.com/5w1tchy/passcheck-api/internal/api/router"
	"github.com/5w1tchy/passcheck-api/internal/maintenance"
	"github.com/5w1tchy/passcheck-api/internal/metrics/usage"
	"github.com/5w1tchy/passcheck-api/internal/repository/sqlconnect"
	s3store "github.com/5w1tchy/passcheck-api/internal/storage/s3"
	"github.com/5w1tchy/passcheck-api/internal/store/wordlist"
	"github.com/5w1tchy/passcheck-api/internal/strength"
	"github.com/5w1tchy/passcheck-api/internal/validate"
	"github.com/5w1tchy/passcheck-api/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load("../../.env")

	if err := validate.Env(); err != nil {
		log.Fatalf("bad config: %v", err)
	}
	for _, warn := range validate.HardeningWarnings(os.Getenv("APP_ENV")) {
		log.Printf("[startup] warning: %s", warn)
	}

	port := ":3000"
	if p := os.Getenv("PORT"); p != "" {
		port = ":" + p
	}

	rdb := connectRedis()
	if err := validate.PingRedis(rdb, 3*time.Second); err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}
	fmt.Println("Connected to Redis")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional external wordlist sources
	var words *wordlist.Store
	db, err := sqlconnect.ConnectDB()
	if err != nil {
		log.Printf("[startup] wordlist database disabled: %v", err)
	} else {
		words = wordlist.New(db)
		defer db.Close()
	}

	var s3c *s3store.S3Client
	s3Key := os.Getenv("WORDLIST_OBJECT_KEY")
	if os.Getenv("AWS_BUCKET") != "" && s3Key != "" {
		if c, err := s3store.NewR2Client(ctx); err != nil {
			log.Printf("[startup] object-store wordlist disabled: %v", err)
		} else {
			s3c = c
		}
	}

	provider := strengthapi.NewProvider(loadMatcher(ctx, words, s3c, s3Key))

	usage.Start(rdb, 10000, 2)
	defer usage.Shutdown()
	maintenance.StartUsageRetention(ctx, rdb, 30)

	tb := mw.NewRedisTokenBucket(rdb, 5, 20, mw.PerIPKey("tb"))
	sw := mw.NewRedisSlidingWindow(rdb, 3000, 60*time.Minute, mw.PerIPKey("sw"))

	hppOptions := mw.DefaultHPPOptions()

	sh := strengthapi.NewHandler(provider)
	mux := router.Router(sh)

	var wordSource admin.WordSource
	if words != nil {
		wordSource = words
	}
	adminH := admin.NewHandler(db, rdb, wordSource, s3c, s3Key, provider)
	router.MountAdmin(mux, adminH, rdb)

	secureMux := utils.ApplyMiddleware(
		mux,
		mw.Cors,
		mw.ResponseTimeMiddleware,
		mw.RequestID,
		mw.Recovery,
		mw.HPP(hppOptions),
		tb.Middleware,
		sw.Middleware,
		mw.BodySizeLimit,
		mw.Compression,
		mw.SecurityHeaders,
	)

	server := &http.Server{
		Addr:    port,
		Handler: secureMux,
		TLSConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		ReadHeaderTimeout: 5 * time.Second,
	}

	fmt.Println("Server is running on port:", port)
	if cert, key := os.Getenv("TLS_CERT"), os.Getenv("TLS_KEY"); cert != "" && key != "" {
		err = server.ListenAndServeTLS(cert, key)
	} else {
		err = server.ListenAndServe()
	}
	if err != nil {
		log.Fatalln("Error starting server:", err)
	}
}

// loadMatcher merges whatever sources are configured into the initial
// matcher; any source failure at boot falls back to what did load.
func loadMatcher(ctx context.Context, words *wordlist.Store, s3c *s3store.S3Client, s3Key string) *strength.Matcher {
	var extras []string
	if words != nil {
		if ws, err := words.List(ctx); err != nil {
			log.Printf("[startup] wordlist database read failed: %v", err)
		} else {
			extras = append(extras, ws...)
		}
	}
	if s3c != nil && s3Key != "" {
		if ws, err := s3c.FetchWordlist(ctx, s3Key); err != nil {
			log.Printf("[startup] object-store wordlist read failed: %v", err)
		} else {
			extras = append(extras, ws...)
		}
	}
	if len(extras) == 0 {
		return strength.Default()
	}
	m := strength.NewMatcher(extras)
	log.Printf("[startup] wordlist loaded: %d extra entries, matcher size %d", len(extras), m.Size())
	return m
}

func connectRedis() *redis.Client {
	if url := os.Getenv("UPSTASH_REDIS_URL"); url != "" {
		// Path A: full URL (e.g. rediss://default:<token>@host:port)
		opt, err := redis.ParseURL(url)
		if err != nil {
			log.Fatalf("invalid UPSTASH_REDIS_URL: %v", err)
		}
		if opt.TLSConfig == nil {
			opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		opt.DialTimeout = 5 * time.Second
		opt.ReadTimeout = 1 * time.Second
		opt.WriteTimeout = 1 * time.Second
		return redis.NewClient(opt)
	}

	// Path B: split fields
	addr := os.Getenv("REDIS_ADDR")
	user := os.Getenv("REDIS_USER")
	pass := os.Getenv("REDIS_PASSWORD")
	if addr == "" {
		log.Fatal("missing Redis config: set UPSTASH_REDIS_URL or REDIS_ADDR")
	}
	opts := &redis.Options{
		Addr:         addr,
		Username:     user,
		Password:     pass,
		DB:           0,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	}
	if user != "" && pass != "" {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return redis.NewClient(opts)
}
