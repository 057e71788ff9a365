package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"crudtask/internal/adapters/api"
	emailPkg "crudtask/internal/adapters/email"
	web "crudtask/internal/adapters/http"
	"crudtask/internal/adapters/http/middleware"
	"crudtask/internal/adapters/storage"
	sessionStore "crudtask/internal/adapters/storage/session"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Optional .env for local development; real deployments set the env directly.
	_ = godotenv.Load()

	// Session persistence database with WAL mode and busy timeout
	dbPath := envOrDefault("CRUDTASK_SESSION_DB", "crudtask.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Sessions live in memory, written through to SQLite so logins survive restarts
	sessions := middleware.NewSessionStore(sessionStore.NewSQLiteStore(db))
	if err := sessions.Hydrate(context.Background()); err != nil {
		log.Fatalf("failed to hydrate sessions: %v", err)
	}

	// Backend REST API client
	apiURL := envOrDefault("CRUDTASK_API_URL", "http://localhost:3002")
	backend := api.New(apiURL)

	// Configure email sender
	resendKey := os.Getenv("CRUDTASK_RESEND_KEY")
	emailFrom := envOrDefault("CRUDTASK_RESEND_FROM", "CRUDTASK <noreply@crudtask.dev>")
	emailReply := envOrDefault("CRUDTASK_REPLY_TO", "support@crudtask.dev")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, emailReply)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, emailReply)
		if os.Getenv("CRUDTASK_ENV") == "production" {
			log.Println("WARNING: CRUDTASK_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set CRUDTASK_RESEND_KEY for real delivery)")
		}
	}

	mux := web.NewMux(backend, sessions)

	addr := envOrDefault("CRUDTASK_ADDR", ":8080")
	log.Printf("CRUDTASK %s starting on %s (env=%s, api=%s)", version, addr, envOrDefault("CRUDTASK_ENV", "development"), apiURL)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
