// Command apiserver runs the development REST backend: the same wire
// contract the production backend speaks, on a local SQLite file.
package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"crudtask/internal/adapters/restapi"
	"crudtask/internal/adapters/storage"
	eventStore "crudtask/internal/adapters/storage/event"
	taskStore "crudtask/internal/adapters/storage/task"
	userStore "crudtask/internal/adapters/storage/user"
)

func main() {
	_ = godotenv.Load()

	dbPath := envOrDefault("CRUDTASK_API_DB", "crudtask-api.db")
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

	users := userStore.NewSQLiteStore(db)
	stores := &restapi.Stores{
		UserStore:         users,
		TaskStore:         taskStore.NewSQLiteStore(db),
		EventStore:        eventStore.NewSQLiteStore(db),
		RegistrationStore: eventStore.NewRegistrationSQLiteStore(db),
	}

	// Seed default admin account if no users exist
	adminEmail := envOrDefault("CRUDTASK_ADMIN_EMAIL", "admin@crudtask.dev")
	adminPassword := envOrDefault("CRUDTASK_ADMIN_PASSWORD", "change-me-now")
	if err := restapi.SeedAdmin(context.Background(), users, adminEmail, adminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	addr := envOrDefault("CRUDTASK_API_ADDR", ":3002")
	log.Printf("CRUDTASK API starting on %s (db=%s)", addr, dbPath)

	if err := http.ListenAndServe(addr, restapi.NewMux(stores)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
