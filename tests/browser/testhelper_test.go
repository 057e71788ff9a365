package browser_test

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	_ "modernc.org/sqlite"

	"crudtask/internal/adapters/api"
	web "crudtask/internal/adapters/http"
	"crudtask/internal/adapters/http/middleware"
	"crudtask/internal/adapters/restapi"
	"crudtask/internal/adapters/storage"
	eventStore "crudtask/internal/adapters/storage/event"
	sessionStore "crudtask/internal/adapters/storage/session"
	taskStore "crudtask/internal/adapters/storage/task"
	userStore "crudtask/internal/adapters/storage/user"
)

const (
	adminEmail    = "admin@test.com"
	adminPassword = "TestPass123!"
)

// testApp holds the running servers and Playwright handles.
type testApp struct {
	BaseURL string
	DB      *sql.DB
	PW      *playwright.Playwright
	Browser playwright.Browser
	Stores  *restapi.Stores
}

// newTestApp starts the stub REST backend and the web app on a temp
// SQLite DB, seeded with an admin account, and launches a headless browser.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to initialize test DB: %v", err)
	}

	users := userStore.NewSQLiteStore(db)
	stores := &restapi.Stores{
		UserStore:         users,
		TaskStore:         taskStore.NewSQLiteStore(db),
		EventStore:        eventStore.NewSQLiteStore(db),
		RegistrationStore: eventStore.NewRegistrationSQLiteStore(db),
	}

	ctx := context.Background()
	if err := restapi.SeedAdmin(ctx, users, adminEmail, adminPassword); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	// Stub REST backend the web app talks to
	apiSrv := httptest.NewServer(restapi.NewMux(stores))

	// Find a free port for the web server
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	// Add test port to CSRF trusted origins before creating mux
	middleware.ExtraTrustedOrigins = append(middleware.ExtraTrustedOrigins,
		fmt.Sprintf("127.0.0.1:%d", port),
		fmt.Sprintf("localhost:%d", port),
	)

	sessions := middleware.NewSessionStore(sessionStore.NewSQLiteStore(db))
	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: web.NewMux(api.New(apiSrv.URL), sessions),
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	// Wait for server to be ready
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/login")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	app := &testApp{
		BaseURL: baseURL,
		DB:      db,
		PW:      pw,
		Browser: browser,
		Stores:  stores,
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
		apiSrv.Close()
		db.Close()
	})

	return app
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// loginAdmin logs in as the seeded admin and waits for the admin dashboard.
func (a *testApp) loginAdmin(t *testing.T, page playwright.Page) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + "/login"); err != nil {
		t.Fatalf("failed to navigate to login: %v", err)
	}
	if err := page.Locator("input[name=email]").Fill(adminEmail); err != nil {
		t.Fatalf("failed to fill email: %v", err)
	}
	if err := page.Locator("input[name=password]").Fill(adminPassword); err != nil {
		t.Fatalf("failed to fill password: %v", err)
	}
	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to click login: %v", err)
	}
	if err := page.WaitForURL(a.BaseURL+"/admin/dashboard", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("admin login did not redirect to dashboard: %v", err)
	}
}

// registerUser signs up a fresh account through the register form, then
// logs it in (registration itself never starts a session).
func (a *testApp) registerUser(t *testing.T, page playwright.Page, name, email, password string) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + "/register"); err != nil {
		t.Fatalf("failed to navigate to register: %v", err)
	}
	fields := map[string]string{
		"input[name=name]":     name,
		"input[name=email]":    email,
		"input[name=password]": password,
		"input[name=confirm]":  password,
	}
	for sel, val := range fields {
		if err := page.Locator(sel).Fill(val); err != nil {
			t.Fatalf("failed to fill %s: %v", sel, err)
		}
	}
	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to submit registration: %v", err)
	}
	if err := page.WaitForURL(a.BaseURL+"/login*", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("registration did not redirect to login: %v", err)
	}

	if err := page.Locator("input[name=email]").Fill(email); err != nil {
		t.Fatalf("failed to fill email: %v", err)
	}
	if err := page.Locator("input[name=password]").Fill(password); err != nil {
		t.Fatalf("failed to fill password: %v", err)
	}
	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to click login: %v", err)
	}
	if err := page.WaitForURL(a.BaseURL+"/user/dashboard", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("login did not redirect to user dashboard: %v", err)
	}
}
