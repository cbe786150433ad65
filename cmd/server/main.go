package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	emailPkg "peakdispatch/internal/adapters/email"
	web "peakdispatch/internal/adapters/http"
	"peakdispatch/internal/adapters/storage"
	accountStore "peakdispatch/internal/adapters/storage/account"
	bookingStore "peakdispatch/internal/adapters/storage/booking"
	contentStore "peakdispatch/internal/adapters/storage/content"
	submissionStore "peakdispatch/internal/adapters/storage/submission"
	accountDomain "peakdispatch/internal/domain/account"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	stores, err := buildStores()
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	// Configure email sender
	resendKey := os.Getenv("PEAKDISPATCH_RESEND_KEY")
	emailFrom := envOrDefault("PEAKDISPATCH_RESEND_FROM", "PeakDispatch <noreply@peakdispatch.com>")
	notifyTo := envOrDefault("PEAKDISPATCH_NOTIFY_TO", "websolution.mn@gmail.com")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, notifyTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, notifyTo)
		if os.Getenv("PEAKDISPATCH_ENV") == "production" {
			log.Println("WARNING: PEAKDISPATCH_RESEND_KEY is not set — submission notifications are DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set PEAKDISPATCH_RESEND_KEY for real delivery)")
		}
	}

	// Create HTTP handler with middleware
	mux := web.NewMux("static", stores)

	// Start server
	addr := envOrDefault("PEAKDISPATCH_ADDR", ":8080")
	log.Printf("PeakDispatch %s starting on %s (env=%s)", version, addr, envOrDefault("PEAKDISPATCH_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// buildStores selects the storage backend. The default is pretty-printed JSON
// flat files under the data directory; PEAKDISPATCH_DB=sqlite switches to the
// embedded database.
func buildStores() (*web.Stores, error) {
	acctStore, err := buildAccountStore()
	if err != nil {
		return nil, err
	}

	dataDir := envOrDefault("PEAKDISPATCH_DATA_DIR", "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	if envOrDefault("PEAKDISPATCH_DB", "json") == "sqlite" {
		dbPath := filepath.Join(dataDir, "peakdispatch.db")
		dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		if err := db.Ping(); err != nil {
			return nil, err
		}
		if err := storage.InitDB(db); err != nil {
			return nil, err
		}
		log.Println("Storage backend: sqlite")
		return &web.Stores{
			ContentStore:    contentStore.NewSQLiteStore(db),
			SubmissionStore: submissionStore.NewSQLiteStore(db),
			BookingStore:    bookingStore.NewSQLiteStore(db),
			AccountStore:    acctStore,
		}, nil
	}

	log.Println("Storage backend: json files in " + dataDir)
	return &web.Stores{
		ContentStore:    contentStore.NewJSONStore(filepath.Join(dataDir, "content.json")),
		SubmissionStore: submissionStore.NewJSONStore(filepath.Join(dataDir, "submissions.json")),
		BookingStore:    bookingStore.NewJSONStore(filepath.Join(dataDir, "bookings.json")),
		AccountStore:    acctStore,
	}, nil
}

// buildAccountStore seeds the single operator account from the environment.
func buildAccountStore() (accountStore.Store, error) {
	admin := accountDomain.Account{
		ID:    "admin",
		Email: envOrDefault("PEAKDISPATCH_ADMIN_EMAIL", "admin@peakdispatch.com"),
		Role:  accountDomain.RoleAdmin,
	}
	if err := admin.Validate(); err != nil {
		return nil, err
	}
	if err := admin.SetPassword(envOrDefault("PEAKDISPATCH_ADMIN_PASSWORD", "Admin@123")); err != nil {
		return nil, err
	}
	return accountStore.NewFixedStore(admin), nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
