package postgres

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/rs/zerolog"
)

var testDB *DB

// TestMain connects to the database named by TEST_DATABASE_URL.
// Without it the package's tests are skipped.
func TestMain(m *testing.M) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		log.Println("TEST_DATABASE_URL not set; skipping postgres tests")
		os.Exit(0)
	}

	nopLogger := zerolog.Nop()
	ctx := context.Background()

	var err error
	testDB, err = NewDB(ctx, url, &nopLogger)
	if err != nil {
		log.Fatalf("TestMain: Failed to connect to test database: %v", err)
	}
	if err := testDB.Migrate(ctx); err != nil {
		log.Fatalf("TestMain: Failed to migrate test database: %v", err)
	}

	code := m.Run()

	testDB.Close()
	os.Exit(code)
}

// resetBanks empties the table so each test starts from a known state.
func resetBanks(t *testing.T) {
	t.Helper()
	if _, err := testDB.pool.Exec(context.Background(), "TRUNCATE banks"); err != nil {
		t.Fatalf("Failed to truncate banks: %v", err)
	}
}
