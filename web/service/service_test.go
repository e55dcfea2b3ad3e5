package service

import (
	"strings"
	"testing"

	"orderdesk/database"
)

// setupTestDB gives each test a fresh named in-memory database.
func setupTestDB(t *testing.T) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	if err := database.InitTestDB(name); err != nil {
		t.Fatalf("init test db: %v", err)
	}
}
