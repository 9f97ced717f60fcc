// Package testhelpers contains small assertion and setup helpers shared by the stocks-mcp test suites.
package testhelpers

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stocksmcp/stocks-mcp/internal/migrations"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// AssertEqual fails the test if expected and actual are not deeply equal.
func AssertEqual(t *testing.T, expected, actual any) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("Expected %v (%T), got %v (%T)", expected, expected, actual, actual)
	}
}

// AssertNoError fails the test immediately if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected an error, got nil")
	}
}

// AssertNotNil fails the test if v is nil, including typed nil pointers.
func AssertNotNil(t *testing.T, v any) {
	t.Helper()
	if v == nil {
		t.Error("Expected non-nil value, got nil")
		return
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		if rv.IsNil() {
			t.Errorf("Expected non-nil value, got nil %T", v)
		}
	default:
	}
}

// AssertTrue fails the test with msg if cond is false.
func AssertTrue(t *testing.T, cond bool, msg string) {
	t.Helper()
	if !cond {
		t.Error(msg)
	}
}

// CreateTestDB opens a fresh in-memory SQLite database with all migrations applied.
func CreateTestDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open test database: %w", err)
	}
	// every new connection to :memory: would see an empty database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get test database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := migrations.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate test database: %w", err)
	}
	return db, nil
}

// TestDBSetup holds a test database and a function to release it.
type TestDBSetup struct {
	DB      *gorm.DB
	Cleanup func()
}

// SetupTestDB creates a migrated test database and fails the test if that is not possible.
func SetupTestDB(t *testing.T) *TestDBSetup {
	t.Helper()
	db, err := CreateTestDB()
	if err != nil {
		t.Fatalf("Failed to set up test database: %v", err)
	}
	return &TestDBSetup{
		DB: db,
		Cleanup: func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		},
	}
}

// CommandAnnotationTest describes one expected cobra command annotation.
type CommandAnnotationTest struct {
	Key      string
	Expected string
}

// TestCommandAnnotations checks that every expected annotation is present with the right value.
func TestCommandAnnotations(t *testing.T, annotations map[string]string, tests []CommandAnnotationTest) {
	t.Helper()
	for _, tt := range tests {
		got, ok := annotations[tt.Key]
		if !ok {
			t.Errorf("Expected annotation %q to be set", tt.Key)
			continue
		}
		if got != tt.Expected {
			t.Errorf("Expected annotation %q to be %q, got %q", tt.Key, tt.Expected, got)
		}
	}
}
