// Package db opens the database used to persist the call history.
package db

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultSQLiteFile is used when no DSN is supplied.
const DefaultSQLiteFile = "stocks-mcp.db"

// NewDBConnection opens a connection for the given DSN.
// A Postgres DSN, in URL (postgres://, postgresql://) or key/value (host=... dbname=...) form, selects Postgres.
// Anything else is treated as a SQLite path.
// An empty DSN falls back to DefaultSQLiteFile in the working directory.
func NewDBConnection(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		// stdout carries the stdio MCP transport, so gorm must never log there
		Logger: newGormLogger(os.Stderr),
	}

	var dialector gorm.Dialector
	switch {
	case isPostgresDSN(dsn):
		dialector = postgres.Open(dsn)
	case dsn == "":
		dialector = sqlite.Open(DefaultSQLiteFile)
	default:
		dialector = sqlite.Open(dsn)
	}

	conn, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return conn, nil
}

// newGormLogger returns a gorm logger that writes warnings and errors to w, without colors.
func newGormLogger(w io.Writer) logger.Interface {
	return logger.New(
		log.New(w, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

func isPostgresDSN(dsn string) bool {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return true
	}
	// key/value form, eg- "host=localhost user=postgres dbname=stocks"
	for _, field := range strings.Fields(dsn) {
		key, _, ok := strings.Cut(field, "=")
		if ok && (key == "host" || key == "dbname") {
			return true
		}
	}
	return false
}
