package store

import "strings"

// sqliteDialect implements Dialect for the modernc.org/sqlite driver.
type sqliteDialect struct{}

func (d *sqliteDialect) DriverName() string { return "sqlite" }

func (d *sqliteDialect) InitStatements() []string {
	return []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
}

func (d *sqliteDialect) ReturningClause(column string) string { return "" }

func (d *sqliteDialect) SupportsLastInsertID() bool { return true }

func (d *sqliteDialect) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
