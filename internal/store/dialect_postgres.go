package store

import (
	"fmt"
	"strings"
)

// postgresDialect implements Dialect for the lib/pq driver.
type postgresDialect struct{}

func (d *postgresDialect) DriverName() string { return "postgres" }

func (d *postgresDialect) InitStatements() []string { return nil }

func (d *postgresDialect) ReturningClause(column string) string {
	return fmt.Sprintf(" RETURNING %s", column)
}

func (d *postgresDialect) SupportsLastInsertID() bool { return false }

func (d *postgresDialect) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	// 23505 is the PostgreSQL unique_violation error code.
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}
