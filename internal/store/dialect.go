package store

import (
	"strconv"
	"strings"
)

// Dialect abstracts the SQL syntax differences between the supported backends.
type Dialect interface {
	// DriverName returns the driver name passed to sql.Open().
	DriverName() string

	// InitStatements returns backend-specific statements run right after the
	// connection opens.
	InitStatements() []string

	// ReturningClause returns a RETURNING clause for INSERT statements, or ""
	// when the backend reports ids through LastInsertId().
	ReturningClause(column string) string

	// SupportsLastInsertID reports whether LastInsertId() works on this backend.
	SupportsLastInsertID() bool

	// IsDuplicateKeyError reports whether err is a unique constraint violation.
	IsDuplicateKeyError(err error) bool
}

// DialectType identifies a storage backend.
type DialectType string

const (
	DialectSQLite   DialectType = "sqlite"
	DialectPostgres DialectType = "postgres"
)

// NewDialect returns the Dialect for the given type, defaulting to SQLite.
func NewDialect(t DialectType) Dialect {
	if t == DialectPostgres {
		return &postgresDialect{}
	}
	return &sqliteDialect{}
}

// rebind converts a query written with ? placeholders into the form the
// dialect expects. SQLite queries pass through unchanged; PostgreSQL gets
// numbered $N placeholders.
func rebind(d Dialect, query string) string {
	if d.DriverName() != "postgres" {
		return query
	}
	var sb strings.Builder
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteByte(query[i])
	}
	return sb.String()
}
