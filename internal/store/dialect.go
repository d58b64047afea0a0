package store

// Dialect abstracts the SQL syntax differences between the SQLite and
// PostgreSQL backends so the layout queries are written once.
type Dialect interface {
	// DriverName returns the driver name for sql.Open().
	// SQLite: "sqlite", PostgreSQL: "postgres"
	DriverName() string

	// Placeholder returns the parameter placeholder for the given
	// position (1-indexed). SQLite: "?", PostgreSQL: "$1", "$2", etc.
	Placeholder(position int) string

	// SupportsLastInsertID returns true if the database supports
	// LastInsertId(). PostgreSQL uses a RETURNING clause instead.
	SupportsLastInsertID() bool

	// ReturningClause returns the RETURNING clause for INSERT
	// statements. Empty for SQLite.
	ReturningClause(column string) string

	// InitStatements returns statements run once after connecting.
	// SQLite: PRAGMAs, PostgreSQL: extension creation.
	InitStatements() []string

	// IsDuplicateKeyError returns true if the error is a unique
	// constraint violation.
	IsDuplicateKeyError(err error) bool

	// CaseInsensitiveCollation returns the collation for
	// case-insensitive text columns. PostgreSQL uses CITEXT instead.
	CaseInsensitiveCollation() string
}

// DialectType identifies the database dialect.
type DialectType string

const (
	DialectSQLite   DialectType = "sqlite"
	DialectPostgres DialectType = "postgres"
)

// NewDialect creates a Dialect for the given type. Unknown types fall
// back to SQLite.
func NewDialect(dialectType DialectType) Dialect {
	switch dialectType {
	case DialectPostgres:
		return &PostgresDialect{}
	default:
		return &SQLiteDialect{}
	}
}
