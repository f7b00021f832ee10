package postgres

// PostgreSQL error codes
const (
	PgCodeForeignKeyViolation = "23503"
)
