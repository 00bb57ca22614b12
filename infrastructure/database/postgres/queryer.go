package postgres

import (
	"database/sql"
)

// Queryer is satisfied by both *sql.DB and *sql.Tx, so repository helpers
// can run against the connection or inside a caller-owned transaction.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
