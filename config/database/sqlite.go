package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteBusyTimeoutMS = 5000

// SQLiteOpener returns a function that opens a fresh handle on the database
// file each time it is called. Callers own the handle and must close it.
func SQLiteOpener(path string) func() (*sql.DB, error) {
	dsn := fmt.Sprintf("%s?_busy_timeout=%d", path, sqliteBusyTimeoutMS)
	return func() (*sql.DB, error) {
		db, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", path, err)
		}
		db.SetMaxOpenConns(1)
		return db, nil
	}
}
