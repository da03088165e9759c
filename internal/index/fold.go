// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"database/sql"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"
)

// driverName is the sqlite3 driver with the fold() SQL function registered
// on every connection.
const driverName = "sqlite3_notesplit"

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("fold", foldText, true)
		},
	})
}

// foldText applies full Unicode case folding. SQLite's lower() only folds
// ASCII, which misses accented and Cyrillic text.
func foldText(s string) string {
	return cases.Fold().String(s)
}
