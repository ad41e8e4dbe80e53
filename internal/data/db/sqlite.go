package db

import (
	"database/sql"
	"strings"
	"sync"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const sqliteDriverName = "sqlite3_blogbridge"

var registerSQLite sync.Once

// SQLiteDialector opens path on a driver whose lower() folds the full Unicode
// range. The built-in one only folds ASCII, which breaks case-insensitive
// title search for anything else.
func SQLiteDialector(path string) gorm.Dialector {
	registerSQLite.Do(func() {
		sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("lower", unicodeLower, true)
			},
		})
	})
	return sqlite.New(sqlite.Config{DriverName: sqliteDriverName, DSN: path})
}

// unicodeLower keeps lower()'s contract for non-text values: NULL stays NULL,
// numbers pass through.
func unicodeLower(v any) any {
	switch s := v.(type) {
	case string:
		return strings.ToLower(s)
	case []byte:
		return strings.ToLower(string(s))
	default:
		return v
	}
}
