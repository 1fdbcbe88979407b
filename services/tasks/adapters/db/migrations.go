package db

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate applies the migrations of the active dialect in file order.
func (db *DB) Migrate() error {
	db.log.Debug("running tasksDB migrations", "dialect", db.dialect)

	dir := path.Join("migrations", db.dialect)
	files, err := fs.Glob(migrationsFS, dir+"/*.up.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, name := range files {
		body, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		for _, stmt := range splitStatements(string(body)) {
			if _, err := db.conn.Exec(stmt); err != nil {
				return fmt.Errorf("apply migration %s: %w", path.Base(name), err)
			}
		}
	}

	db.log.Debug("tasksDB migrations finished", "count", len(files))
	return nil
}

// splitStatements breaks a migration into single statements; the mysql
// driver rejects multi-statement queries by default.
func splitStatements(sql string) []string {
	var out []string
	for _, part := range strings.Split(sql, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
