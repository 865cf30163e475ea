//go:build unit

package repository

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	createTableRe = regexp.MustCompile(`(?ms)^CREATE TABLE (\w+) \((.*?)^\);`)
	insertRe      = regexp.MustCompile(`(?s)INSERT INTO (\w+)\s*\(([^)]+)\)`)
)

// Repositories hand-write their SQL, so nothing at compile time ties the
// column names to db/schema.sql. This check keeps them from drifting apart.
func TestInsertColumnsAreDeclaredInSchema(t *testing.T) {
	declared := loadDeclaredColumns(t)

	sources, err := filepath.Glob("*.go")
	require.NoError(t, err)

	inserts := 0
	for _, name := range sources {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		src, err := os.ReadFile(name)
		require.NoError(t, err)

		for _, match := range insertRe.FindAllStringSubmatch(string(src), -1) {
			table := match[1]
			columns, ok := declared[table]
			require.True(t, ok, "%s inserts into table %q which schema.sql does not declare", name, table)

			for _, column := range splitColumns(match[2]) {
				require.Contains(t, columns, column,
					"%s inserts into %s.%s which schema.sql does not declare", name, table, column)
			}
			inserts++
		}
	}
	require.NotZero(t, inserts, "no INSERT statements found; did the repositories move?")
}

func loadDeclaredColumns(t *testing.T) map[string][]string {
	t.Helper()

	ddl, err := os.ReadFile(filepath.Join("..", "..", "..", "db", "schema.sql"))
	require.NoError(t, err)

	tables := make(map[string][]string)
	for _, match := range createTableRe.FindAllStringSubmatch(string(ddl), -1) {
		var columns []string
		for _, line := range strings.Split(match[2], "\n") {
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			switch fields[0] {
			case "UNIQUE", "CHECK", "PRIMARY", "FOREIGN", "CONSTRAINT":
				continue
			}
			columns = append(columns, fields[0])
		}
		tables[match[1]] = columns
	}
	require.NotEmpty(t, tables, "no CREATE TABLE statements found in schema.sql")
	return tables
}

func splitColumns(list string) []string {
	parts := strings.Split(list, ",")
	columns := make([]string, 0, len(parts))
	for _, part := range parts {
		if col := strings.TrimSpace(part); col != "" {
			columns = append(columns, col)
		}
	}
	return columns
}
