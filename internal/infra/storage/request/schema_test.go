package request

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Каждая колонка, которую репозиторий читает или пишет, должна существовать
// в DDL таблицы booking_requests
func TestMigrationCoversRequestColumns(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)

	ddl := extractTableDDL(t, string(raw), "booking_requests")

	columns := append([]string{}, requestColumns...)
	columns = append(columns, "updated_at")

	for _, column := range columns {
		require.Contains(t, ddl, column, "column %q is missing from booking_requests DDL", column)
	}
}

func extractTableDDL(t *testing.T, schema, table string) string {
	t.Helper()

	marker := "CREATE TABLE IF NOT EXISTS " + table
	start := strings.Index(schema, marker)
	require.NotEqual(t, -1, start, "table %q is missing from migration", table)

	end := strings.Index(schema[start:], ";")
	require.NotEqual(t, -1, end, "unterminated DDL for table %q", table)

	return schema[start : start+end]
}
