package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseURL(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"postgres://u:p@localhost:5432/db?sslmode=disable", "pgx5://u:p@localhost:5432/db?sslmode=disable"},
		{"postgresql://u:p@db/orders", "pgx5://u:p@db/orders"},
		{"pgx5://u:p@db/orders", "pgx5://u:p@db/orders"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, databaseURL(tt.dsn))
		})
	}
}

func TestEmbeddedFiles(t *testing.T) {
	entries, err := files.ReadDir("sql")

	assert.NoError(t, err)
	assert.Len(t, entries, 6)
}

func TestDown_RejectsNonPositiveSteps(t *testing.T) {
	assert.Error(t, Down("postgres://localhost/db", 0))
}
