package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sagarc03/sqlbridge"
	"github.com/sagarc03/sqlbridge/database/dialect"
	"github.com/sagarc03/sqlbridge/database/postgres"
	"github.com/sagarc03/sqlbridge/database/sqlite"
)

func TestPlaceholders(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "?, ?, ?", dialect.Placeholders(sqlite.Dialect{}, 1, 3))
	assert.Equal(t, "$1, $2, $3", dialect.Placeholders(postgres.Dialect{}, 1, 3))
	assert.Equal(t, "$4, $5", dialect.Placeholders(postgres.Dialect{}, 4, 2))
	assert.Equal(t, "", dialect.Placeholders(sqlite.Dialect{}, 1, 0))
}

func TestDescriptor_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		desc dialect.Descriptor
		want string
	}{
		{
			name: "embedded",
			desc: dialect.Descriptor{Engine: sqlbridge.EngineSQLite, Path: "app.db"},
			want: "sqlite:app.db",
		},
		{
			name: "network without credentials",
			desc: dialect.Descriptor{Engine: sqlbridge.EngineFirebird, Host: "fb", Port: 3050, Path: "/db.fdb"},
			want: "firebird:fb/3050:/db.fdb",
		},
		{
			name: "network with user only",
			desc: dialect.Descriptor{Engine: sqlbridge.EnginePostgres, Host: "pg", Port: 5432, Path: "app", Username: "app"},
			want: "postgres:app@pg/5432:app",
		},
		{
			name: "password is redacted",
			desc: dialect.Descriptor{Engine: sqlbridge.EngineMySQL, Host: "my", Port: 3306, Path: "app", Username: "root", Password: "pw"},
			want: "mysql:root:***@my/3306:app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.desc.String())
		})
	}
}

func TestDescriptor_Addr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "db.local:3050", dialect.Descriptor{Host: "db.local", Port: 3050}.Addr())
	assert.Equal(t, "[::1]:5432", dialect.Descriptor{Host: "::1", Port: 5432}.Addr())
}
