package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
dbname = "bookings"
password = "secret"

[transactions]
max_retries = 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 5, cfg.Transactions.MaxRetries)
	assert.Equal(t, "host=db port=5432 user=postgres password=secret dbname=bookings sslmode=disable", cfg.Database.DSN())
}

func TestLoad_MemoryDriver(t *testing.T) {
	path := writeConfig(t, `
[database]
driver = "memory"
host = ""
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
}

func TestLoad_MemorySeed(t *testing.T) {
	path := writeConfig(t, `
[database]
driver = "memory"

[[memory.equipment]]
name = "Projector A"
type = "projector"
total_quantity = 2

[[memory.equipment]]
name = "Laptop"
type = "laptop"
total_quantity = 5
is_available = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Memory.Equipment, 2)
	assert.Equal(t, "Projector A", cfg.Memory.Equipment[0].Name)
	assert.True(t, cfg.Memory.Equipment[0].Available())
	assert.False(t, cfg.Memory.Equipment[1].Available())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad port", body: "[server]\nhttp_port = 0\n"},
		{name: "unknown driver", body: "[database]\ndriver = \"mysql\"\n"},
		{name: "negative retries", body: "[transactions]\nmax_retries = -1\n"},
		{name: "metrics without path", body: "[metrics]\nenabled = true\npath = \"\"\n"},
		{name: "seed without name", body: "[[memory.equipment]]\ntotal_quantity = 1\n"},
		{name: "duplicate seed", body: "[[memory.equipment]]\nname = \"A\"\n[[memory.equipment]]\nname = \"A\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
