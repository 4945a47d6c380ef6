package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "/tmp/mantenimiento.sock", cfg.Server.RPCSocket)
	assert.Equal(t, "mantenimiento.db", cfg.Database.Path)
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
server:
  addr: ":9090"
  rpc_socket: /run/mantenimiento.sock
database:
  path: /var/lib/mantenimiento/data.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/run/mantenimiento.sock", cfg.Server.RPCSocket)
	assert.Equal(t, "/var/lib/mantenimiento/data.db", cfg.Database.Path)
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfigFile(t, `
server:
  addr: ":9090"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/tmp/mantenimiento.sock", cfg.Server.RPCSocket)
	assert.Equal(t, "mantenimiento.db", cfg.Database.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [not a mapping")
	_, err := Load(path)
	assert.Error(t, err)
}
