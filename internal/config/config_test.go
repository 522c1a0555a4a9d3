// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
network:
  interface: eth0
  address: 192.168.1.50/24
  gateway: 192.168.1.1
  dns:
    - 8.8.8.8
    - 1.1.1.1
web:
  server_name: example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	p := cfg.Params()
	assert.Equal(t, "eth0", p.Interface)
	assert.Equal(t, "192.168.1.50/24", p.Address)
	assert.Equal(t, "192.168.1.1", p.Gateway)
	assert.Equal(t, []string{"8.8.8.8", "1.1.1.1"}, p.DNS)
	assert.Equal(t, "example.com", p.ServerName)
}

func TestLoad_ServerNameOptional(t *testing.T) {
	path := writeConfig(t, `
network:
  interface: eth0
  address: 10.0.0.5/24
  gateway: 10.0.0.1
  dns: [9.9.9.9]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Params().ServerName)
}

func TestLoad_MissingFields(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{"no interface", "network:\n  address: 10.0.0.5/24\n  gateway: 10.0.0.1\n  dns: [9.9.9.9]\n", "network.interface"},
		{"no address", "network:\n  interface: eth0\n  gateway: 10.0.0.1\n  dns: [9.9.9.9]\n", "network.address"},
		{"no gateway", "network:\n  interface: eth0\n  address: 10.0.0.5/24\n  dns: [9.9.9.9]\n", "network.gateway"},
		{"no dns", "network:\n  interface: eth0\n  address: 10.0.0.5/24\n  gateway: 10.0.0.1\n", "network.dns"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "network: [not: a map"))
	require.Error(t, err)
}
