package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/lanchonete/internal/infrastructure/config"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	cfg := &config.Config{}
	cfg.Server.Mode = "release"
	cfg.Log = config.LogConfig{Level: "info", Format: "json", Output: path}
	cfg.Tracing.ServiceName = "lanchonete-test"

	l, err := New(cfg)
	require.NoError(t, err)
	l.Debug("invisível")
	l.Info("venda criada")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"venda criada"`)
	assert.Contains(t, string(data), `"service":"lanchonete-test"`)
	assert.NotContains(t, string(data), "invisível")
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Log = config.LogConfig{Level: "loud"}
	_, err := New(cfg)
	assert.Error(t, err)

	cfg.Log = config.LogConfig{Level: "info", Format: "xml"}
	_, err = New(cfg)
	assert.Error(t, err)
}
