package config_test

import (
	"testing"

	"github.com/kaifcoder/codecrafters-shell/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, config.DefaultHistoryLimit, cfg.HistoryLimit)
}

func TestConfigPath(t *testing.T) {
	path, err := config.ConfigPath()
	assert.NoError(t, err)
	assert.Contains(t, path, ".posh/config.yaml")
}

func TestHistoryPath(t *testing.T) {
	path, err := config.HistoryPath()
	assert.NoError(t, err)
	assert.Contains(t, path, ".shell_history")
}
