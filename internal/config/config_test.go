package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
server:
  port: "9090"
  mode: debug

database:
  host: db.internal
  port: 3306
  user: app
  password: secret
  dbname: career_guidance
  charset: utf8mb4
  parsetime: true

jwt:
  secret: short-secret-ok-in-debug-mode
  expire_hours: 24

redis:
  host: localhost
  port: 6379

storage:
  type: local
  local_path: %s

cors:
  allowed_origins:
    - http://localhost:3000

rate_limit:
  max_requests: 50
  window_minutes: 1
`

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	storageDir := filepath.Join(dir, "exports")
	raw := fmt.Sprintf(sampleConfig, storageDir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(raw), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 50, cfg.RateLimit.MaxRequests)

	// local storage dir is created on load
	_, err = os.Stat(cfg.Storage.LocalPath)
	assert.NoError(t, err)
}
