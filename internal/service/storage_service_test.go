package service

import (
	"career_guidance_backend/internal/config"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageUpload(t *testing.T) {
	dir := t.TempDir()
	provider := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}}

	url, err := provider.Upload(context.Background(), "reports/test.zip", strings.NewReader("payload"), 7, "application/zip")
	require.NoError(t, err)
	assert.Equal(t, "/exports/reports/test.zip", url)

	data, err := os.ReadFile(filepath.Join(dir, "reports", "test.zip"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	require.NoError(t, provider.Delete(context.Background(), "reports/test.zip"))
	_, err = os.Stat(filepath.Join(dir, "reports", "test.zip"))
	assert.True(t, os.IsNotExist(err))
}

func TestNewStorageServiceDefaultsToLocal(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.LocalPath = t.TempDir()

	svc, err := NewStorageService(cfg)
	require.NoError(t, err)
	_, ok := svc.Provider.(*LocalStorageProvider)
	assert.True(t, ok)
}

func TestNewStorageServiceUnknownType(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Type = "ftp"

	_, err := NewStorageService(cfg)
	assert.Error(t, err)
}
