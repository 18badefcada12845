package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shelter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
log:
  level: debug
blob:
  driver: s3
  bucket: dog-photos
  endpoint: http://localhost:9000
  path_style: true
`), 0o600))

	t.Setenv("PORT", "9100")
	t.Setenv("BLOB_PUBLIC_BASE_URL", "https://cdn.example/dog-photos")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, BlobS3, cfg.Blob.Driver)
	assert.True(t, cfg.Blob.PathStyle)
	assert.Equal(t, "https://cdn.example/dog-photos", cfg.Blob.PublicBaseURL)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("BLOB_DRIVER", "ftp")
	_, err = Load("")
	assert.ErrorContains(t, err, "unknown blob driver")
}

func TestApplyEnv_BadBool(t *testing.T) {
	cfg := Default()
	err := applyEnv(&cfg, func(k string) (string, bool) {
		if k == "AUTO_MIGRATE" {
			return "maybe", true
		}
		return "", false
	})
	assert.ErrorContains(t, err, "AUTO_MIGRATE")
}

func TestValidate_AuthNeedsKey(t *testing.T) {
	cfg := Default()
	cfg.Auth.BaseURL = "https://idp.example"
	assert.Error(t, cfg.Validate())
	cfg.Auth.APIKey = "anon"
	assert.NoError(t, cfg.Validate())
}
