package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 12, cfg.JWT.ExpirationHours)
	assert.Equal(t, "ukkm-backend", cfg.JWT.Issuer)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "0 7 * * 1", cfg.Scheduler.Cron)
	assert.Equal(t, "reports/inspections", cfg.Archive.Prefix)
	assert.False(t, cfg.ArchiveEnabled())
}

func TestLoadFileReadsYAMLAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 9090
jwt:
  secret: file-secret
officers:
  - email: pegawai@moh.gov.my
    name: Pegawai KKM
    unit: UKKM Kota Setar
    password_hash: "$2a$08$abc"
archive:
  bucket: ukkm-reports
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("S3_ENDPOINT", "http://minio:9000")
	t.Setenv("REDIS_SERVICE_HOST", "redis")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	require.Len(t, cfg.Officers, 1)
	assert.Equal(t, "pegawai@moh.gov.my", cfg.Officers[0].Email)
	assert.True(t, cfg.ArchiveEnabled())
	assert.Equal(t, "http://minio:9000", cfg.Archive.Endpoint)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
}
