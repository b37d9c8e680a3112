package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENV", "READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT",
		"UPLOAD_PATH", "MAX_FILE_SIZE", "STORAGE_WRITE_TIMEOUT", "UPLOAD_NAMING",
		"TRACING_ENABLED", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
	// Keep godotenv from picking up a developer's .env file.
	chdir(t, t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "./uploads", cfg.Storage.UploadPath)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.Equal(t, 30*time.Second, cfg.Storage.WriteTimeout)
	assert.Equal(t, NamingTimestamp, cfg.Storage.Naming)
	assert.False(t, cfg.Observability.TracingEnabled)
	assert.Empty(t, cfg.Observability.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("UPLOAD_PATH", "/var/lib/resumes")
	t.Setenv("MAX_FILE_SIZE", "2048")
	t.Setenv("STORAGE_WRITE_TIMEOUT", "5s")
	t.Setenv("UPLOAD_NAMING", "UUID")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("LOG_LEVEL", "WARN")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "/var/lib/resumes", cfg.Storage.UploadPath)
	assert.Equal(t, int64(2048), cfg.Storage.MaxFileSize)
	assert.Equal(t, 5*time.Second, cfg.Storage.WriteTimeout)
	assert.Equal(t, NamingUUID, cfg.Storage.Naming)
	assert.True(t, cfg.Observability.TracingEnabled)
	assert.Equal(t, "warn", cfg.Observability.LogLevel)
	assert.Equal(t, 2048+1<<20, cfg.BodyLimit())
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_FILE_SIZE", "lots")
	t.Setenv("STORAGE_WRITE_TIMEOUT", "-3s")
	t.Setenv("READ_TIMEOUT", "soon")
	t.Setenv("UPLOAD_NAMING", "sequential")
	t.Setenv("TRACING_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.Equal(t, 30*time.Second, cfg.Storage.WriteTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, NamingTimestamp, cfg.Storage.Naming)
	assert.False(t, cfg.Observability.TracingEnabled)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
