package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable LoadConfig reads. Empty values count as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DATABASE_URI", "MONGO_URL", "DATABASE_NAME", "DB_NAME", "JWT_SECRET", "JWT_EXPIRATION",
		"SERVER_ADDRESS", "SERVER_MODE", "SERVER_ALLOWED_ORIGINS", "LOG_LEVEL", "LOG_PRETTY",
		"SEED_ENABLED", "S3_BUCKET_NAME", "S3_REGION", "S3_ENDPOINT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing required keys", func(t *testing.T) {
		clearEnv(t)
		_, err := LoadConfig(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.uri")
		assert.Contains(t, err.Error(), "database.name")
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("legacy env names and defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MONGO_URL", "mongodb://db:27017")
		t.Setenv("DB_NAME", "dominion")
		t.Setenv("JWT_SECRET", "s3cret")

		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "mongodb://db:27017", cfg.Database.URI)
		assert.Equal(t, "dominion", cfg.Database.Name)
		assert.Equal(t, "s3cret", cfg.JWT.Secret)
		assert.Equal(t, 30*time.Minute, cfg.JWT.Expiration)
		assert.Equal(t, ":8080", cfg.Server.Address)
		assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
		assert.True(t, cfg.Seed.Enabled)
		assert.False(t, cfg.S3.Enabled())
	})

	t.Run("file values overridden by env", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		yaml := "server:\n  address: \":9000\"\ndatabase:\n  uri: mongodb://file:27017\n  name: filedb\njwt:\n  secret: filesecret\n  expiration: 2h\nseed:\n  enabled: false\ns3:\n  bucket_name: photos\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
		t.Setenv("DATABASE_NAME", "envdb")
		t.Setenv("JWT_EXPIRATION", "45m")

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.Server.Address)
		assert.Equal(t, "mongodb://file:27017", cfg.Database.URI)
		assert.Equal(t, "envdb", cfg.Database.Name)
		assert.Equal(t, 45*time.Minute, cfg.JWT.Expiration)
		assert.False(t, cfg.Seed.Enabled)
		assert.True(t, cfg.S3.Enabled())
	})

	t.Run("dotenv file", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
			[]byte("MONGO_URL=mongodb://dotenv:27017\nDB_NAME=fromdotenv\nJWT_SECRET=dotsecret\n"), 0o600))
		// godotenv only sets variables that are absent, so drop the blanks.
		for _, k := range []string{"MONGO_URL", "DB_NAME", "JWT_SECRET"} {
			require.NoError(t, os.Unsetenv(k))
		}
		t.Cleanup(func() {
			for _, k := range []string{"MONGO_URL", "DB_NAME", "JWT_SECRET"} {
				_ = os.Unsetenv(k)
			}
		})

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "mongodb://dotenv:27017", cfg.Database.URI)
		assert.Equal(t, "fromdotenv", cfg.Database.Name)
		assert.Equal(t, "dotsecret", cfg.JWT.Secret)
	})
}
