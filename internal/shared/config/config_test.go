package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every bound variable; viper treats empty env values as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range bindings {
		t.Setenv(env, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // no .env here
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, DataSourceMemory, cfg.DataSource)
	assert.True(t, cfg.SeedBanks)
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	clearEnv(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_ADDR", "127.0.0.1:9090")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("DATA_SOURCE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/banks")
	t.Setenv("BANK_SEED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.AppEnv)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTP.Addr)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, DataSourcePostgres, cfg.DataSource)
	assert.Equal(t, "postgres://localhost/banks", cfg.Postgres.URL)
	assert.False(t, cfg.SeedBanks)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "postgres without url", env: map[string]string{"DATA_SOURCE": "postgres"}},
		{name: "unknown data source", env: map[string]string{"DATA_SOURCE": "redis"}},
		{name: "negative shutdown timeout", env: map[string]string{"HTTP_SHUTDOWN_TIMEOUT": "-1s"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
