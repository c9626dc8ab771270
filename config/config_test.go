package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("SWEEP_BATCH_SIZE", "7")

	path := writeFile(t, `
http:
  port: 9090
storage:
  driver: memory
kafka:
  brokers: [k1:9092, k2:9092]
sweep:
  interval: 30s
  batch_size: 50
policy:
  admin_unassign_running: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, 30*time.Second, cfg.Sweep.Interval)
	assert.Equal(t, 7, cfg.Sweep.BatchSize)
	assert.True(t, cfg.Policy.AdminUnassignRunning)
	assert.False(t, cfg.Policy.AdminsOnlyCreateEvaluations)
	assert.Equal(t, "secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "evaluation-lifecycle", cfg.Kafka.LifecycleTopic)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, ":50051", cfg.Health.GRPCAddress)
	assert.Equal(t, time.Minute, cfg.Sweep.Interval)
	assert.Equal(t, 100, cfg.Sweep.BatchSize)
	assert.False(t, cfg.Kafka.Enabled())
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	path := writeFile(t, "storage:\n  driver: memory\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "AUTH_JWT_SECRET")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			HTTP:    HTTP{Port: 8080},
			Storage: Storage{Driver: DriverPostgres, PostgresURL: "postgres://x"},
			Auth:    Auth{JWTSecret: "s"},
		}
	}

	cfg := valid()
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Storage.Driver = "sqlite"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Storage.PostgresURL = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Sweep.BatchSize = -1
	assert.Error(t, cfg.Validate())
}

func TestPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, "config/config.yaml", Path())
	t.Setenv("CONFIG_PATH", "/etc/evaluation/config.yaml")
	assert.Equal(t, "/etc/evaluation/config.yaml", Path())
}
