package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	os.Args = []string{"cmd"}

	configPath := parseFlags()
	assert.Equal(t, "config.env", configPath)
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	os.Args = []string{"cmd", "-c", "custom.env"}

	configPath := parseFlags()
	assert.Equal(t, "custom.env", configPath)
}

func TestParseConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	appHost, appPort, logLevel,
		storageDriver, filePath, mongoURI, mongoDB,
		sessionExpSecond,
		err := parseConfig("nonexistent.env")

	assert.NoError(t, err)
	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8080", appPort)
	assert.Equal(t, "info", logLevel)
	assert.Equal(t, "file", storageDriver)
	assert.Equal(t, "users_db.json", filePath)
	assert.Equal(t, "", mongoURI)
	assert.Equal(t, "portfolio_hub", mongoDB)
	assert.Equal(t, 3600, sessionExpSecond)
}

func TestParseConfig_FromFile(t *testing.T) {
	clearConfigEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.env")
	content := `APP_HOST=0.0.0.0
APP_PORT=9090
APP_LOG_LEVEL=debug
STORAGE_DRIVER=mongo
MONGO_URI=mongodb://localhost:27017
MONGO_DB=portfolio_test
SESSION_EXP_SECOND=600
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	appHost, appPort, logLevel,
		storageDriver, _, mongoURI, mongoDB,
		sessionExpSecond,
		err := parseConfig(path)

	assert.NoError(t, err)
	assert.Equal(t, "0.0.0.0", appHost)
	assert.Equal(t, "9090", appPort)
	assert.Equal(t, "debug", logLevel)
	assert.Equal(t, "mongo", storageDriver)
	assert.Equal(t, "mongodb://localhost:27017", mongoURI)
	assert.Equal(t, "portfolio_test", mongoDB)
	assert.Equal(t, 600, sessionExpSecond)
}

func TestParseConfig_MongoWithoutURI(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("STORAGE_DRIVER", "mongo")

	_, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	assert.Error(t, err)
}

func TestParseConfig_UnknownDriver(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("STORAGE_DRIVER", "postgres")

	_, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	assert.Error(t, err)
}

func TestParseConfig_BadSessionExpiration(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SESSION_EXP_SECOND", "not-a-number")

	_, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	assert.Error(t, err)
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "APP_LOG_LEVEL",
		"STORAGE_DRIVER", "FILE_DB_PATH", "MONGO_URI", "MONGO_DB",
		"SESSION_EXP_SECOND",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
