// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "DB_MAX_OPEN_CONNS", "SEED_FILE", "LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("SEED_FILE", "questions.csv")

	cfg, err := ParseFlags([]string{"-env", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.SeedFile != "questions.csv" {
		t.Errorf("expected seed file questions.csv, got %s", cfg.SeedFile)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-env", ""})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("expected file:test.db, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-env", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "polls.db" {
		t.Errorf("expected polls.db, got %s", cfg.DatabaseURL)
	}
	if cfg.DBMaxOpenConns != 10 {
		t.Errorf("expected 10 open conns, got %d", cfg.DBMaxOpenConns)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("expected text log format, got %s", cfg.LogFormat)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad port", map[string]string{"PORT": "abc"}, nil},
		{"postgres without url", map[string]string{"DATABASE_TYPE": "postgres"}, nil},
		{"unknown database", nil, []string{"-t", "mysql"}},
		{"bad pool size", map[string]string{"DB_MAX_OPEN_CONNS": "0"}, nil},
		{"bad log format", nil, []string{"-log-format", "xml"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			args := append([]string{"-env", ""}, tc.args...)
			if _, err := ParseFlags(args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseFlags_DotEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT=7000\nLOG_FORMAT=json\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"-env", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 7000 {
		t.Errorf("expected port from .env, got %d", cfg.Port)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected json log format from .env, got %s", cfg.LogFormat)
	}
}

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("expected missing file to be ignored, got %v", err)
	}
}
