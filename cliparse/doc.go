// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: sqlite file path or PostgreSQL connection string
    (default: polls.db for sqlite, required for postgres)
  - DBMaxOpenConns: connection pool size for postgres (default: 10)
  - SeedFile: CSV of questions loaded at startup (optional)
  - LogFormat: text or json (default: text)
  - EnvFile: dotenv file read before the environment (default: .env)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-seed        Seed CSV file
	-log-format  Log format
	-env         Dotenv file

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	SEED_FILE         → -seed
	LOG_FORMAT        → -log-format
	DB_MAX_OPEN_CONNS (env only)

CLI flags take precedence over environment variables. The dotenv file is
loaded first and never overwrites variables that are already set.
*/
package cliparse
