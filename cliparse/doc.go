/*
Package cliparse resolves server configuration from CLI flags with
environment variable fallbacks.

Flags win over environment variables; defaults apply last:

	-p / PORT                 server port (default 8231)
	-b / STORE_BACKEND        bolt, sqlite, postgres, or memory (default bolt)
	-s / STORE_PATH           file path for bolt and sqlite (default tally.db)
	-d / DATABASE_URL         postgres connection string
	--reset-salt / RESET_TOKEN_SALT  secret for reset confirmation tokens
	STATE_KEY                 storage slot key (default "game", env only)

RESET_TOKEN_SALT is required. DATABASE_URL is required only when the
postgres backend is selected.
*/
package cliparse
