// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

/*
Package auth generates and validates the reset confirmation token.

Resetting the game is the one destructive operation the service exposes, so
it takes two steps: the client fetches a token, shows its confirmation UI,
and presents the token on the actual DELETE. Tokens are HMAC-SHA256 over
the state slot key with a server-side salt:

	token := auth.GenerateResetToken("game", salt)
	err := auth.ValidateResetToken("game", token, salt)

Validation uses constant-time comparison.
*/
package auth
