package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// TokenProvider abstracts where OAuth tokens come from, so the calendar
// client can run off the cache-dir token files in normal use and off an
// in-memory token in tests.
type TokenProvider interface {
	// GetTokenForAccount returns a valid OAuth token for account,
	// refreshing it if necessary.
	GetTokenForAccount(ctx context.Context, account string) (*oauth2.Token, error)

	// HasTokenForAccount reports whether a token is stored for account.
	HasTokenForAccount(account string) bool
}

// FileTokenProvider reads the two-field "access refresh" token files that
// `whenami auth` writes under <user cache dir>/whenami/.
type FileTokenProvider struct{}

// NewFileTokenProvider creates a provider backed by the token files in the
// user cache directory.
func NewFileTokenProvider() *FileTokenProvider {
	return &FileTokenProvider{}
}

// GetTokenForAccount loads the stored token for account and refreshes it
// through the OAuth endpoint. The stored token is treated as expired, so
// every invocation starts from the refresh token.
func (p *FileTokenProvider) GetTokenForAccount(ctx context.Context, account string) (*oauth2.Token, error) {
	ts, err := GetTokenSourceForAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	token, err := ts.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token for account %s: %w", account, err)
	}

	return token, nil
}

// HasTokenForAccount reports whether a token file exists for account.
func (p *FileTokenProvider) HasTokenForAccount(account string) bool {
	return HasTokenForAccount(account)
}
