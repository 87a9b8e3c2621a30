package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"

	"github.com/flight-search/flight-prices-checker/internal/domain"
	"github.com/flight-search/flight-prices-checker/internal/infrastructure/retry"
)

// GoogleTokenSource issues Google-signed ID tokens whose audience is the
// endpoint URL, as Cloud Functions with IAM invocation expect.
type GoogleTokenSource struct {
	credentialsFile string
	newSource       func(ctx context.Context, audience string, opts ...option.ClientOption) (oauth2.TokenSource, error)
}

// Ensure GoogleTokenSource implements domain.IdentityTokenSource.
var _ domain.IdentityTokenSource = (*GoogleTokenSource)(nil)

// NewGoogleTokenSource creates a token source using a service-account file.
// An empty path falls back to Application Default Credentials.
func NewGoogleTokenSource(credentialsFile string) *GoogleTokenSource {
	return &GoogleTokenSource{credentialsFile: credentialsFile, newSource: idtoken.NewTokenSource}
}

// IDToken fetches an ID token for audience.
// Credential setup problems are permanent and not retried.
func (s *GoogleTokenSource) IDToken(ctx context.Context, audience string) (string, error) {
	var opts []option.ClientOption
	if s.credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(s.credentialsFile))
	}

	ts, err := s.newSource(ctx, audience, opts...)
	if err != nil {
		return "", retry.NewPermanent(fmt.Errorf("create id token source: %w", err))
	}

	token, err := ts.Token()
	if err != nil {
		return "", fmt.Errorf("fetch id token: %w", err)
	}
	if !token.Valid() {
		return "", errors.New("fetch id token: issued token is empty or expired")
	}
	return token.AccessToken, nil
}

// StaticTokenSource hands out one fixed token for every audience.
// It is meant for local development against an emulator or a fake service.
type StaticTokenSource struct {
	source oauth2.TokenSource
}

// Ensure StaticTokenSource implements domain.IdentityTokenSource.
var _ domain.IdentityTokenSource = (*StaticTokenSource)(nil)

// NewStaticTokenSource creates a static token source.
func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})}
}

// IDToken returns the configured token.
func (s *StaticTokenSource) IDToken(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	token, err := s.source.Token()
	if err != nil {
		return "", retry.NewPermanent(err)
	}
	if token.AccessToken == "" {
		return "", retry.NewPermanent(errors.New("static token is empty"))
	}
	return token.AccessToken, nil
}
