package flags

import (
	"context"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/taskboard/taskboard/pkg/api/repos"
	"github.com/taskboard/taskboard/pkg/identity"
	"github.com/taskboard/taskboard/pkg/ioutilx"
	"github.com/taskboard/taskboard/pkg/logx"
)

type AuthFlag struct {
	SigningKey   ioutilx.FileOrString `long:"signing-key" env:"AUTH_SIGNING_KEY" description:"Key signing the bearer tokens, as a file path or literal"`
	TokenTTL     time.Duration        `long:"token-ttl" env:"AUTH_TOKEN_TTL" default:"720h" description:"Lifetime of an issued token"`
	CookieName   string               `long:"cookie-name" env:"AUTH_COOKIE_NAME" default:"token" description:"Name of the cookie carrying the token"`
	CookieSecure bool                 `long:"cookie-secure" env:"AUTH_COOKIE_SECURE" description:"Only send the auth cookie over TLS"`

	OIDC OIDCFlag `group:"OIDC" namespace:"oidc"`
}

type OIDCFlag struct {
	Issuer   string `long:"issuer" env:"AUTH_OIDC_ISSUER" description:"OpenID Connect issuer whose ID tokens are accepted; off when empty"`
	ClientID string `long:"client-id" env:"AUTH_OIDC_CLIENT_ID" description:"Audience expected in accepted ID tokens"`
}

func (f AuthFlag) TokenIssuer(clk clock.Clock) (*identity.TokenIssuer, error) {
	key, err := f.SigningKey.Read()
	if err != nil {
		return nil, err
	}

	return identity.NewTokenIssuer(key, identity.WithTokenTTL(f.TokenTTL), identity.WithTokenClock(clk))
}

// Resolver accepts the issued bearer tokens and, when an issuer is
// configured, OIDC ID tokens.
func (f AuthFlag) Resolver(ctx context.Context, logger logx.Logger, tokens *identity.TokenIssuer, users repos.UserRepo) (*identity.Resolver, error) {
	var oidcResolver *identity.OIDCResolver

	if f.OIDC.Issuer != "" {
		var err error
		oidcResolver, err = identity.NewOIDCResolver(ctx, f.OIDC.Issuer, f.OIDC.ClientID, users)
		if err != nil {
			logger.Error(failedToCreateOIDCResolver, err, logx.Data{Key: "issuer", Value: f.OIDC.Issuer})
			return nil, err
		}
	}

	return identity.NewResolver(tokens, users, oidcResolver), nil
}
