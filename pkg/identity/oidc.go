package identity

import (
	"context"
	"errors"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/taskboard/taskboard/pkg/api/repos"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

// OIDCResolver accepts ID tokens from an external OpenID Connect issuer and
// maps their email claim to a registered user. The stored role of that user
// becomes the actor role.
type OIDCResolver struct {
	verifier *oidc.IDTokenVerifier
	users    repos.UserRepo
}

// NewOIDCResolver discovers the issuer's signing keys.
func NewOIDCResolver(ctx context.Context, issuer, clientID string, users repos.UserRepo) (*OIDCResolver, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, err
	}

	return NewOIDCResolverWithVerifier(provider.Verifier(&oidc.Config{ClientID: clientID}), users), nil
}

func NewOIDCResolverWithVerifier(verifier *oidc.IDTokenVerifier, users repos.UserRepo) *OIDCResolver {
	return &OIDCResolver{
		verifier: verifier,
		users:    users,
	}
}

func (r *OIDCResolver) Resolve(ctx context.Context, logger logx.Logger, raw string) (taskboard.Actor, error) {
	logger = logger.WithName("oidc-resolver")

	token, err := r.verifier.Verify(ctx, raw)
	if err != nil {
		logger.Debug(failedToVerifyIDToken, logx.Data{Key: "error", Value: err.Error()})
		return taskboard.Actor{}, unauthenticated(err)
	}

	var claims struct {
		Email         string `json:"email"`
		EmailVerified *bool  `json:"email_verified"`
	}
	if err = token.Claims(&claims); err != nil {
		return taskboard.Actor{}, unauthenticated(err)
	}

	email := taskboard.NormalizeEmail(claims.Email)
	if email == "" {
		logger.Debug(missingEmailClaim, logx.Data{Key: "subject", Value: token.Subject})
		return taskboard.Actor{}, unauthenticated(errors.New("missing email claim"))
	}
	if claims.EmailVerified != nil && !*claims.EmailVerified {
		logger.Debug(unverifiedEmail, logx.Data{Key: "subject", Value: token.Subject})
		return taskboard.Actor{}, unauthenticated(errors.New("email not verified"))
	}

	user, err := r.users.FindUser(ctx, logger, repos.FindUserQuery{Email: email})
	if errors.Is(err, taskboard.ErrUserNotFound) {
		return taskboard.Actor{}, unauthenticated(err)
	}
	if err != nil {
		logger.Error(failedToFindUser, err)
		return taskboard.Actor{}, err
	}

	return user.Actor(), nil
}
