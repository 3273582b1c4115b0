package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskboard/taskboard/pkg/api/repos"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

// Resolver turns the credential presented with a request into an actor.
//
// A credential is first checked as one of our own bearer tokens and, when
// an OIDC resolver is configured, then as an external ID token. The user
// named by a bearer token must still exist; the actor carries the role
// stored for that user, so role changes apply to tokens already issued.
type Resolver struct {
	tokens *TokenIssuer
	oidc   *OIDCResolver
	users  repos.UserRepo
}

func NewResolver(tokens *TokenIssuer, users repos.UserRepo, oidcResolver *OIDCResolver) *Resolver {
	return &Resolver{
		tokens: tokens,
		oidc:   oidcResolver,
		users:  users,
	}
}

func (r *Resolver) ResolveActor(ctx context.Context, logger logx.Logger, credential string) (taskboard.Actor, error) {
	logger = logger.WithName("resolve-actor")

	if credential == "" {
		return taskboard.Actor{}, taskboard.ErrUnauthenticated
	}

	actor, err := r.tokens.Verify(credential)
	if err != nil {
		logger.Debug(failedToVerifyToken, logx.Data{Key: "error", Value: err.Error()})
		if r.oidc != nil {
			return r.oidc.Resolve(ctx, logger, credential)
		}
		return taskboard.Actor{}, err
	}

	user, err := r.users.FindUser(ctx, logger, repos.FindUserQuery{UserID: actor.ID})
	if errors.Is(err, taskboard.ErrUserNotFound) {
		return taskboard.Actor{}, unauthenticated(err)
	}
	if err != nil {
		logger.Error(failedToFindUser, err, logx.Data{Key: "user.id", Value: actor.ID})
		return taskboard.Actor{}, err
	}

	return user.Actor(), nil
}

func unauthenticated(cause error) error {
	return fmt.Errorf("%w: %s", taskboard.ErrUnauthenticated, cause)
}
