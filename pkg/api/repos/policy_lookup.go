package repos

import (
	"context"
	"errors"

	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/policy"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

// PolicyLookup serves the reads the access policy needs from a Store.
type PolicyLookup struct {
	logger   logx.Logger
	projects ProjectRepo
	users    UserRepo
}

func NewPolicyLookup(logger logx.Logger, projects ProjectRepo, users UserRepo) *PolicyLookup {
	return &PolicyLookup{
		logger:   logger.WithName("policy-lookup"),
		projects: projects,
		users:    users,
	}
}

func (l *PolicyLookup) FindProject(ctx context.Context, projectID int64) (policy.ProjectRef, error) {
	p, err := l.projects.FindProject(ctx, l.logger, FindProjectQuery{ProjectID: projectID})
	if err != nil {
		return policy.ProjectRef{}, err
	}

	return *policy.ProjectRefOf(p), nil
}

func (l *PolicyLookup) UserExists(ctx context.Context, userID int64) (bool, error) {
	_, err := l.users.FindUser(ctx, l.logger, FindUserQuery{UserID: userID})
	if errors.Is(err, taskboard.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (l *PolicyLookup) ManagedProjectIDs(ctx context.Context, managerID int64) ([]int64, error) {
	return l.projects.ListManagedProjectIDs(ctx, l.logger, ListManagedProjectIDsQuery{ManagerID: managerID})
}

var _ policy.Lookup = (*PolicyLookup)(nil)
