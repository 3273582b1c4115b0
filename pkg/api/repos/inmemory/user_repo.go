package inmemory

import (
	"context"

	"github.com/taskboard/taskboard/pkg/api/repos"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/policy"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

func (s *Store) RegisterUser(
	ctx context.Context,
	logger logx.Logger,
	query repos.RegisterUserQuery,
) (*taskboard.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findUserByEmail(query.Email); ok {
		return nil, taskboard.ErrUserAlreadyExists
	}

	now := s.now()
	s.lastUserID++

	user := taskboard.User{
		ID:           s.lastUserID,
		FirstName:    query.FirstName,
		LastName:     query.LastName,
		Email:        query.Email,
		PasswordHash: query.PasswordHash,
		Role:         taskboard.InitialRole(int64(len(s.users))),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[user.ID] = user

	return &user, nil
}

func (s *Store) FindUser(
	ctx context.Context,
	logger logx.Logger,
	query repos.FindUserQuery,
) (*taskboard.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		user taskboard.User
		ok   bool
	)

	if query.UserID != 0 {
		user, ok = s.users[query.UserID]
	} else if query.Email != "" {
		user, ok = s.findUserByEmail(query.Email)
	}

	if !ok {
		return nil, taskboard.ErrUserNotFound
	}

	return &user, nil
}

func (s *Store) ListUsers(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListUsersQuery,
) ([]*taskboard.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*taskboard.User, 0)
	for _, id := range sortedIDs(s.users) {
		user := s.users[id]
		if query.Filter.AcceptUser(policy.UserRef{ID: id}) {
			users = append(users, &user)
		}
	}

	return users, nil
}

func (s *Store) CountUsers(
	ctx context.Context,
	logger logx.Logger,
) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.users)), nil
}

func (s *Store) UpdateUserRole(
	ctx context.Context,
	logger logx.Logger,
	query repos.UpdateUserRoleQuery,
) (*taskboard.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[query.UserID]
	if !ok {
		return nil, taskboard.ErrUserNotFound
	}

	user.Role = query.Role
	user.UpdatedAt = s.now()
	s.users[user.ID] = user

	return &user, nil
}

func (s *Store) findUserByEmail(email string) (taskboard.User, bool) {
	for _, user := range s.users {
		if user.Email == email {
			return user, true
		}
	}

	return taskboard.User{}, false
}
