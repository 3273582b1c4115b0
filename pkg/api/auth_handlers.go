package api

import (
	"errors"
	"net/http"
	"net/mail"
	"strconv"
	"time"

	"github.com/taskboard/taskboard/pkg/api/repos"
	"github.com/taskboard/taskboard/pkg/identity"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

type registerResponse struct {
	Token string          `json:"token"`
	User  *taskboard.User `json:"user"`
}

type loginResponse struct {
	User *taskboard.User `json:"user"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := s.requestLogger(r, "register")
	logger.Debug(starting)
	defer logger.Debug(finished)

	b, err := decodeBody(w, r)
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	query, password, err := registration(b)
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	query.PasswordHash, err = identity.HashPassword(password)
	if err != nil {
		if errorStatus(err) == http.StatusInternalServerError {
			logger.Error(failedToHashPassword, err)
		}
		s.writeError(w, logger, err)
		return
	}

	user, err := s.store.RegisterUser(ctx, logger, query)
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	token, _, err := s.tokens.Issue(user)
	if err != nil {
		logger.Error(failedToIssueToken, err)
		s.writeError(w, logger, err)
		return
	}

	s.securityLogger.Log(ctx, "Register", "User registration",
		logx.SecurityData{Key: "actorID", Value: strconv.FormatInt(user.ID, 10)},
		logx.SecurityData{Key: "role", Value: string(user.Role)},
	)
	logger.Info(success, logx.Data{Key: "user.id", Value: user.ID})

	writeJSON(w, logger, http.StatusCreated, registerResponse{Token: token, User: user})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := s.requestLogger(r, "login")
	logger.Debug(starting)
	defer logger.Debug(finished)

	b, err := decodeBody(w, r)
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	if err = b.required("email", "password"); err != nil {
		s.writeError(w, logger, err)
		return
	}
	email, err := b.string("email")
	if err != nil {
		s.writeError(w, logger, err)
		return
	}
	password, err := b.string("password")
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	user, err := s.authenticateUser(r, logger, taskboard.NormalizeEmail(*email), *password)
	if err != nil {
		s.securityLogger.Log(ctx, "Login", "User login",
			logx.SecurityData{Key: "outcome", Value: "failure"},
		)
		s.writeError(w, logger, err)
		return
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		logger.Error(failedToIssueToken, err)
		s.writeError(w, logger, err)
		return
	}

	s.securityLogger.Log(ctx, "Login", "User login",
		logx.SecurityData{Key: "actorID", Value: strconv.FormatInt(user.ID, 10)},
		logx.SecurityData{Key: "outcome", Value: "success"},
	)

	http.SetCookie(w, s.authCookie(token, expiresAt))
	writeJSON(w, logger, http.StatusOK, loginResponse{User: user})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	actor, logger := s.actorLogger(r, "me")

	user, err := s.store.FindUser(r.Context(), logger, repos.FindUserQuery{UserID: actor.ID})
	if err != nil {
		s.writeError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, user)
}

// authenticateUser checks a login. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *Server) authenticateUser(r *http.Request, logger logx.Logger, email, password string) (*taskboard.User, error) {
	user, err := s.store.FindUser(r.Context(), logger, repos.FindUserQuery{Email: email})
	if errors.Is(err, taskboard.ErrUserNotFound) {
		return nil, taskboard.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err = identity.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Server) authCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(s.tokens.TTL().Seconds()),
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	}
}

func registration(b body) (repos.RegisterUserQuery, string, error) {
	var query repos.RegisterUserQuery

	if err := b.required("firstName", "lastName", "email", "password"); err != nil {
		return query, "", err
	}

	var values [4]string
	for i, key := range []string{"firstName", "lastName", "email", "password"} {
		v, err := b.string(key)
		if err != nil {
			return query, "", err
		}
		values[i] = *v
	}

	for i, key := range []string{"firstName", "lastName"} {
		if err := validateLength(key, values[i], taskboard.MaxNameLength); err != nil {
			return query, "", err
		}
	}

	email := taskboard.NormalizeEmail(values[2])
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return query, "", taskboard.NewErrInvalid("email", "must be a valid email address")
	}

	query.FirstName = values[0]
	query.LastName = values[1]
	query.Email = email

	return query, values[3], nil
}
