package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/taskboard/taskboard/pkg/contextx"
	"github.com/taskboard/taskboard/pkg/logx"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

type actorKey struct{}

func withActor(parent context.Context, actor taskboard.Actor) context.Context {
	return context.WithValue(parent, actorKey{}, actor)
}

func actorFromContext(ctx context.Context) taskboard.Actor {
	actor, _ := ctx.Value(actorKey{}).(taskboard.Actor)
	return actor
}

// receive stamps the receipt time and the caller's address on the request
// context for the audit log.
func (s *Server) receive(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := contextx.WithReceiptTime(r.Context(), s.clock.Now())
		if addr, ok := contextx.ParseRemoteAddr(r.RemoteAddr); ok {
			ctx = contextx.WithRemoteAddr(ctx, addr)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				if p == http.ErrAbortHandler {
					panic(p)
				}

				s.logger.Error(internal, fmt.Errorf("%v", p), logx.Data{
					Key:   "request.id",
					Value: middleware.GetReqID(r.Context()),
				})
				writeJSON(w, s.logger, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// instrument counts requests and successes and times every request of the
// named route.
func (s *Server) instrument(route string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := s.clock.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		s.statter.Inc("count."+route, 1)
		defer func() {
			s.statter.TimingDuration("requestduration."+route, s.clock.Since(start))
			if status := ww.Status(); status == 0 || status < http.StatusBadRequest {
				s.statter.Inc("success."+route, 1)
			}
		}()

		handler(ww, r)
	}
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := s.requestLogger(r, "authenticate")

		actor, err := s.resolver.ResolveActor(ctx, logger, s.credential(r))
		if err != nil {
			s.securityLogger.Log(ctx, "Authenticate", "Request authentication",
				logx.SecurityData{Key: "outcome", Value: "failure"},
				logx.SecurityData{Key: "path", Value: r.URL.Path},
			)
			if !isUnauthenticated(err) {
				logger.Error(failedToResolveActor, err)
			}
			s.writeError(w, logger, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withActor(ctx, actor)))
	})
}

// credential prefers the Authorization bearer token over the auth cookie.
func (s *Server) credential(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}

	if c, err := r.Cookie(s.cookieName); err == nil {
		return c.Value
	}

	return ""
}

func (s *Server) requestLogger(r *http.Request, name string) logx.Logger {
	return s.logger.WithName(name).WithData(logx.Data{
		Key:   "request.id",
		Value: middleware.GetReqID(r.Context()),
	})
}

func (s *Server) actorLogger(r *http.Request, name string) (taskboard.Actor, logx.Logger) {
	actor := actorFromContext(r.Context())
	logger := s.requestLogger(r, name).WithData(
		logx.Data{Key: "actor.id", Value: actor.ID},
		logx.Data{Key: "actor.role", Value: actor.Role},
	)

	return actor, logger
}
