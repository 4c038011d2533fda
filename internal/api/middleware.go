package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/unbroken/internal/error_values"
	"github.com/limbo/unbroken/internal/service"
	"github.com/limbo/unbroken/pkg/httputil"
)

type ctxKey string

var (
	requestIDKContextKey ctxKey = "Request-ID"
	loggerContextKey     ctxKey = "Logger"
	uidContextKey        ctxKey = "User-ID"
	deviceContextKey     ctxKey = "Device-ID"
)

const deviceHeader = "X-Device-ID"

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		w.Header().Set("X-Request-ID", reqID.String())
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID.String())
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDKContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		if uid, err := GetUIDFromContext(r); err == nil {
			logger = logger.With(slog.String("uid", uid.String()))
		} else if device, err := GetDeviceID(r); err == nil {
			logger = logger.With(slog.String("device", device.String()))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// OptionalAuthMiddleware lets requests without credentials through as the
// anonymous log of the device named by X-Device-ID. Present but broken
// credentials are rejected.
func (s *Server) OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		if raw := r.Header.Get(deviceHeader); raw != "" {
			device, err := uuid.Parse(raw)
			if err != nil {
				logger.Error("invalid device id", slog.String("device", raw))
				httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid "+deviceHeader+" header", nil)
				return
			}
			r = r.WithContext(context.WithValue(r.Context(), deviceContextKey, device))
		}
		if r.Header.Get("Authorization") == "" {
			if _, err := GetDeviceID(r); err != nil {
				logger.Error("anonymous request without device id")
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization or device id required", nil)
				return
			}
			next.ServeHTTP(w, r)
			return
		}
		if s.accountService == nil {
			logger.Error("auth failed: accounts are disabled")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "accounts are disabled on this server", nil)
			return
		}
		// Getting token from header
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: invalid token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		// Getting claims from token string
		tokenClaims, err := s.jwtService.ParseToken(tokenString)
		if err != nil {
			logger.Error("auth failed: error parsing token", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		// Assuring if token is alive
		now := s.now()
		if tokenClaims.ExpiresAt == nil || tokenClaims.ExpiresAt.Time.Before(now) ||
			(tokenClaims.NotBefore != nil && tokenClaims.NotBefore.Time.After(now)) {
			logger.Error("tried to auth with expired or not ready token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "token expired or not ready", nil)
			return
		}
		uid, err := uuid.Parse(tokenClaims.AccountID)
		if err != nil {
			logger.Error("invalid uid in token claims")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid token payload", nil)
			return
		}
		// Assuring if account still exists
		ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
		defer cancel()
		_, err = s.accountService.GetByID(ctx, uid)
		if err != nil {
			if errors.Is(err, errorvalues.ErrAccountNotFound) {
				logger.Error("account doesn't exist")
				httputil.WriteErrorResponse(w, http.StatusNotFound, "auth failed: account not found", nil)
				return
			}
			logger.Error("error while searching for account", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while searching for account", nil)
			return
		}
		r = r.WithContext(context.WithValue(r.Context(), uidContextKey, uid))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) RequireIdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := GetUIDFromContext(r); err != nil {
			GetLoggerFromCtx(r.Context()).Error("identity required")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SyncRateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := GetIdentity(r)
		if key == "" {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			key = "anonymous:" + host
		}
		if !s.syncLimiter(key).Allow() {
			GetLoggerFromCtx(r.Context()).Warn("sync rate limit exceeded")
			httputil.WriteErrorResponse(w, http.StatusTooManyRequests, "rate limit exceeded", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}

func GetDeviceID(r *http.Request) (uuid.UUID, error) {
	device, ok := r.Context().Value(deviceContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("device id invalid or doesn't exists")
	}
	return device, nil
}

// GetIdentity returns the account id of the request. Anonymous requests get
// the identity of their device, or "" when they carry none.
func GetIdentity(r *http.Request) string {
	if uid, err := GetUIDFromContext(r); err == nil {
		return uid.String()
	}
	if device, err := GetDeviceID(r); err == nil {
		return service.DeviceIdentity(device.String())
	}
	return ""
}
