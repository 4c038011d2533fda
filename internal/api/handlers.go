package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/unbroken/internal/error_values"
	"github.com/limbo/unbroken/internal/service"
	"github.com/limbo/unbroken/pkg/calendar"
	"github.com/limbo/unbroken/pkg/entity"
	"github.com/limbo/unbroken/pkg/httputil"
)

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	UserID string `json:"uid"`
	Token  string `json:"token"`
}

type DateRequest struct {
	Date string `json:"date"`
}

type AddRecordResponse struct {
	Date  string `json:"date"`
	Added bool   `json:"added"`
}

type RecordsResponse struct {
	Kind    entity.RecordKind `json:"kind"`
	Records []entity.Record   `json:"records"`
}

type TodayResponse struct {
	Date      string `json:"date"`
	CheckedIn bool   `json:"checked_in"`
}

type MigrateResponse struct {
	Migrated int `json:"migrated"`
}

func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SignUpRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("sign up error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	account, err := s.accountService.SignUp(ctx, &service.SignUpRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAccountExists):
			logger.Error("sign up error: existed account")
			httputil.WriteErrorResponse(w, http.StatusConflict, "account with such email already exists", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("sign up error: invalid credentials format")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid email or password", err)
		default:
			logger.Error("sign up error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during sign up", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(account)
	if err != nil {
		logger.Error("sign up error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, AuthResponse{
		UserID: account.ID.String(),
		Token:  token,
	})
	logger.Info("successful sign up")
}

func (s *Server) SignIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SignInRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("sign in error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	account, err := s.accountService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			logger.Error("sign in error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid email or password", nil)
			return
		}
		logger.Error("sign in error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during sign in", nil)
		return
	}
	token, err := s.jwtService.GenerateToken(account)
	if err != nil {
		logger.Error("sign in error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AuthResponse{
		UserID: account.ID.String(),
		Token:  token,
	})
	logger.Info("successful sign in")
}

func (s *Server) listRecords(w http.ResponseWriter, r *http.Request, kind entity.RecordKind) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	snap, err := s.tracker.Snapshot(ctx, GetIdentity(r))
	if err != nil {
		logger.Error("listing records error", slog.String("kind", string(kind)), slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while loading records", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, RecordsResponse{
		Kind:    kind,
		Records: snap.Records(kind),
	})
}

func (s *Server) addRecord(w http.ResponseWriter, r *http.Request, kind entity.RecordKind) {
	logger := GetLoggerFromCtx(r.Context())
	var req DateRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("adding record error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	added, err := s.tracker.AddRecord(ctx, GetIdentity(r), kind, req.Date)
	if err != nil {
		writeRecordError(w, logger, "adding record error", err)
		return
	}
	status := http.StatusOK
	if added {
		status = http.StatusCreated
		logger.Info("record added", slog.String("kind", string(kind)), slog.String("date", req.Date))
	}
	httputil.WriteJSONResponse(w, status, AddRecordResponse{Date: req.Date, Added: added})
}

func (s *Server) removeRecord(w http.ResponseWriter, r *http.Request, kind entity.RecordKind) {
	logger := GetLoggerFromCtx(r.Context())
	date := chi.URLParam(r, "date")
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err := s.tracker.RemoveRecord(ctx, GetIdentity(r), kind, date)
	if err != nil {
		writeRecordError(w, logger, "removing record error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeRecordError(w http.ResponseWriter, logger *slog.Logger, msg string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrInvalidDate):
		logger.Error(msg + ": invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
	default:
		logger.Error(msg+": service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving records", nil)
	}
}

func (s *Server) ListCheckIns(w http.ResponseWriter, r *http.Request) {
	s.listRecords(w, r, entity.KindCheckIn)
}

func (s *Server) AddCheckIn(w http.ResponseWriter, r *http.Request) {
	s.addRecord(w, r, entity.KindCheckIn)
}

func (s *Server) RemoveCheckIn(w http.ResponseWriter, r *http.Request) {
	s.removeRecord(w, r, entity.KindCheckIn)
}

func (s *Server) ListHolidays(w http.ResponseWriter, r *http.Request) {
	s.listRecords(w, r, entity.KindHoliday)
}

func (s *Server) AddHoliday(w http.ResponseWriter, r *http.Request) {
	s.addRecord(w, r, entity.KindHoliday)
}

func (s *Server) RemoveHoliday(w http.ResponseWriter, r *http.Request) {
	s.removeRecord(w, r, entity.KindHoliday)
}

func (s *Server) CheckInToday(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	added, err := s.tracker.CheckInToday(ctx, GetIdentity(r))
	if err != nil {
		writeRecordError(w, logger, "check-in error", err)
		return
	}
	status := http.StatusOK
	if added {
		status = http.StatusCreated
		logger.Info("checked in today")
	}
	httputil.WriteJSONResponse(w, status, AddRecordResponse{Date: calendar.DateKey(s.now()), Added: added})
}

func (s *Server) CheckedInToday(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	checked, err := s.tracker.HasCheckedInToday(ctx, GetIdentity(r))
	if err != nil {
		logger.Error("today status error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while loading records", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TodayResponse{Date: calendar.DateKey(s.now()), CheckedIn: checked})
}

func (s *Server) Stats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	report, err := s.tracker.Stats(ctx, GetIdentity(r), s.now())
	if err != nil {
		logger.Error("stats error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while computing stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
}

func (s *Server) Sync(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*30)
	defer cancel()
	result, err := s.tracker.Sync(ctx, GetIdentity(r))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSyncInProgress):
			logger.Error("sync error: already running")
			httputil.WriteErrorResponse(w, http.StatusConflict, "sync already in progress", nil)
		case errors.Is(err, errorvalues.ErrSyncNotConfigured):
			logger.Error("sync error: not configured")
			httputil.WriteErrorResponse(w, http.StatusNotImplemented, "sync is not configured", nil)
		default:
			logger.Error("sync error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during sync", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("sync finished", slog.Bool("synced", result.Synced))
}

func (s *Server) Migrate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	device, err := GetDeviceID(r)
	if err != nil {
		logger.Error("migration error: no device id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, deviceHeader+" header required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*30)
	defer cancel()
	n, err := s.tracker.MigrateLocal(ctx, service.DeviceIdentity(device.String()), GetIdentity(r))
	if err != nil {
		if errors.Is(err, errorvalues.ErrRemoteUnavailable) {
			logger.Error("migration error: no remote store")
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "remote store unavailable", nil)
			return
		}
		logger.Error("migration error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during migration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, MigrateResponse{Migrated: n})
	logger.Info("local records migrated", slog.Int("count", n))
}
