package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/unbroken/internal/api"
	errorvalues "github.com/limbo/unbroken/internal/error_values"
	"github.com/limbo/unbroken/internal/repository"
	"github.com/limbo/unbroken/internal/service"
	"github.com/limbo/unbroken/internal/service/mocks"
	"github.com/limbo/unbroken/pkg/entity"
	jwtservice "github.com/limbo/unbroken/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

const (
	secret   = "test_secret"
	email    = "lifter@example.com"
	password = "test_password"
)

var (
	uid     = uuid.New()
	account = &entity.Account{ID: uid, Email: email}
	fixedAt = time.Date(2024, time.March, 13, 12, 0, 0, 0, time.Local)

	deviceID = uuid.New()
	device   = service.DeviceIdentity(deviceID.String())
)

type testEnv struct {
	server   *api.Server
	accounts *mocks.MockAccountServiceI
	tracker  *mocks.MockTrackerI
	jwt      *jwtservice.JWTService
}

func newTestEnv(t *testing.T, syncRate int) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		accounts: mocks.NewMockAccountServiceI(ctrl),
		tracker:  mocks.NewMockTrackerI(ctrl),
		jwt:      jwtservice.New(secret, time.Hour),
	}
	env.server = api.New(&api.ServicesList{
		AccountService: env.accounts,
		Tracker:        env.tracker,
		JwtService:     env.jwt,
		SyncRatePerMin: syncRate,
	})
	return env
}

func (env *testEnv) bearer(t *testing.T) string {
	token, err := env.jwt.GenerateToken(account)
	require.NoError(t, err)
	return "Bearer " + token
}

func fromDevice(req *http.Request, id uuid.UUID) *http.Request {
	req.Header.Set("X-Device-ID", id.String())
	return req
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	body, err := sonic.ConfigDefault.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func TestSignUp(t *testing.T) {
	testCases := []struct {
		Desc         string
		Body         any
		MockPrepFunc func(env *testEnv)
		Status       int
	}{
		{
			Desc: "created",
			Body: api.SignUpRequest{Email: email, Password: password},
			MockPrepFunc: func(env *testEnv) {
				env.accounts.EXPECT().SignUp(gomock.Any(), &service.SignUpRequest{Email: email, Password: password}).
					Return(account, nil)
			},
			Status: http.StatusCreated,
		},
		{
			Desc: "existing account",
			Body: api.SignUpRequest{Email: email, Password: password},
			MockPrepFunc: func(env *testEnv) {
				env.accounts.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrAccountExists)
			},
			Status: http.StatusConflict,
		},
		{
			Desc: "validation error",
			Body: api.SignUpRequest{Email: "nope", Password: "short"},
			MockPrepFunc: func(env *testEnv) {
				env.accounts.EXPECT().SignUp(gomock.Any(), gomock.Any()).
					Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("email")))
			},
			Status: http.StatusBadRequest,
		},
		{
			Desc: "service error",
			Body: api.SignUpRequest{Email: email, Password: password},
			MockPrepFunc: func(env *testEnv) {
				env.accounts.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(nil, errors.New("mocked error"))
			},
			Status: http.StatusInternalServerError,
		},
		{
			Desc:         "invalid body",
			Body:         "not an object",
			MockPrepFunc: func(env *testEnv) {},
			Status:       http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			env := newTestEnv(t, 0)
			tc.MockPrepFunc(env)
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", jsonBody(t, tc.Body))
			env.server.ServeHTTP(rr, req)
			assert.Equal(t, tc.Status, rr.Code)
			if tc.Status == http.StatusCreated {
				var resp api.AuthResponse
				require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, uid.String(), resp.UserID)
				assert.NotEmpty(t, resp.Token)
			}
		})
	}
}

func TestSignIn(t *testing.T) {
	testCases := []struct {
		Desc         string
		MockPrepFunc func(env *testEnv)
		Status       int
	}{
		{
			Desc: "signed in",
			MockPrepFunc: func(env *testEnv) {
				env.accounts.EXPECT().SignIn(gomock.Any(), email, password).Return(account, nil)
			},
			Status: http.StatusOK,
		},
		{
			Desc: "wrong credentials",
			MockPrepFunc: func(env *testEnv) {
				env.accounts.EXPECT().SignIn(gomock.Any(), email, password).Return(nil, errorvalues.ErrWrongCredentials)
			},
			Status: http.StatusForbidden,
		},
		{
			Desc: "service error",
			MockPrepFunc: func(env *testEnv) {
				env.accounts.EXPECT().SignIn(gomock.Any(), email, password).Return(nil, errors.New("mocked error"))
			},
			Status: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			env := newTestEnv(t, 0)
			tc.MockPrepFunc(env)
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin",
				jsonBody(t, api.SignInRequest{Email: email, Password: password}))
			env.server.ServeHTTP(rr, req)
			assert.Equal(t, tc.Status, rr.Code)
		})
	}
}

func TestRecordHandlers(t *testing.T) {
	testCases := []struct {
		Desc         string
		Method       string
		Path         string
		Body         any
		Auth         bool
		NoDevice     bool
		DeviceHeader string
		MockPrepFunc func(env *testEnv)
		Status       int
	}{
		{
			Desc:   "anonymous list check-ins",
			Method: http.MethodGet,
			Path:   "/api/v1/checkins",
			MockPrepFunc: func(env *testEnv) {
				env.tracker.EXPECT().Snapshot(gomock.Any(), device).Return(entity.Snapshot{
					CheckIns: []entity.Record{{ID: "1", Date: "2024-03-12", CreatedAt: 1}},
				}, nil)
			},
			Status: http.StatusOK,
		},
		{
			Desc:         "anonymous without device id",
			Method:       http.MethodGet,
			Path:         "/api/v1/checkins",
			NoDevice:     true,
			MockPrepFunc: func(env *testEnv) {},
			Status:       http.StatusUnauthorized,
		},
		{
			Desc:         "malformed device id",
			Method:       http.MethodGet,
			Path:         "/api/v1/checkins",
			DeviceHeader: "phone",
			MockPrepFunc: func(env *testEnv) {},
			Status:       http.StatusBadRequest,
		},
		{
			Desc:     "signed in without device id",
			Method:   http.MethodGet,
			Path:     "/api/v1/checkins",
			Auth:     true,
			NoDevice: true,
			MockPrepFunc: func(env *testEnv) {
				env.accounts.EXPECT().GetByID(gomock.Any(), uid).Return(account, nil)
				env.tracker.EXPECT().Snapshot(gomock.Any(), uid.String()).Return(entity.Snapshot{}, nil)
			},
			Status: http.StatusOK,
		},
		{
			Desc:   "signed in list holidays",
			Method: http.MethodGet,
			Path:   "/api/v1/holidays",
			Auth:   true,
			MockPrepFunc: func(env *testEnv) {
				env.accounts.EXPECT().GetByID(gomock.Any(), uid).Return(account, nil)
				env.tracker.EXPECT().Snapshot(gomock.Any(), uid.String()).Return(entity.Snapshot{}, nil)
			},
			Status: http.StatusOK,
		},
		{
			Desc:   "add check-in",
			Method: http.MethodPost,
			Path:   "/api/v1/checkins",
			Body:   api.DateRequest{Date: "2024-03-12"},
			MockPrepFunc: func(env *testEnv) {
				env.tracker.EXPECT().AddRecord(gomock.Any(), device, entity.KindCheckIn, "2024-03-12").Return(true, nil)
			},
			Status: http.StatusCreated,
		},
		{
			Desc:   "add existing holiday",
			Method: http.MethodPost,
			Path:   "/api/v1/holidays",
			Body:   api.DateRequest{Date: "2024-03-10"},
			MockPrepFunc: func(env *testEnv) {
				env.tracker.EXPECT().AddRecord(gomock.Any(), device, entity.KindHoliday, "2024-03-10").Return(false, nil)
			},
			Status: http.StatusOK,
		},
		{
			Desc:   "add invalid date",
			Method: http.MethodPost,
			Path:   "/api/v1/checkins",
			Body:   api.DateRequest{Date: "2024-02-30"},
			MockPrepFunc: func(env *testEnv) {
				env.tracker.EXPECT().AddRecord(gomock.Any(), device, entity.KindCheckIn, "2024-02-30").
					Return(false, errorvalues.ErrInvalidDate)
			},
			Status: http.StatusBadRequest,
		},
		{
			Desc:   "add persistence error",
			Method: http.MethodPost,
			Path:   "/api/v1/checkins",
			Body:   api.DateRequest{Date: "2024-03-12"},
			MockPrepFunc: func(env *testEnv) {
				env.tracker.EXPECT().AddRecord(gomock.Any(), device, entity.KindCheckIn, "2024-03-12").
					Return(false, errorvalues.ErrPersistence)
			},
			Status: http.StatusInternalServerError,
		},
		{
			Desc:   "remove holiday",
			Method: http.MethodDelete,
			Path:   "/api/v1/holidays/2024-03-10",
			MockPrepFunc: func(env *testEnv) {
				env.tracker.EXPECT().RemoveRecord(gomock.Any(), device, entity.KindHoliday, "2024-03-10").Return(nil)
			},
			Status: http.StatusNoContent,
		},
		{
			Desc:   "check in today",
			Method: http.MethodPost,
			Path:   "/api/v1/checkins/today",
			MockPrepFunc: func(env *testEnv) {
				env.tracker.EXPECT().CheckInToday(gomock.Any(), device).Return(true, nil)
			},
			Status: http.StatusCreated,
		},
		{
			Desc:   "today status",
			Method: http.MethodGet,
			Path:   "/api/v1/checkins/today",
			MockPrepFunc: func(env *testEnv) {
				env.tracker.EXPECT().HasCheckedInToday(gomock.Any(), device).Return(false, nil)
			},
			Status: http.StatusOK,
		},
		{
			Desc:   "stats",
			Method: http.MethodGet,
			Path:   "/api/v1/stats",
			MockPrepFunc: func(env *testEnv) {
				env.tracker.EXPECT().Stats(gomock.Any(), device, gomock.Any()).Return(&service.StatsReport{}, nil)
			},
			Status: http.StatusOK,
		},
		{
			Desc:   "sync in progress",
			Method: http.MethodPost,
			Path:   "/api/v1/sync",
			MockPrepFunc: func(env *testEnv) {
				env.tracker.EXPECT().Sync(gomock.Any(), device).Return(nil, errorvalues.ErrSyncInProgress)
			},
			Status: http.StatusConflict,
		},
		{
			Desc:   "sync not configured",
			Method: http.MethodPost,
			Path:   "/api/v1/sync",
			MockPrepFunc: func(env *testEnv) {
				env.tracker.EXPECT().Sync(gomock.Any(), device).Return(nil, errorvalues.ErrSyncNotConfigured)
			},
			Status: http.StatusNotImplemented,
		},
		{
			Desc:         "migrate requires identity",
			Method:       http.MethodPost,
			Path:         "/api/v1/migrate",
			MockPrepFunc: func(env *testEnv) {},
			Status:       http.StatusUnauthorized,
		},
		{
			Desc:   "migrate",
			Method: http.MethodPost,
			Path:   "/api/v1/migrate",
			Auth:   true,
			MockPrepFunc: func(env *testEnv) {
				env.accounts.EXPECT().GetByID(gomock.Any(), uid).Return(account, nil)
				env.tracker.EXPECT().MigrateLocal(gomock.Any(), device, uid.String()).Return(3, nil)
			},
			Status: http.StatusOK,
		},
		{
			Desc:   "migrate without remote store",
			Method: http.MethodPost,
			Path:   "/api/v1/migrate",
			Auth:   true,
			MockPrepFunc: func(env *testEnv) {
				env.accounts.EXPECT().GetByID(gomock.Any(), uid).Return(account, nil)
				env.tracker.EXPECT().MigrateLocal(gomock.Any(), device, uid.String()).Return(0, errorvalues.ErrRemoteUnavailable)
			},
			Status: http.StatusServiceUnavailable,
		},
		{
			Desc:     "migrate without device id",
			Method:   http.MethodPost,
			Path:     "/api/v1/migrate",
			Auth:     true,
			NoDevice: true,
			MockPrepFunc: func(env *testEnv) {
				env.accounts.EXPECT().GetByID(gomock.Any(), uid).Return(account, nil)
			},
			Status: http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			env := newTestEnv(t, 0)
			tc.MockPrepFunc(env)
			var req *http.Request
			if tc.Body != nil {
				req = httptest.NewRequest(tc.Method, tc.Path, jsonBody(t, tc.Body))
			} else {
				req = httptest.NewRequest(tc.Method, tc.Path, nil)
			}
			if tc.Auth {
				req.Header.Set("Authorization", env.bearer(t))
			}
			switch {
			case tc.DeviceHeader != "":
				req.Header.Set("X-Device-ID", tc.DeviceHeader)
			case !tc.NoDevice:
				fromDevice(req, deviceID)
			}
			rr := httptest.NewRecorder()
			env.server.ServeHTTP(rr, req)
			assert.Equal(t, tc.Status, rr.Code)
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	testCases := []struct {
		Desc         string
		Header       func(env *testEnv) string
		MockPrepFunc func(env *testEnv)
		Status       int
	}{
		{
			Desc:   "malformed header",
			Header: func(env *testEnv) string { return "Token abc" },
			Status: http.StatusUnauthorized,
		},
		{
			Desc:   "foreign token",
			Header: func(env *testEnv) string { return "Bearer not.a.token" },
			Status: http.StatusUnauthorized,
		},
		{
			Desc: "account gone",
			Header: func(env *testEnv) string {
				token, _ := env.jwt.GenerateToken(account)
				return "Bearer " + token
			},
			MockPrepFunc: func(env *testEnv) {
				env.accounts.EXPECT().GetByID(gomock.Any(), uid).Return(nil, errorvalues.ErrAccountNotFound)
			},
			Status: http.StatusNotFound,
		},
		{
			Desc: "account lookup failed",
			Header: func(env *testEnv) string {
				token, _ := env.jwt.GenerateToken(account)
				return "Bearer " + token
			},
			MockPrepFunc: func(env *testEnv) {
				env.accounts.EXPECT().GetByID(gomock.Any(), uid).Return(nil, errors.New("mocked error"))
			},
			Status: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			env := newTestEnv(t, 0)
			if tc.MockPrepFunc != nil {
				tc.MockPrepFunc(env)
			}
			req := httptest.NewRequest(http.MethodGet, "/api/v1/checkins", nil)
			req.Header.Set("Authorization", tc.Header(env))
			rr := httptest.NewRecorder()
			env.server.ServeHTTP(rr, req)
			assert.Equal(t, tc.Status, rr.Code)
		})
	}
}

func TestSyncRateLimit(t *testing.T) {
	env := newTestEnv(t, 1)
	env.tracker.EXPECT().Sync(gomock.Any(), device).Return(&service.SyncResult{Synced: true}, nil).Times(1)

	rr := httptest.NewRecorder()
	env.server.ServeHTTP(rr, fromDevice(httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil), deviceID))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	env.server.ServeHTTP(rr, fromDevice(httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil), deviceID))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestRequestID(t *testing.T) {
	env := newTestEnv(t, 0)
	env.tracker.EXPECT().Snapshot(gomock.Any(), device).Return(entity.Snapshot{}, nil)
	rr := httptest.NewRecorder()
	env.server.ServeHTTP(rr, fromDevice(httptest.NewRequest(http.MethodGet, "/api/v1/checkins", nil), deviceID))
	_, err := uuid.Parse(rr.Header().Get("X-Request-ID"))
	assert.NoError(t, err)
}

func newSQLiteServer(t *testing.T) (*api.Server, *service.SessionManager) {
	t.Helper()
	kv, err := repository.OpenSQLiteKV(filepath.Join(t.TempDir(), "unbroken.db"))
	require.NoError(t, err)
	manager := service.NewSessionManager(service.SessionOptions{KV: kv})
	manager.SetClock(func() time.Time { return fixedAt })
	t.Cleanup(func() { manager.Close() })

	server := api.New(&api.ServicesList{
		Tracker:    manager,
		JwtService: jwtservice.New(secret, time.Hour),
	})
	server.SetClock(func() time.Time { return fixedAt })
	return server, manager
}

func TestTrackerOverSQLite(t *testing.T) {
	server, manager := newSQLiteServer(t)

	t.Run("check in today", func(t *testing.T) {
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, fromDevice(httptest.NewRequest(http.MethodPost, "/api/v1/checkins/today", nil), deviceID))
		require.Equal(t, http.StatusCreated, rr.Code)
		var resp api.AddRecordResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "2024-03-13", resp.Date)
		assert.True(t, resp.Added)
	})
	t.Run("check in again is a no-op", func(t *testing.T) {
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, fromDevice(httptest.NewRequest(http.MethodPost, "/api/v1/checkins",
			jsonBody(t, api.DateRequest{Date: "2024-03-13"})), deviceID))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("list", func(t *testing.T) {
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, fromDevice(httptest.NewRequest(http.MethodGet, "/api/v1/checkins", nil), deviceID))
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.RecordsResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp.Records, 1)
		assert.Equal(t, "2024-03-13", resp.Records[0].Date)
	})
	t.Run("seeded sundays", func(t *testing.T) {
		snap, err := manager.Snapshot(context.Background(), device)
		require.NoError(t, err)
		assert.NotEmpty(t, snap.Holidays)
	})
	t.Run("stats", func(t *testing.T) {
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, fromDevice(httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil), deviceID))
		require.Equal(t, http.StatusOK, rr.Code)
		var report service.StatsReport
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&report))
		assert.Equal(t, 1, report.Stats.TotalCheckIns)
		assert.Equal(t, 1, report.Stats.CurrentStreak)
	})
	t.Run("sync not configured", func(t *testing.T) {
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, fromDevice(httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil), deviceID))
		assert.Equal(t, http.StatusNotImplemented, rr.Code)
	})
	t.Run("accounts disabled", func(t *testing.T) {
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup",
			jsonBody(t, api.SignUpRequest{Email: email, Password: password})))
		assert.Equal(t, http.StatusNotFound, rr.Code)

		rr = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/checkins", nil)
		req.Header.Set("Authorization", "Bearer token")
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAnonymousDevicesAreIsolated(t *testing.T) {
	server, _ := newSQLiteServer(t)
	phone, laptop := uuid.New(), uuid.New()

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, fromDevice(httptest.NewRequest(http.MethodPost, "/api/v1/checkins",
		jsonBody(t, api.DateRequest{Date: "2024-03-01"})), phone))
	require.Equal(t, http.StatusCreated, rr.Code)

	list := func(id uuid.UUID) []entity.Record {
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, fromDevice(httptest.NewRequest(http.MethodGet, "/api/v1/checkins", nil), id))
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.RecordsResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		return resp.Records
	}
	assert.Empty(t, list(laptop))
	require.Len(t, list(phone), 1)
	assert.Equal(t, "2024-03-01", list(phone)[0].Date)
}
