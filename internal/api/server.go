package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/unbroken/internal/service"
	"golang.org/x/time/rate"
)

type Server struct {
	mx             *chi.Mux
	accountService service.AccountServiceI
	tracker        service.TrackerI
	jwtService     JWTServiceI

	syncLimit  rate.Limit
	syncBurst  int
	limitersMu sync.Mutex
	limiters   map[string]*rate.Limiter

	now func() time.Time
}

type ServicesList struct {
	AccountService service.AccountServiceI
	Tracker        service.TrackerI
	JwtService     JWTServiceI
	// Sync requests allowed per identity per minute. Zero means 6.
	SyncRatePerMin int
}

func New(servicesOptions *ServicesList) *Server {
	perMin := servicesOptions.SyncRatePerMin
	if perMin <= 0 {
		perMin = 6
	}
	s := &Server{
		mx:             chi.NewMux(),
		accountService: servicesOptions.AccountService,
		tracker:        servicesOptions.Tracker,
		jwtService:     servicesOptions.JwtService,
		syncLimit:      rate.Every(time.Minute / time.Duration(perMin)),
		syncBurst:      max(perMin/2, 1),
		limiters:       make(map[string]*rate.Limiter),
		now:            time.Now,
	}
	s.MountEndpoints()
	return s
}

func (s *Server) MountEndpoints() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		if s.accountService != nil {
			r.Post("/auth/signup", s.SignUp)
			r.Post("/auth/signin", s.SignIn)
		}

		r.Group(func(r chi.Router) {
			r.Use(s.OptionalAuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/checkins", s.ListCheckIns)
			r.Post("/checkins", s.AddCheckIn)
			r.Get("/checkins/today", s.CheckedInToday)
			r.Post("/checkins/today", s.CheckInToday)
			r.Delete("/checkins/{date}", s.RemoveCheckIn)
			r.Get("/holidays", s.ListHolidays)
			r.Post("/holidays", s.AddHoliday)
			r.Delete("/holidays/{date}", s.RemoveHoliday)
			r.Get("/stats", s.Stats)
			r.With(s.SyncRateLimitMiddleware).Post("/sync", s.Sync)
			r.With(s.RequireIdentityMiddleware).Post("/migrate", s.Migrate)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		slog.Info("api shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) syncLimiter(key string) *rate.Limiter {
	s.limitersMu.Lock()
	defer s.limitersMu.Unlock()
	if l, ok := s.limiters[key]; ok {
		return l
	}
	l := rate.NewLimiter(s.syncLimit, s.syncBurst)
	s.limiters[key] = l
	return l
}

func (s *Server) SetClock(now func() time.Time) {
	s.now = now
}
