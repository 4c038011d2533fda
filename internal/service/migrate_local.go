package service

import (
	"context"
	"errors"
	"log/slog"

	errorvalues "github.com/limbo/unbroken/internal/error_values"
	"github.com/limbo/unbroken/internal/repository"
	"github.com/limbo/unbroken/pkg/entity"
)

// MigrateLocalToRemote copies the records of the anonymous session from
// into the remote store of identity. Dates the identity already has are
// left alone. It is best effort: single failures are logged and skipped.
func MigrateLocalToRemote(ctx context.Context, kv repository.KVStore, repo repository.RecordsRepositoryI, from, identity string) (int, error) {
	if IsAnonymous(identity) {
		return 0, errors.New("migration requires an account identity")
	}
	if !IsAnonymous(from) {
		return 0, errors.New("migration source must be an anonymous session")
	}
	snap, err := NewLocalBackend(kv, from).Load(ctx)
	if err != nil {
		return 0, err
	}
	logger := slog.Default().With(slog.String("uid", identity))
	migrated := 0
	for _, kind := range []entity.RecordKind{entity.KindCheckIn, entity.KindHoliday} {
		for _, rec := range snap.Records(kind) {
			err = repo.Add(ctx, identity, kind, rec)
			switch {
			case err == nil:
				migrated++
			case errors.Is(err, errorvalues.ErrRecordExists):
			default:
				logger.Warn("migrating local record failed",
					slog.String("kind", string(kind)),
					slog.String("date", rec.Date),
					slog.String("error", err.Error()),
				)
			}
		}
	}
	if migrated > 0 {
		logger.Info("local records migrated", slog.Int("count", migrated))
	}
	return migrated, nil
}
