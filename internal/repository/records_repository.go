package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/unbroken/internal/error_values"
	"github.com/limbo/unbroken/pkg/cleanup"
	"github.com/limbo/unbroken/pkg/entity"
)

// RecordsRepository is the realtime remote store: check-ins and holidays of
// every identity live in one table, unique per (user, kind, date).
type RecordsRepository struct {
	conn PgConnection
}

func NewRecordsRepo(cfg DBConfig) *RecordsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for recordsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for recordsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing records pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &RecordsRepository{
		conn: pool,
	}
}

func NewRecordsRepoWithConn(conn PgConnection) *RecordsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for recordsRepo: " + err.Error())
	}
	return &RecordsRepository{
		conn: conn,
	}
}

func (rr *RecordsRepository) List(ctx context.Context, userID string, kind entity.RecordKind) ([]entity.Record, error) {
	rows, err := rr.conn.Query(
		ctx,
		`SELECT id, record_date, created_at FROM records WHERE user_id = $1 AND kind = $2 ORDER BY created_at DESC;`,
		userID,
		kind,
	)
	if err != nil {
		return nil, errors.New("listing records error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Record, 0)
	for rows.Next() {
		rec := entity.Record{}
		err = rows.Scan(&rec.ID, &rec.Date, &rec.CreatedAt)
		if err != nil {
			return nil, errors.New("record row parsing error: " + err.Error())
		}
		result = append(result, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected record rows error: " + err.Error())
	}
	return result, nil
}

func (rr *RecordsRepository) Add(ctx context.Context, userID string, kind entity.RecordKind, rec entity.Record) error {
	_, err := rr.conn.Exec(
		ctx,
		`INSERT INTO records (id, user_id, kind, record_date, created_at) VALUES ($1, $2, $3, $4, $5);`,
		rec.ID,
		userID,
		kind,
		rec.Date,
		rec.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrRecordExists
			}
		}
		return errors.New("adding record error: " + err.Error())
	}
	return nil
}

// Remove is idempotent: removing a record that is already gone is not an error.
func (rr *RecordsRepository) Remove(ctx context.Context, userID string, kind entity.RecordKind, id string) error {
	_, err := rr.conn.Exec(
		ctx,
		`DELETE FROM records WHERE user_id = $1 AND kind = $2 AND id = $3;`,
		userID,
		kind,
		id,
	)
	if err != nil {
		return errors.New("removing record error: " + err.Error())
	}
	return nil
}

func (rr *RecordsRepository) ReplaceAll(ctx context.Context, userID string, kind entity.RecordKind, records []entity.Record) error {
	tx, err := rr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting replace transaction error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `DELETE FROM records WHERE user_id = $1 AND kind = $2;`, userID, kind)
	if err != nil {
		tx.Rollback(ctx)
		return errors.New("clearing records error: " + err.Error())
	}
	for _, rec := range records {
		_, err = tx.Exec(
			ctx,
			`INSERT INTO records (id, user_id, kind, record_date, created_at) VALUES ($1, $2, $3, $4, $5);`,
			rec.ID,
			userID,
			kind,
			rec.Date,
			rec.CreatedAt,
		)
		if err != nil {
			tx.Rollback(ctx)
			return errors.New("inserting record error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing replace transaction error: " + err.Error())
	}
	return nil
}
