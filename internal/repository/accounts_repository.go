package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/unbroken/internal/error_values"
	"github.com/limbo/unbroken/pkg/cleanup"
	"github.com/limbo/unbroken/pkg/entity"
)

type AccountsRepository struct {
	conn PgConnection
}

func NewAccountsRepo(cfg DBConfig) *AccountsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for accountsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for accountsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing accounts pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &AccountsRepository{
		conn: pool,
	}
}

func NewAccountsRepoWithConn(conn PgConnection) *AccountsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for accountsRepo: " + err.Error())
	}
	return &AccountsRepository{
		conn: conn,
	}
}

func (ar *AccountsRepository) Create(ctx context.Context, account *entity.Account) error {
	if account == nil {
		return errors.New("account is nil")
	}
	_, err := ar.conn.Exec(ctx, `INSERT INTO accounts (email, password_hash) VALUES ($1, $2);`, account.Email, account.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrAccountExists
			}
		}
		return errors.New("creating account db error: " + err.Error())
	}
	return nil
}

func (ar *AccountsRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var account entity.Account
	row := ar.conn.QueryRow(ctx, `SELECT id, email, password_hash FROM accounts WHERE email = $1;`, email)
	if err := row.Scan(&account.ID, &account.Email, &account.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrAccountNotFound
		}
		return nil, errors.New("searching account by email error: " + err.Error())
	}
	return &account, nil
}

func (ar *AccountsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var account entity.Account
	row := ar.conn.QueryRow(ctx, `SELECT id, email, password_hash FROM accounts WHERE id = $1;`, id)
	if err := row.Scan(&account.ID, &account.Email, &account.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrAccountNotFound
		}
		return nil, errors.New("searching account by id error: " + err.Error())
	}
	return &account, nil
}
