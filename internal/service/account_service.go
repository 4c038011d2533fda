package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/unbroken/internal/error_values"
	"github.com/limbo/unbroken/internal/repository"
	"github.com/limbo/unbroken/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type AccountService struct {
	repo repository.AccountsRepositoryI
}

func NewAccountService(accountsRepo repository.AccountsRepositoryI) *AccountService {
	InitValidator()
	return &AccountService{
		repo: accountsRepo,
	}
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (as *AccountService) SignUp(ctx context.Context, req *SignUpRequest) (*entity.Account, error) {
	if req == nil {
		return nil, errors.New("sign up request is nil")
	}
	req.Email = normalizeEmail(req.Email)
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrValidation
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	err = as.repo.Create(ctx, &entity.Account{
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrAccountExists) {
			return nil, errorvalues.ErrAccountExists
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	account, err := as.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return account, nil
}

func (as *AccountService) SignIn(ctx context.Context, email, password string) (*entity.Account, error) {
	account, err := as.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, errorvalues.ErrAccountNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return account, nil
}

func (as *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := as.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAccountNotFound) {
			return nil, errorvalues.ErrAccountNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return account, nil
}
