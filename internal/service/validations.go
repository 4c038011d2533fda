package service

import (
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/unbroken/internal/error_values"
	"github.com/limbo/unbroken/pkg/calendar"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("datekey", func(fl validator.FieldLevel) bool {
			return calendar.ValidKey(fl.Field().String())
		})
	})
}

func validateDate(date string) error {
	InitValidator()
	if err := validate.Var(date, "required,datetime=2006-01-02,datekey"); err != nil {
		return errorvalues.ErrInvalidDate
	}
	return nil
}
