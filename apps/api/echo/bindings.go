package echoapi

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Blank phone numbers and codes are left to the home page, which reports them as notifications.

type CodeRequest struct {
	Phone string `json:"phone" validate:"max=20"`
}

func (r CodeRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(r)
}

type LoginRequest struct {
	Code string `json:"code" validate:"max=10"`
}

func (r LoginRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(r)
}

type CategoryRequest struct {
	Category string `json:"category" validate:"notblank"`
}

func (r CategoryRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(r)
}

type SubjectRequest struct {
	Subject string `json:"subject" validate:"notblank"`
}

func (r SubjectRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(r)
}

type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
