package dto

import (
	appdiet "github.com/dailydiet/backend/internal/application/diet"
	appidentity "github.com/dailydiet/backend/internal/application/identity"
)

// ErrorResponse is the wire shape of every error body.
// Fields carries per-field validation detail when available.
type ErrorResponse struct {
	StatusCode int               `json:"statusCode"`
	Message    string            `json:"message"`
	Fields     map[string]string `json:"error,omitempty"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(statusCode int, message string) ErrorResponse {
	return ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewValidationErrorResponse creates a 400 response with field-level detail
func NewValidationErrorResponse(message string, fields map[string]string) ErrorResponse {
	return ErrorResponse{
		StatusCode: 400,
		Message:    message,
		Fields:     fields,
	}
}

// UserListResponse is the body of the user listing endpoint
type UserListResponse struct {
	StatusCode int                        `json:"statusCode"`
	Users      []appidentity.UserResponse `json:"users"`
}

// MealListResponse is the body of the meal listing endpoint. The single-meal
// endpoint returns the meal object bare, so it has no wrapper here.
type MealListResponse struct {
	Meals []appdiet.MealResponse `json:"meals"`
}
