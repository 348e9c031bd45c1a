package handler

import "github.com/agricert/farmer-certification/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	FirstName   string  `json:"firstName"   validate:"required,min=3"`
	LastName    string  `json:"lastName"    validate:"required,min=3"`
	Email       string  `json:"email"       validate:"required,email"`
	Password    string  `json:"password"    validate:"required,min=8,password"`
	PhoneNumber string  `json:"phoneNumber" validate:"required"`
	FarmSize    float64 `json:"farmSize"    validate:"required,gt=0"`
	CropType    string  `json:"cropType"    validate:"required,min=2,max=50"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// --- Response envelopes ---
// Bodies mirror the original API contract: a human-readable message plus the
// affected record(s).

type registerResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type listFarmersResponse struct {
	Message string         `json:"message"`
	Users   []*domain.User `json:"users"`
}

type updateStatusResponse struct {
	Message string       `json:"message"`
	Farmer  *domain.User `json:"farmer"`
}

type statusResponse struct {
	Message string                   `json:"message"`
	Farmer  *domain.StatusProjection `json:"farmer"`
}
