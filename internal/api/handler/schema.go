package handler

import "github.com/99minutos/sessionauth/internal/core/domain"

type credentialsForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// validateResponse is the body of GET /api/validate. Name and Role are only
// set when Status is "ok"; Message only otherwise.
type validateResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name,omitempty"`
	Role    string `json:"role,omitempty"`
	Message string `json:"message,omitempty"`
}

type createOrderRequest struct {
	Item  string  `json:"item"  validate:"required"`
	Price float64 `json:"price" validate:"required"`
}

type createOrderResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type ordersResponse struct {
	Orders []domain.Order `json:"orders"`
}

type errorResponse struct {
	Error string `json:"error"`
}
