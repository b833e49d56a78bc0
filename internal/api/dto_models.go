package api

import "gptsolver-backend-go/internal/models"

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse acknowledges a write without returning the resource.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse returns the id of a newly created resource.
type CreatedResponse struct {
	Message string `json:"message,omitempty"`
	ID      string `json:"id"`
}

// TokensCountResponse is returned by GET /user?tokenscount=.
type TokensCountResponse struct {
	TokensCount int64 `json:"tokensCount"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func userFromRequest(req models.UpdateUserRequest) *models.User {
	user := &models.User{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
		Plan:  req.Plan,
		Chats: req.Chats,
	}
	if req.TotalTokens != nil {
		user.TotalTokens = *req.TotalTokens
	}
	if user.Chats == nil {
		user.Chats = []string{}
	}
	return user
}
