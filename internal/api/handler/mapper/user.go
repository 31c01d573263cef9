package mapper

import (
	"freightflow/internal/api/handler/response"
	"freightflow/internal/api/models"
)

func ToUserResponse(u models.User) response.User {
	return response.User{
		ID:          u.ID,
		Username:    u.Username,
		Designation: u.Designation,
		Email:       u.Email,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}

func ToUserResponses(users []models.User) []response.User {
	out := make([]response.User, len(users))
	for i, u := range users {
		out[i] = ToUserResponse(u)
	}
	return out
}
