package response

import (
	"freightflow/internal/api/models"
	"time"
)

type User struct {
	ID          uint        `json:"id"`
	Username    string      `json:"username"`
	Designation string      `json:"designation"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role"`
	CreatedAt   time.Time   `json:"created_at"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
