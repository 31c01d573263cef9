package request

import "freightflow/internal/api/models"

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateUserDTO struct {
	Username    string      `json:"username" validate:"required,min=3"`
	Password    string      `json:"password" validate:"required,min=8"`
	Designation string      `json:"designation"`
	Email       string      `json:"email" validate:"omitempty,email"`
	Role        models.Role `json:"role" validate:"required"`
}
