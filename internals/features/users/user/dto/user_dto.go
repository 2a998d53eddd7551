package dto

import (
	"github.com/google/uuid"

	userModel "produksiku_backend/internals/features/users/user/model"
)

// UserProfileResponse: profil user tanpa kredensial (dipakai login & /me).
type UserProfileResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
}

func FromUserModel(u userModel.UserModel) UserProfileResponse {
	return UserProfileResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Department: u.Department,
		Role:       u.Role,
		Status:     u.Status,
	}
}
