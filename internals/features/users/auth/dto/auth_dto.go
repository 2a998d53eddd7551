package dto

import (
	userDTO "produksiku_backend/internals/features/users/user/dto"
)

/* =========================================================
   LOGIN
   ========================================================= */

type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	Department string `json:"department" validate:"required,oneof=ppic produksi"`
}

type LoginResponse struct {
	Token      string                      `json:"token"`
	User       userDTO.UserProfileResponse `json:"user"`
	RedirectTo string                      `json:"redirect_to"`
}
