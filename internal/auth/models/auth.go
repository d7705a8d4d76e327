package models

import common "github.com/c14220110/clinic-portal/internal/common/models"

// LoginRequest diterima dari form login (form-encoded atau JSON).
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResult tujuan redirect setelah login sukses.
type LoginResult struct {
	Redirect string      `json:"redirect"`
	User     common.User `json:"user"`
}

// RegisterRequest pendaftaran pasien baru.
type RegisterRequest struct {
	FullName        string `json:"full_name" form:"full_name" validate:"required"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required"`
}

// LoginPage status sesi untuk halaman login.
type LoginPage struct {
	SignedIn bool   `json:"signed_in"`
	Redirect string `json:"redirect,omitempty"`
}
