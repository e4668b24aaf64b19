package dto

// Data Transfer Objects for account and profile requests/responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=256"`
	Name     string `json:"name" binding:"required,min=1,max=128"`
	Password string `json:"password" binding:"required,min=6,max=256"`
}

// RegisterResponse: returned id of the new account
type RegisterResponse struct {
	UserID int64 `json:"userId"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse: session token issued at login
type LoginResponse struct {
	UserID int64  `json:"userId"`
	Token  string `json:"token"`
}

// UpdateUserRequest: all fields optional; a password change requires the
// current password alongside the new one
type UpdateUserRequest struct {
	Email           *string `json:"email" binding:"omitempty,email,max=256"`
	Name            *string `json:"name" binding:"omitempty,min=1,max=128"`
	Password        *string `json:"password" binding:"omitempty,min=6,max=256"`
	CurrentPassword *string `json:"currentPassword" binding:"omitempty,min=6,max=256"`
}

// UserResponse: profile view; Email is only populated for the user themself
type UserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}
