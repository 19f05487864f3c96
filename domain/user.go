package domain

import "errors"

var (
	MessageSuccessRegister          = "user registered successfully"
	MessageSuccessLogin             = "login successful"
	MessageSuccessGetProfile        = "profile retrieved successfully"
	MessageSuccessUpdateDeviceToken = "device token updated successfully"

	MessageFailedRegister          = "failed to register user"
	MessageFailedLogin             = "failed to login"
	MessageFailedGetProfile        = "failed to retrieve profile"
	MessageFailedUpdateDeviceToken = "failed to update device token"

	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailUsed          = errors.New("email is already in use")
	ErrCredentialsInvalid = errors.New("invalid username or password")
)

type (
	RegisterRequest struct {
		Username    string `json:"username" validate:"required,min=3,max=32"`
		Email       string `json:"email" validate:"required,email"`
		Password    string `json:"password" validate:"required,min=8"`
		DeviceToken string `json:"device_token" validate:"omitempty"`
	}

	LoginRequest struct {
		Username    string `json:"username" validate:"required"`
		Password    string `json:"password" validate:"required"`
		DeviceToken string `json:"device_token" validate:"omitempty"`
	}

	LoginResponse struct {
		Token    string `json:"token"`
		UserID   string `json:"user_id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	UserResponse struct {
		ID          string `json:"id"`
		Username    string `json:"username"`
		Email       string `json:"email"`
		DeviceToken string `json:"device_token,omitempty"`
	}

	UpdateDeviceTokenRequest struct {
		DeviceToken string `json:"device_token" validate:"required"`
	}
)
