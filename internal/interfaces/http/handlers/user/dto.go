package user

import (
	"time"

	"novita/internal/application/user/usecases"
	"novita/internal/domain/user"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"max=100"`
}

func (r RegisterRequest) ToCommand() usecases.RegisterCommand {
	return usecases.RegisterCommand{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UpdateProfileRequest struct {
	Name        *string    `json:"name"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Address     *string    `json:"address"`
	School      *string    `json:"school"`
	Phone       *string    `json:"phone"`
}

func (r UpdateProfileRequest) ToCommand(userID uint) usecases.UpdateProfileCommand {
	return usecases.UpdateProfileCommand{
		UserID:      userID,
		Name:        r.Name,
		DateOfBirth: r.DateOfBirth,
		Address:     r.Address,
		School:      r.School,
		Phone:       r.Phone,
	}
}

type UserResponse struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Address     string     `json:"address,omitempty"`
	School      string     `json:"school,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID(),
		Email:       u.Email().String(),
		Name:        u.Name(),
		Role:        u.Role().String(),
		DateOfBirth: u.DateOfBirth(),
		Address:     u.Address(),
		School:      u.School(),
		Phone:       u.Phone(),
		CreatedAt:   u.CreatedAt(),
	}
}

type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
