package mappers

import (
	"fmt"

	"novita/internal/domain/user"
	vo "novita/internal/domain/user/value_objects"
	"novita/internal/infrastructure/persistence/models"
	"novita/internal/shared/authorization"
)

// UserMapper converts between user domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email().String(),
		Name:         u.Name(),
		Role:         u.Role().String(),
		PasswordHash: u.PasswordHash(),
		DateOfBirth:  u.DateOfBirth(),
		Address:      u.Address(),
		School:       u.School(),
		Phone:        u.Phone(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email in storage: %w", err)
	}

	return user.ReconstructUser(
		model.ID,
		email,
		model.Name,
		authorization.ParseUserRole(model.Role),
		model.PasswordHash,
		model.DateOfBirth,
		model.Address,
		model.School,
		model.Phone,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
