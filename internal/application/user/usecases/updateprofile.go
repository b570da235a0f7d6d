package usecases

import (
	"context"
	"time"

	"novita/internal/domain/user"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
)

type UpdateProfileCommand struct {
	UserID      uint
	Name        *string
	DateOfBirth *time.Time
	Address     *string
	School      *string
	Phone       *string
}

type UpdateProfileResult struct {
	User *user.User
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existingUser, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to update profile")
	}

	update := user.ProfileUpdate{
		Name:        cmd.Name,
		DateOfBirth: cmd.DateOfBirth,
		Address:     cmd.Address,
		School:      cmd.School,
		Phone:       cmd.Phone,
	}
	if err := existingUser.UpdateProfile(update); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to save profile", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to update profile")
	}

	uc.logger.Infow("profile updated", "user_id", cmd.UserID)

	return &UpdateProfileResult{User: existingUser}, nil
}
