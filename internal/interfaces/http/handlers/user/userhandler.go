package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novita/internal/application/user/usecases"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
	"novita/internal/shared/utils"

	"novita/internal/interfaces/http/middleware"
)

type UserHandler struct {
	registerUC      usecases.RegisterExecutor
	loginUC         usecases.LoginExecutor
	updateProfileUC usecases.UpdateProfileExecutor
	getUserUC       usecases.GetUserExecutor
	jwtService      usecases.JWTService
	logger          logger.Interface
}

func NewUserHandler(
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
	updateProfileUC usecases.UpdateProfileExecutor,
	getUserUC usecases.GetUserExecutor,
	jwtService usecases.JWTService,
) *UserHandler {
	return &UserHandler{
		registerUC:      registerUC,
		loginUC:         loginUC,
		updateProfileUC: updateProfileUC,
		getUserUC:       getUserUC,
		jwtService:      jwtService,
		logger:          logger.NewLogger(),
	}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created successfully")
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", LoginResponse{
		User:         NewUserResponse(result.User),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}

// Refresh handles POST /auth/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	pair, err := h.jwtService.Refresh(req.RefreshToken)
	if err != nil {
		h.logger.Warnw("refresh token rejected", "error", err)
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid or expired refresh token"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	})
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewUserResponse(result.User))
}

// UpdateProfile handles PUT /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	userID := middleware.UserIDFromContext(c)

	result, err := h.updateProfileUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", NewUserResponse(result.User))
}
