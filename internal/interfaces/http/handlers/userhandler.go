package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harekrushna7138/ticket-service-backend/internal/application/user/usecases"
	vo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/user/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/utils"
)

func init() {
	utils.RegisterEnum("user_role", vo.IsValidRole)
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email" example:"alice@x.com"`
	Password  string `json:"password" validate:"required" example:"pw123"`
	FirstName string `json:"first_name" validate:"required" example:"Alice"`
	LastName  string `json:"last_name" validate:"required" example:"Smith"`
	Role      string `json:"role" validate:"required,user_role" example:"customer"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"alice@x.com"`
	Password string `json:"password" validate:"required" example:"pw123"`
}

type UserHandler struct {
	registerUC  usecases.RegisterExecutor
	loginUC     usecases.LoginExecutor
	listUsersUC usecases.ListUsersExecutor
	logger      logger.Interface
}

func NewUserHandler(
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
	listUsersUC usecases.ListUsersExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		registerUC:  registerUC,
		loginUC:     loginUC,
		listUsersUC: listUsersUC,
		logger:      logger,
	}
}

// Register handles POST /register
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Account data"
// @Success 201 {object} utils.APIResponse{data=dto.UserDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User registered successfully")
}

// Login handles POST /login
// @Summary Log in
// @Description Returns a session token valid for 24 hours
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
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

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// ListUsers handles GET /users
// @Summary List users
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=[]dto.UserDTO}
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
