// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/usecase/user"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
)

// UserController handles user endpoints.
type UserController struct {
	registerUseCase *user.RegisterUserUseCase
	getUseCase      *user.GetUserUseCase
	listUseCase     *user.ListUsersUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	registerUseCase *user.RegisterUserUseCase,
	getUseCase *user.GetUserUseCase,
	listUseCase *user.ListUsersUseCase,
) *UserController {
	return &UserController{
		registerUseCase: registerUseCase,
		getUseCase:      getUseCase,
		listUseCase:     listUseCase,
	}
}

// Create handles POST /users requests.
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := user.RegisterUserInput{
		FullName: req.FullName,
		Email:    req.Email,
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(output.User))
}

// GetByID handles GET /users/:id requests.
func (c *UserController) GetByID(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), user.GetUserInput{UserID: userID})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// List handles GET /users requests.
func (c *UserController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(output.Users))
}

// handleUserError handles user errors and returns appropriate HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	var usrErr *domainerror.UserError
	if errors.As(err, &usrErr) {
		ctx.JSON(c.getStatusCodeForUserError(usrErr.Code), dto.ErrorResponse{
			Error: usrErr.Message,
			Code:  string(usrErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForUserError maps user error codes to HTTP status codes.
func (c *UserController) getStatusCodeForUserError(code domainerror.UserErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
