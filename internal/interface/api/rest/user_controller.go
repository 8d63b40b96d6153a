package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cloud-telephony-api/internal/application/ports"
	domain "cloud-telephony-api/internal/domain/user"
	userDB "cloud-telephony-api/internal/infrastructure/db/postgres/user"
	"cloud-telephony-api/internal/infrastructure/jwt"
	"cloud-telephony-api/internal/interface/api/rest/dto/pagination"
	"cloud-telephony-api/internal/interface/api/rest/dto/user"
	"cloud-telephony-api/internal/interface/api/rest/middleware"
	"cloud-telephony-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.POST(RouteUsers, middleware.AuthMiddleware(jwtService), uc.CreateUserHandler)
	r.PUT(RouteUser, middleware.AuthMiddleware(jwtService), uc.UpdateUserHandler)
	r.DELETE(RouteUser, middleware.AuthMiddleware(jwtService), uc.DeleteUserHandler)

	return uc
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	page, pageSize, err := validator.ValidatePagination(c.Query("page"), c.Query("page_size"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	users, total, err := uc.userService.FindUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get users"},
		)
		uc.logger.Error("FindUsers() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, user.ResponseData{
		Data: user.ToResponseUsers(users),
		Meta: pagination.NewMeta(page, pageSize, total),
	})
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id " + err.Error()},
		)
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUser(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), user.ToDomainUser(req), req.Password)
	if err != nil {
		if errors.Is(err, userDB.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a user"},
		)
		uc.logger.Error("CreateUser() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, user.ToResponseUser(*u))
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id " + err.Error()},
		)
		return
	}

	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUser(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	uDomain := user.ToDomainUser(req)
	uDomain.ID = domain.ID(id)

	u, err := uc.userService.UpdateUser(c.Request.Context(), uDomain)
	if err != nil {
		if errors.Is(err, userDB.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a user"},
		)
		uc.logger.Error("UpdateUser() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id " + err.Error()},
		)
		return
	}

	u, err := uc.userService.DeleteUser(c.Request.Context(), domain.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete user"},
		)
		uc.logger.Error("DeleteUser() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.Status(http.StatusNoContent)
}
