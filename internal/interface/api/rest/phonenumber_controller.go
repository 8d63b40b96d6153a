package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cloud-telephony-api/internal/application/ports"
	"cloud-telephony-api/internal/application/services"
	domain "cloud-telephony-api/internal/domain/phonenumber"
	userDomain "cloud-telephony-api/internal/domain/user"
	numberDB "cloud-telephony-api/internal/infrastructure/db/postgres/phonenumber"
	"cloud-telephony-api/internal/infrastructure/jwt"
	"cloud-telephony-api/internal/interface/api/rest/dto/pagination"
	"cloud-telephony-api/internal/interface/api/rest/dto/phonenumber"
	"cloud-telephony-api/internal/interface/api/rest/middleware"
	"cloud-telephony-api/internal/interface/api/rest/validator"
)

type PhoneNumberController struct {
	numberService ports.PhoneNumberService
	logger        *zap.Logger
}

func NewPhoneNumberController(
	r *gin.Engine,
	numberService ports.PhoneNumberService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *PhoneNumberController {
	pc := &PhoneNumberController{
		numberService: numberService,
		logger:        logger,
	}

	r.GET(RouteUserNumbers, pc.GetUserNumbersHandler)
	r.POST(RouteUserNumbers, middleware.AuthMiddleware(jwtService), pc.CreateNumberHandler)
	r.PATCH(RouteUserNumber, middleware.AuthMiddleware(jwtService), pc.UpdateNumberHandler)
	r.DELETE(RouteUserNumber, middleware.AuthMiddleware(jwtService), pc.DeleteNumberHandler)
	r.GET(RouteNumbers, pc.GetNumberDetailsHandler)

	return pc
}

func (pc *PhoneNumberController) GetUserNumbersHandler(c *gin.Context) {
	userID, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id " + err.Error()},
		)
		return
	}
	page, pageSize, err := validator.ValidatePagination(c.Query("page"), c.Query("page_size"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	pns, total, err := pc.numberService.FindUserNumbers(c.Request.Context(), userDomain.ID(userID), page, pageSize)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get phone numbers"},
		)
		pc.logger.Error("FindUserNumbers() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, phonenumber.ResponseData{
		Data: phonenumber.ToResponseNumbers(pns),
		Meta: pagination.NewMeta(page, pageSize, total),
	})
}

func (pc *PhoneNumberController) CreateNumberHandler(c *gin.Context) {
	userID, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id " + err.Error()},
		)
		return
	}

	var req phonenumber.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateNumber(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	pn, err := pc.numberService.CreateNumber(c.Request.Context(), userDomain.ID(userID), req.Number)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, numberDB.ErrNumberAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a phone number"},
		)
		pc.logger.Error("CreateNumber() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, phonenumber.ToResponseNumber(*pn))
}

func (pc *PhoneNumberController) UpdateNumberHandler(c *gin.Context) {
	userID, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id " + err.Error()},
		)
		return
	}
	numberID, err := validator.ParseID(c.Param("number_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "number_id " + err.Error()},
		)
		return
	}

	var req phonenumber.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateNumber(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	pn, err := pc.numberService.UpdateNumber(
		c.Request.Context(),
		userDomain.ID(userID),
		domain.ID(numberID),
		req.Number,
	)
	if err != nil {
		if errors.Is(err, numberDB.ErrNumberAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a phone number"},
		)
		pc.logger.Error("UpdateNumber() error", zap.Error(err))
		return
	}

	if pn == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "phone number not found"},
		)
		return
	}

	c.JSON(http.StatusOK, phonenumber.ToResponseNumber(*pn))
}

func (pc *PhoneNumberController) DeleteNumberHandler(c *gin.Context) {
	userID, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id " + err.Error()},
		)
		return
	}
	numberID, err := validator.ParseID(c.Param("number_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "number_id " + err.Error()},
		)
		return
	}

	pn, err := pc.numberService.DeactivateNumber(c.Request.Context(), userDomain.ID(userID), domain.ID(numberID))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete a phone number"},
		)
		pc.logger.Error("DeactivateNumber() error", zap.Error(err))
		return
	}

	if pn == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "phone number not found"},
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (pc *PhoneNumberController) GetNumberDetailsHandler(c *gin.Context) {
	page, pageSize, err := validator.ValidatePagination(c.Query("page"), c.Query("page_size"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	ds, total, err := pc.numberService.FindNumberDetails(c.Request.Context(), page, pageSize)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get phone numbers"},
		)
		pc.logger.Error("FindNumberDetails() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, phonenumber.DetailResponseData{
		Data: phonenumber.ToResponseDetails(ds),
		Meta: pagination.NewMeta(page, pageSize, total),
	})
}
