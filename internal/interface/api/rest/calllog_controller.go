package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cloud-telephony-api/internal/application/ports"
	"cloud-telephony-api/internal/application/services"
	domain "cloud-telephony-api/internal/domain/calllog"
	numberDomain "cloud-telephony-api/internal/domain/phonenumber"
	"cloud-telephony-api/internal/infrastructure/jwt"
	"cloud-telephony-api/internal/interface/api/rest/dto/calllog"
	"cloud-telephony-api/internal/interface/api/rest/dto/pagination"
	"cloud-telephony-api/internal/interface/api/rest/middleware"
	"cloud-telephony-api/internal/interface/api/rest/validator"
)

type CallLogController struct {
	callLogService ports.CallLogService
	logger         *zap.Logger
}

func NewCallLogController(
	r *gin.Engine,
	callLogService ports.CallLogService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *CallLogController {
	cc := &CallLogController{
		callLogService: callLogService,
		logger:         logger,
	}

	r.GET(RouteNumberCallLogs, cc.GetCallLogsHandler)
	r.POST(RouteNumberCallLogs, middleware.AuthMiddleware(jwtService), cc.AppendCallLogHandler)
	r.POST(RouteNumberCalls, middleware.AuthMiddleware(jwtService), cc.MakeCallHandler)

	return cc
}

func (cc *CallLogController) GetCallLogsHandler(c *gin.Context) {
	numberID, err := validator.ParseID(c.Param("number_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "number_id " + err.Error()},
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

	cls, total, err := cc.callLogService.FindLogs(c.Request.Context(), numberDomain.ID(numberID), page, pageSize)
	if err != nil {
		if errors.Is(err, services.ErrPhoneNumberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get call logs"},
		)
		cc.logger.Error("FindLogs() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, calllog.ResponseData{
		Data: calllog.ToResponseLogs(cls),
		Meta: pagination.NewMeta(page, pageSize, total),
	})
}

// MakeCallHandler simulates an outgoing call from the number and records
// its log.
func (cc *CallLogController) MakeCallHandler(c *gin.Context) {
	numberID, err := validator.ParseID(c.Param("number_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "number_id " + err.Error()},
		)
		return
	}

	var req calllog.MakeCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateMakeCall(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	cl, err := cc.callLogService.MakeCall(c.Request.Context(), numberDomain.ID(numberID), req.CalleeNumber)
	if err != nil {
		if errors.Is(err, services.ErrPhoneNumberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to make a call"},
		)
		cc.logger.Error("MakeCall() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, calllog.ToResponseLog(*cl))
}

func (cc *CallLogController) AppendCallLogHandler(c *gin.Context) {
	numberID, err := validator.ParseID(c.Param("number_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "number_id " + err.Error()},
		)
		return
	}

	var req calllog.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateCallLog(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	clDomain := domain.CallLog{
		Direction:       domain.Direction(req.Direction),
		DurationSeconds: req.DurationSeconds,
	}
	if req.CalleeNumber != "" {
		clDomain.CalleeNumber = &req.CalleeNumber
	}

	cl, err := cc.callLogService.AppendLog(c.Request.Context(), numberDomain.ID(numberID), clDomain)
	if err != nil {
		if errors.Is(err, services.ErrPhoneNumberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a call log"},
		)
		cc.logger.Error("AppendLog() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, calllog.ToResponseLog(*cl))
}
