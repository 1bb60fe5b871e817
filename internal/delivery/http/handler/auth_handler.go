package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainDonation "github.com/Joshua4-0p/blood-donation-app/internal/domain/donation"
	domainHospital "github.com/Joshua4-0p/blood-donation-app/internal/domain/hospital"
	domainRequest "github.com/Joshua4-0p/blood-donation-app/internal/domain/request"
	domainUser "github.com/Joshua4-0p/blood-donation-app/internal/domain/user"
	"github.com/Joshua4-0p/blood-donation-app/internal/logger"
	"github.com/Joshua4-0p/blood-donation-app/internal/middleware"
	authUsecase "github.com/Joshua4-0p/blood-donation-app/internal/usecase/auth"
	appErrors "github.com/Joshua4-0p/blood-donation-app/pkg/errors"
	"github.com/Joshua4-0p/blood-donation-app/pkg/utils"
)

type AuthHandler struct {
	service *authUsecase.Service
}

func NewAuthHandler(service *authUsecase.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register/user", h.RegisterUser)
		authGroup.POST("/register/hospital", h.RegisterHospital)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/forgot-password", h.ForgotPassword)
		authGroup.POST("/reset-password", h.ResetPassword)
	}
}

func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req authUsecase.RegisterUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Sanitize input
	req.Email = utils.SanitizeEmail(req.Email)
	req.Name = utils.SanitizeString(req.Name)
	if req.Gender != nil {
		sanitized := utils.SanitizeString(*req.Gender)
		req.Gender = &sanitized
	}
	if req.Location != nil {
		sanitized := utils.SanitizeString(*req.Location)
		req.Location = &sanitized
	}
	if req.ContactInfo != nil {
		sanitized := utils.SanitizeString(*req.ContactInfo)
		req.ContactInfo = &sanitized
	}

	authResponse, err := h.service.RegisterUser(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", authResponse)
}

func (h *AuthHandler) RegisterHospital(c *gin.Context) {
	var req authUsecase.RegisterHospitalRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)
	req.Name = utils.SanitizeString(req.Name)
	req.Location = utils.SanitizeString(req.Location)
	req.License = utils.SanitizeString(req.License)
	if req.ContactInfo != nil {
		sanitized := utils.SanitizeString(*req.ContactInfo)
		req.ContactInfo = &sanitized
	}

	authResponse, err := h.service.RegisterHospital(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Hospital registered successfully", authResponse)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authUsecase.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)

	authResponse, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", authResponse)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req authUsecase.ForgotPasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)

	reset, err := h.service.ForgotPassword(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// No mail transport is wired up, so the token travels in the response.
	var data interface{}
	if reset != nil {
		data = gin.H{"reset_token": reset.Token, "expires_at": reset.ExpiresAt}
	}

	utils.SuccessResponse(c, http.StatusOK, "If the email exists, a reset token has been issued", data)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req authUsecase.ResetPasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), &req); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password reset successfully", nil)
}

func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, appErrors.ErrEmailAlreadyUsed),
		errors.Is(err, appErrors.ErrLicenseAlreadyUsed),
		errors.Is(err, domainUser.ErrUserAlreadyExists),
		errors.Is(err, domainHospital.ErrHospitalAlreadyExists):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, appErrors.ErrInvalidCredentials),
		errors.Is(err, appErrors.ErrInvalidToken),
		errors.Is(err, appErrors.ErrUnauthorized):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, appErrors.ErrForbidden),
		errors.Is(err, domainRequest.ErrNotRequestOwner):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, domainUser.ErrUserNotFound),
		errors.Is(err, domainHospital.ErrHospitalNotFound),
		errors.Is(err, domainRequest.ErrRequestNotFound),
		errors.Is(err, domainDonation.ErrDonationNotFound),
		errors.Is(err, appErrors.ErrResetTokenNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, appErrors.ErrResetTokenExpired),
		errors.Is(err, appErrors.ErrWeakPassword),
		errors.Is(err, domainDonation.ErrInvalidStatus),
		errors.Is(err, domainDonation.ErrInvalidStatusTransition),
		errors.Is(err, domainDonation.ErrDonationDeferred):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, appErrors.ErrEligibilityService):
		utils.ErrorResponse(c, http.StatusBadGateway, err.Error())
	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
			return
		}

		requestID := middleware.GetRequestID(c)
		logger.Error("Internal server error",
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
