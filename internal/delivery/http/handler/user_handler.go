package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Joshua4-0p/blood-donation-app/internal/middleware"
	donationUsecase "github.com/Joshua4-0p/blood-donation-app/internal/usecase/donation"
	requestUsecase "github.com/Joshua4-0p/blood-donation-app/internal/usecase/request"
	userUsecase "github.com/Joshua4-0p/blood-donation-app/internal/usecase/user"
	appErrors "github.com/Joshua4-0p/blood-donation-app/pkg/errors"
	"github.com/Joshua4-0p/blood-donation-app/pkg/utils"
)

type UserHandler struct {
	userService     *userUsecase.Service
	donationService *donationUsecase.Service
	requestService  *requestUsecase.Service
}

func NewUserHandler(
	userService *userUsecase.Service,
	donationService *donationUsecase.Service,
	requestService *requestUsecase.Service,
) *UserHandler {
	return &UserHandler{
		userService:     userService,
		donationService: donationService,
		requestService:  requestService,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	userGroup := router.Group("/users")
	{
		userGroup.GET("/:user_id", h.GetUser)
		userGroup.PUT("/:user_id", h.UpdateProfile)
		userGroup.GET("/:user_id/donations", h.ListDonations)
		userGroup.GET("/:user_id/received-donations", h.ListReceivedDonations)
		userGroup.GET("/:user_id/requests", h.ListRequests)
	}
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok || principal.UserID() == nil {
		respondWithError(c, appErrors.ErrForbidden)
		return
	}

	var req userUsecase.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name != nil {
		sanitized := utils.SanitizeString(*req.Name)
		req.Name = &sanitized
	}
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

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, *principal.UserID(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}

// ListDonations returns the completed donations the user gave as donor.
func (h *UserHandler) ListDonations(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	donations, err := h.donationService.ListCompletedByDonor(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Donations retrieved successfully", donations)
}

// ListReceivedDonations returns the donations where the user is the recipient.
func (h *UserHandler) ListReceivedDonations(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	donations, err := h.donationService.ListByRecipient(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Received donations retrieved successfully", donations)
}

func (h *UserHandler) ListRequests(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	requests, err := h.requestService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Requests retrieved successfully", requests)
}
