package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Joshua4-0p/blood-donation-app/internal/middleware"
	donationUsecase "github.com/Joshua4-0p/blood-donation-app/internal/usecase/donation"
	appErrors "github.com/Joshua4-0p/blood-donation-app/pkg/errors"
	"github.com/Joshua4-0p/blood-donation-app/pkg/utils"
)

type DonationHandler struct {
	service *donationUsecase.Service
}

func NewDonationHandler(service *donationUsecase.Service) *DonationHandler {
	return &DonationHandler{service: service}
}

func (h *DonationHandler) RegisterRoutes(router *gin.RouterGroup) {
	donationGroup := router.Group("/donations")
	{
		donationGroup.GET("", h.Search)
		donationGroup.GET("/:donation_id", h.Get)
		donationGroup.PATCH("/:donation_id", h.Update)
	}
}

// RegisterDonorRoutes registers the endpoints only donor accounts may call.
func (h *DonationHandler) RegisterDonorRoutes(router *gin.RouterGroup) {
	donorGroup := router.Group("/donations")
	{
		donorGroup.POST("", h.Create)
	}
}

func (h *DonationHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok || principal.UserID() == nil {
		respondWithError(c, appErrors.ErrForbidden)
		return
	}

	var req donationUsecase.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Location != nil {
		sanitized := utils.SanitizeString(*req.Location)
		req.Location = &sanitized
	}

	created, err := h.service.Create(c.Request.Context(), *principal.UserID(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Donation created successfully", created)
}

func (h *DonationHandler) Get(c *gin.Context) {
	donationID, err := uuid.Parse(c.Param("donation_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid donation ID")
		return
	}

	donation, err := h.service.Get(c.Request.Context(), donationID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Donation retrieved successfully", donation)
}

func (h *DonationHandler) Search(c *gin.Context) {
	var filter donationUsecase.SearchFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	donations, err := h.service.Search(c.Request.Context(), &filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Donations retrieved successfully", donations)
}

func (h *DonationHandler) Update(c *gin.Context) {
	donationID, err := uuid.Parse(c.Param("donation_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid donation ID")
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondWithError(c, appErrors.ErrUnauthorized)
		return
	}

	var req donationUsecase.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Location != nil {
		sanitized := utils.SanitizeString(*req.Location)
		req.Location = &sanitized
	}

	updated, err := h.service.Update(c.Request.Context(), donationID, principal, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Donation updated successfully", updated)
}
