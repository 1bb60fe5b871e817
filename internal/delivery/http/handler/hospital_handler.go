package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Joshua4-0p/blood-donation-app/internal/middleware"
	donationUsecase "github.com/Joshua4-0p/blood-donation-app/internal/usecase/donation"
	hospitalUsecase "github.com/Joshua4-0p/blood-donation-app/internal/usecase/hospital"
	requestUsecase "github.com/Joshua4-0p/blood-donation-app/internal/usecase/request"
	appErrors "github.com/Joshua4-0p/blood-donation-app/pkg/errors"
	"github.com/Joshua4-0p/blood-donation-app/pkg/utils"
)

type HospitalHandler struct {
	hospitalService *hospitalUsecase.Service
	donationService *donationUsecase.Service
	requestService  *requestUsecase.Service
}

func NewHospitalHandler(
	hospitalService *hospitalUsecase.Service,
	donationService *donationUsecase.Service,
	requestService *requestUsecase.Service,
) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
		donationService: donationService,
		requestService:  requestService,
	}
}

func (h *HospitalHandler) RegisterRoutes(router *gin.RouterGroup) {
	hospitalGroup := router.Group("/hospitals")
	{
		hospitalGroup.GET("/:hospital_id", h.GetHospital)
		hospitalGroup.PUT("/:hospital_id", h.UpdateProfile)
		hospitalGroup.GET("/:hospital_id/requests", h.ListRequests)
		hospitalGroup.GET("/:hospital_id/donations", h.ListDonations)
	}
}

func (h *HospitalHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/hospitals")
	{
		admin.PATCH("/:hospital_id/verify", h.Verify)
	}
}

func (h *HospitalHandler) GetHospital(c *gin.Context) {
	hospitalID, err := uuid.Parse(c.Param("hospital_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	hospital, err := h.hospitalService.GetHospital(c.Request.Context(), hospitalID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Hospital retrieved successfully", hospital)
}

func (h *HospitalHandler) UpdateProfile(c *gin.Context) {
	hospitalID, err := uuid.Parse(c.Param("hospital_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok || principal.HospitalID() == nil {
		respondWithError(c, appErrors.ErrForbidden)
		return
	}

	var req hospitalUsecase.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name != nil {
		sanitized := utils.SanitizeString(*req.Name)
		req.Name = &sanitized
	}
	if req.Location != nil {
		sanitized := utils.SanitizeString(*req.Location)
		req.Location = &sanitized
	}
	if req.ContactInfo != nil {
		sanitized := utils.SanitizeString(*req.ContactInfo)
		req.ContactInfo = &sanitized
	}

	hospital, err := h.hospitalService.UpdateProfile(c.Request.Context(), hospitalID, *principal.HospitalID(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", hospital)
}

// Verify marks the hospital as verified. Verifying twice is a no-op.
func (h *HospitalHandler) Verify(c *gin.Context) {
	hospitalID, err := uuid.Parse(c.Param("hospital_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	hospital, err := h.hospitalService.Verify(c.Request.Context(), hospitalID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Hospital verified successfully", hospital)
}

func (h *HospitalHandler) ListRequests(c *gin.Context) {
	hospitalID, err := uuid.Parse(c.Param("hospital_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	requests, err := h.requestService.ListByHospital(c.Request.Context(), hospitalID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Requests retrieved successfully", requests)
}

func (h *HospitalHandler) ListDonations(c *gin.Context) {
	hospitalID, err := uuid.Parse(c.Param("hospital_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	donations, err := h.donationService.ListByHospital(c.Request.Context(), hospitalID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Donations retrieved successfully", donations)
}
