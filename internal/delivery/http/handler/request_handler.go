package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Joshua4-0p/blood-donation-app/internal/middleware"
	requestUsecase "github.com/Joshua4-0p/blood-donation-app/internal/usecase/request"
	appErrors "github.com/Joshua4-0p/blood-donation-app/pkg/errors"
	"github.com/Joshua4-0p/blood-donation-app/pkg/utils"
)

type RequestHandler struct {
	service *requestUsecase.Service
}

func NewRequestHandler(service *requestUsecase.Service) *RequestHandler {
	return &RequestHandler{service: service}
}

func (h *RequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	requestGroup := router.Group("/requests")
	{
		requestGroup.POST("", h.Create)
		requestGroup.GET("/:request_id", h.Get)
		requestGroup.PUT("/:request_id", h.Update)
		requestGroup.DELETE("/:request_id", h.Delete)
	}
}

// RegisterPublicRoutes registers the open request browse endpoint.
func (h *RequestHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/requests", h.List)
}

func (h *RequestHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondWithError(c, appErrors.ErrUnauthorized)
		return
	}

	var req requestUsecase.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Location = utils.SanitizeString(req.Location)
	if req.MedicalReason != nil {
		sanitized := utils.SanitizeText(*req.MedicalReason)
		req.MedicalReason = &sanitized
	}

	created, err := h.service.Create(c.Request.Context(), principal, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Request created successfully", created)
}

func (h *RequestHandler) List(c *gin.Context) {
	var filter requestUsecase.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	requests, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Requests retrieved successfully", requests)
}

func (h *RequestHandler) Get(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("request_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request ID")
		return
	}

	request, err := h.service.Get(c.Request.Context(), requestID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request retrieved successfully", request)
}

func (h *RequestHandler) Update(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("request_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request ID")
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondWithError(c, appErrors.ErrUnauthorized)
		return
	}

	var req requestUsecase.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Location != nil {
		sanitized := utils.SanitizeString(*req.Location)
		req.Location = &sanitized
	}
	if req.MedicalReason != nil {
		sanitized := utils.SanitizeText(*req.MedicalReason)
		req.MedicalReason = &sanitized
	}

	updated, err := h.service.Update(c.Request.Context(), requestID, principal, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request updated successfully", updated)
}

func (h *RequestHandler) Delete(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("request_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request ID")
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		respondWithError(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.service.Delete(c.Request.Context(), requestID, principal); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request deleted successfully", nil)
}
