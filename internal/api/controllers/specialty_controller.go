package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clero/internal/models/request_models"
	"clero/internal/services"
	"clero/pkg/utils"
)

type SpecialtyController struct {
	specialtyService services.SpecialtyServiceInterface
}

func NewSpecialtyController(specialtyService services.SpecialtyServiceInterface) *SpecialtyController {
	return &SpecialtyController{specialtyService: specialtyService}
}

func (sc *SpecialtyController) List(c *gin.Context) {
	specialties, err := sc.specialtyService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, specialties, "Specialties fetched successfully")
}

func (sc *SpecialtyController) Create(c *gin.Context) {
	var req request_models.SpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	specialty, err := sc.specialtyService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, specialty, "Specialty created successfully")
}

func (sc *SpecialtyController) Update(c *gin.Context) {
	specialtyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid specialty id")
		return
	}

	var req request_models.SpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	specialty, err := sc.specialtyService.Update(c.Request.Context(), specialtyID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, specialty, "Specialty updated successfully")
}

func (sc *SpecialtyController) Delete(c *gin.Context) {
	specialtyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid specialty id")
		return
	}

	if err := sc.specialtyService.Delete(c.Request.Context(), specialtyID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Specialty deleted successfully")
}
