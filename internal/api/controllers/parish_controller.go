package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clero/internal/models/request_models"
	"clero/internal/services"
	"clero/pkg/utils"
)

type ParishController struct {
	parishService services.ParishServiceInterface
}

func NewParishController(parishService services.ParishServiceInterface) *ParishController {
	return &ParishController{parishService: parishService}
}

func (pc *ParishController) List(c *gin.Context) {
	parishes, err := pc.parishService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, parishes, "Parishes fetched successfully")
}

func (pc *ParishController) Create(c *gin.Context) {
	var req request_models.ParishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	parish, err := pc.parishService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, parish, "Parish created successfully")
}

func (pc *ParishController) Update(c *gin.Context) {
	parishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid parish id")
		return
	}

	var req request_models.ParishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	parish, err := pc.parishService.Update(c.Request.Context(), parishID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, parish, "Parish updated successfully")
}

func (pc *ParishController) Delete(c *gin.Context) {
	parishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid parish id")
		return
	}

	if err := pc.parishService.Delete(c.Request.Context(), parishID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Parish deleted successfully")
}
