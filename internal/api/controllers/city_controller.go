package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clero/internal/models/request_models"
	"clero/internal/services"
	"clero/pkg/utils"
)

type CityController struct {
	cityService services.CityServiceInterface
}

func NewCityController(cityService services.CityServiceInterface) *CityController {
	return &CityController{cityService: cityService}
}

func (cc *CityController) List(c *gin.Context) {
	cities, err := cc.cityService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

func (cc *CityController) Create(c *gin.Context) {
	var req request_models.CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	city, err := cc.cityService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, city, "City created successfully")
}

func (cc *CityController) Update(c *gin.Context) {
	cityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid city id")
		return
	}

	var req request_models.CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	city, err := cc.cityService.Update(c.Request.Context(), cityID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, city, "City updated successfully")
}

func (cc *CityController) Delete(c *gin.Context) {
	cityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid city id")
		return
	}

	if err := cc.cityService.Delete(c.Request.Context(), cityID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "City deleted successfully")
}
