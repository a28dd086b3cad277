package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clero/internal/models/request_models"
	"clero/internal/services"
	"clero/pkg/utils"
)

type PriestController struct {
	priestService services.PriestServiceInterface
}

func NewPriestController(priestService services.PriestServiceInterface) *PriestController {
	return &PriestController{
		priestService: priestService,
	}
}

// ListPending godoc
// @Summary List priests awaiting approval
// @Tags Priests
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /priests/pending [get]
func (p *PriestController) ListPending(c *gin.Context) {
	priests, err := p.priestService.ListPending(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, priests, "Pending priests fetched successfully")
}

// Get godoc
// @Summary Fetch one priest profile
// @Tags Priests
// @Produce json
// @Param id path string true "Priest ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /priests/{id} [get]
func (p *PriestController) Get(c *gin.Context) {
	priestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid priest id")
		return
	}

	priest, err := p.priestService.Get(c.Request.Context(), priestID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, priest, "Priest fetched successfully")
}

// Decide godoc
// @Summary Approve or reject a pending priest
// @Tags Priests
// @Accept json
// @Produce json
// @Param id path string true "Priest ID"
// @Param request body request_models.DecisionRequest true "Decision payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /priests/{id}/decision [post]
func (p *PriestController) Decide(c *gin.Context) {
	priestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid priest id")
		return
	}

	var req request_models.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	adminID, ok := sessionAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := p.priestService.Decide(c.Request.Context(), priestID, req.Decision, adminID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Decision recorded")
}

// Update godoc
// @Summary Edit a priest profile directly
// @Tags Priests
// @Accept json
// @Produce json
// @Param id path string true "Priest ID"
// @Param request body request_models.UpdatePriestRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /priests/{id} [put]
func (p *PriestController) Update(c *gin.Context) {
	priestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid priest id")
		return
	}

	var req request_models.UpdatePriestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	priest, err := p.priestService.Update(c.Request.Context(), priestID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, priest, "Priest updated successfully")
}
