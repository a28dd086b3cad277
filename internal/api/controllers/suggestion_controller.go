package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clero/internal/models/request_models"
	"clero/internal/services"
	"clero/pkg/utils"
)

type SuggestionController struct {
	suggestionService services.SuggestionServiceInterface
}

func NewSuggestionController(suggestionService services.SuggestionServiceInterface) *SuggestionController {
	return &SuggestionController{
		suggestionService: suggestionService,
	}
}

// Submit godoc
// @Summary Propose a profile change
// @Description File a single-field change for admin review
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param request body request_models.SubmitSuggestionRequest true "Suggestion payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /suggestions [post]
func (s *SuggestionController) Submit(c *gin.Context) {
	var req request_models.SubmitSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID, ok := sessionAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	suggestion, err := s.suggestionService.Submit(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestion, "Suggestion submitted for review")
}

// ListMine godoc
// @Summary List the caller's own suggestions
// @Tags Suggestions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /suggestions/mine [get]
func (s *SuggestionController) ListMine(c *gin.Context) {
	accountID, ok := sessionAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	suggestions, err := s.suggestionService.ListMine(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestions, "Suggestions fetched successfully")
}

// List godoc
// @Summary List suggestions by status
// @Tags Suggestions
// @Produce json
// @Param status query string false "PENDING (default), APPROVED or REJECTED"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /suggestions [get]
func (s *SuggestionController) List(c *gin.Context) {
	suggestions, err := s.suggestionService.ListByStatus(c.Request.Context(), c.Query("status"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestions, "Suggestions fetched successfully")
}

// Decide godoc
// @Summary Approve or reject a suggestion
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param id path string true "Suggestion ID"
// @Param request body request_models.DecisionRequest true "Decision payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /suggestions/{id} [patch]
func (s *SuggestionController) Decide(c *gin.Context) {
	suggestionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid suggestion id")
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

	if err := s.suggestionService.Decide(c.Request.Context(), suggestionID, req.Decision, adminID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Decision recorded")
}
