package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clero/internal/models/request_models"
	"clero/internal/services"
	"clero/pkg/middleware"
	"clero/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// sessionAccountID resolves the caller's account id from the typed
// session placed by the auth middleware.
func sessionAccountID(c *gin.Context) (uuid.UUID, bool) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(session.AccountID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// Register godoc
// @Summary Register a new priest
// @Description Create an account and a pending priest profile
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.RegisterPriestRequest true "Registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.RegisterPriestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Registration received and awaiting approval")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate and return a session token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Login successful")
}

// Me godoc
// @Summary Current account
// @Description Return the caller's account and priest status
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/me [get]
func (a *AccountController) Me(c *gin.Context) {
	accountID, ok := sessionAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	account, err := a.accountService.Me(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Account fetched successfully")
}
