package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"clero/internal/repositories"
	"clero/internal/services"
	"clero/pkg/utils"
)

type DirectoryController struct {
	directoryService services.DirectoryServiceInterface
}

func NewDirectoryController(directoryService services.DirectoryServiceInterface) *DirectoryController {
	return &DirectoryController{directoryService: directoryService}
}

// Internal godoc
// @Summary Full directory for signed-in clergy and admins
// @Tags Directory
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /directory [get]
func (d *DirectoryController) Internal(c *gin.Context) {
	priests, err := d.directoryService.Internal(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, priests, "Directory fetched successfully")
}

// Public godoc
// @Summary Public directory of approved priests
// @Description Contact fields are stripped. Supports name, parish and
// @Description specialty substring filters, an exact parish filter and a limit.
// @Tags Directory
// @Produce json
// @Param name query string false "Name substring"
// @Param parish query string false "Parish name substring"
// @Param specialty query string false "Specialty name substring"
// @Param parish_exact query string false "Exact parish name"
// @Param limit query int false "Maximum results"
// @Success 200 {object} utils.APIResponse
// @Router /directory/public [get]
func (d *DirectoryController) Public(c *gin.Context) {
	filter := repositories.DirectoryFilter{
		Name:          c.Query("name"),
		ParishName:    c.Query("parish"),
		SpecialtyName: c.Query("specialty"),
		ParishExact:   c.Query("parish_exact"),
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		filter.Limit = limit
	}

	priests, err := d.directoryService.Public(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, priests, "Directory fetched successfully")
}

// PublicParishes godoc
// @Summary Parishes that currently have approved priests
// @Tags Directory
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /directory/public/parishes [get]
func (d *DirectoryController) PublicParishes(c *gin.Context) {
	parishes, err := d.directoryService.PublicParishes(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, parishes, "Parishes fetched successfully")
}
