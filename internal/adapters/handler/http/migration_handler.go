package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-goals/internal/core/services"
)

type MigrationHandler struct {
	svc *services.MigrationService
}

func NewMigrationHandler(svc *services.MigrationService) *MigrationHandler {
	return &MigrationHandler{svc: svc}
}

func (h *MigrationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/migrations/local", h.ImportLocal)
}

// ImportLocal godoc
// @Summary Import data recorded in guest mode
// @Description Only goals with temp- ids are imported. The client should clear its local copy after success.
// @Tags migrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.LocalData true "Guest goals, completions and motivation"
// @Success 200 {object} services.ImportResult
// @Failure 400 {object} errorResponse
// @Router /migrations/local [post]
func (h *MigrationHandler) ImportLocal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var data services.LocalData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result, err := h.svc.ImportLocal(c.Request.Context(), userID, data)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
