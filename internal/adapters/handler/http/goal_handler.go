package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-goals/internal/core/services"
)

type GoalHandler struct {
	svc *services.GoalService
}

func NewGoalHandler(svc *services.GoalService) *GoalHandler {
	return &GoalHandler{svc: svc}
}

type goalRequest struct {
	Title string `json:"title" binding:"required"`
}

type reorderRequest struct {
	ActiveID string `json:"active_id" binding:"required"`
	OverID   string `json:"over_id" binding:"required"`
}

func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goals := router.Group("/goals")
	{
		goals.GET("", h.List)
		goals.POST("", h.Create)
		goals.POST("/reorder", h.Reorder)
		goals.PUT("/:id", h.Rename)
		goals.DELETE("/:id", h.Delete)
	}
}

// List godoc
// @Summary List goals in display order
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Goal
// @Router /goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	goals, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// Create godoc
// @Summary Add a goal
// @Description Free accounts are capped at a fixed number of goals.
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body goalRequest true "Goal title"
// @Success 201 {object} domain.Goal
// @Failure 400 {object} errorResponse
// @Failure 402 {object} errorResponse "Goal limit reached"
// @Router /goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	goal, err := h.svc.Create(c.Request.Context(), services.CreateGoalInput{
		UserID: userID,
		Title:  req.Title,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// Rename godoc
// @Summary Rename a goal
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Param request body goalRequest true "New title"
// @Success 200 {object} domain.Goal
// @Failure 404 {object} errorResponse
// @Router /goals/{id} [put]
func (h *GoalHandler) Rename(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	goal, err := h.svc.Rename(c.Request.Context(), services.RenameGoalInput{
		ID:     c.Param("id"),
		UserID: userID,
		Title:  req.Title,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// Reorder godoc
// @Summary Move a goal onto another goal's position
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reorderRequest true "Dragged and target goal"
// @Success 200 {array} domain.Goal
// @Router /goals/reorder [post]
func (h *GoalHandler) Reorder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	goals, err := h.svc.Reorder(c.Request.Context(), services.ReorderGoalsInput{
		UserID:   userID,
		ActiveID: req.ActiveID,
		OverID:   req.OverID,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// Delete godoc
// @Summary Delete a goal and its completions
// @Tags goals
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
