package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-goals/internal/core/services"
)

type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

type motivationRequest struct {
	Motivation string `json:"motivation"`
}

type motivationResponse struct {
	Motivation string `json:"motivation"`
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profile", h.Profile)
	router.GET("/motivation", h.GetMotivation)
	router.PUT("/motivation", h.UpdateMotivation)
}

// Profile godoc
// @Summary Current user with plan limits and streak summary
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.Profile
// @Router /profile [get]
func (h *ProfileHandler) Profile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetMotivation godoc
// @Summary Motivation line shown above the tracker
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} motivationResponse
// @Router /motivation [get]
func (h *ProfileHandler) GetMotivation(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	text, err := h.svc.Motivation(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, motivationResponse{Motivation: text})
}

// UpdateMotivation godoc
// @Summary Replace the motivation line
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body motivationRequest true "Up to 200 characters, empty clears it"
// @Success 200 {object} motivationResponse
// @Failure 400 {object} errorResponse
// @Router /motivation [put]
func (h *ProfileHandler) UpdateMotivation(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req motivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	text, err := h.svc.UpdateMotivation(c.Request.Context(), userID, req.Motivation)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, motivationResponse{Motivation: text})
}
