package handlers

import (
	"net/http"

	"sistema_mdu/internal/usecase"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	usecase usecase.IStatsUseCase
}

func NewStatsHandler(uc usecase.IStatsUseCase) *StatsHandler {
	return &StatsHandler{usecase: uc}
}

// GetStats godoc
// @Summary Dashboard statistics
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.StatsResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /v1/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	respond(c, http.StatusOK, h.usecase.GetStats(c.Request.Context()))
}
