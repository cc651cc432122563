package handlers

import (
	"net/http"
	"strings"

	request "sistema_mdu/internal/adapter/http/dto/request"
	"sistema_mdu/internal/domain/entities"
	"sistema_mdu/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ManagementHandler struct {
	usecase usecase.IManagementDataUseCase
}

func NewManagementHandler(uc usecase.IManagementDataUseCase) *ManagementHandler {
	return &ManagementHandler{usecase: uc}
}

// Get godoc
// @Summary Management datasets
// @Description Every category with its items; known categories are always present
// @Tags gestao
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.ManagementResponse
// @Router /v1/gestao [get]
func (h *ManagementHandler) Get(c *gin.Context) {
	respond(c, http.StatusOK, h.usecase.Get(c.Request.Context()))
}

// Save godoc
// @Summary Replace the items of a category
// @Tags gestao
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category path string true "Category (projetos, subprojetos, supervisores, equipes, cidades)"
// @Param payload body request.SaveManagementRequest true "Items"
// @Success 200 {object} response.DoneResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /v1/gestao/{category} [put]
func (h *ManagementHandler) Save(c *gin.Context) {
	var payload request.SaveManagementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	category := entities.ManagementCategory(strings.TrimSpace(c.Param("category")))
	respond(c, http.StatusOK, h.usecase.Save(c.Request.Context(), category, payload.Items))
}
