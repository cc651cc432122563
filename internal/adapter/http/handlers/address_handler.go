package handlers

import (
	"net/http"
	"strings"

	request "sistema_mdu/internal/adapter/http/dto/request"
	"sistema_mdu/internal/domain/entities"
	"sistema_mdu/internal/usecase"
	"sistema_mdu/pkg"

	"github.com/gin-gonic/gin"
)

var errMissingAddressID = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing address id", http.StatusBadRequest)

// AddressHandler exposes the enderecos collection.
type AddressHandler struct {
	usecase usecase.IAddressUseCase
}

func NewAddressHandler(uc usecase.IAddressUseCase) *AddressHandler {
	return &AddressHandler{usecase: uc}
}

// GetAll godoc
// @Summary List addresses
// @Description Every address, newest first
// @Tags enderecos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.AddressListResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /v1/enderecos [get]
func (h *AddressHandler) GetAll(c *gin.Context) {
	respond(c, http.StatusOK, h.usecase.GetAll(c.Request.Context()))
}

// Add godoc
// @Summary Create an address
// @Tags enderecos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body object true "Address attributes"
// @Success 201 {object} response.IDResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /v1/enderecos [post]
func (h *AddressHandler) Add(c *gin.Context) {
	var record entities.Document
	if err := c.ShouldBindJSON(&record); err != nil || record == nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	respond(c, http.StatusCreated, h.usecase.Add(c.Request.Context(), record))
}

// Update godoc
// @Summary Merge fields into an address
// @Tags enderecos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Param payload body object true "Fields to merge"
// @Success 200 {object} response.DoneResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /v1/enderecos/{id} [patch]
func (h *AddressHandler) Update(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(errMissingAddressID.HTTPStatus, errMissingAddressID.ToHTTPError())
		return
	}
	var partial entities.Document
	if err := c.ShouldBindJSON(&partial); err != nil || partial == nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	respond(c, http.StatusOK, h.usecase.Update(c.Request.Context(), id, partial))
}

// Delete godoc
// @Summary Delete an address
// @Description Deleting a missing address succeeds
// @Tags enderecos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 200 {object} response.DoneResponse
// @Router /v1/enderecos/{id} [delete]
func (h *AddressHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(errMissingAddressID.HTTPStatus, errMissingAddressID.ToHTTPError())
		return
	}
	respond(c, http.StatusOK, h.usecase.Delete(c.Request.Context(), id))
}

// Search godoc
// @Summary Filter addresses
// @Tags enderecos
// @Produce json
// @Security BearerAuth
// @Param cidade query string false "City"
// @Param projeto query string false "Project"
// @Param status query string false "Status"
// @Success 200 {object} response.AddressListResponse
// @Router /v1/enderecos/search [get]
func (h *AddressHandler) Search(c *gin.Context) {
	var q request.AddressSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	respond(c, http.StatusOK, h.usecase.Search(c.Request.Context(), q.Filter()))
}
