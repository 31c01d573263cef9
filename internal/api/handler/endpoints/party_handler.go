package endpoints

import (
	"freightflow"
	"freightflow/internal/api/handler/mapper"
	"freightflow/internal/api/handler/middleware"
	"freightflow/internal/api/handler/request"
	"freightflow/internal/api/handler/response"
	"freightflow/internal/api/service"
	"freightflow/pkg"
	"net/http"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type partyHandler struct {
	partyService *service.PartyService
	config       freightflow.AppConfig
	logger       zerolog.Logger
}

func newPartyHandler() *partyHandler {
	return &partyHandler{
		partyService: service.NewPartyService(),
		config:       freightflow.GetConfig(),
		logger:       freightflow.Logger,
	}
}

func PartyHandler(router *graceful.Graceful) {
	h := newPartyHandler()

	shippers := router.Group("/api/v1/shippers")
	shippers.Use(middleware.AuthMiddleware(h.config))
	{
		shippers.GET("", h.listShippers)
		shippers.POST("", h.createShipper)
		shippers.PUT("/:id", h.updateShipper)
		shippers.DELETE("/:id", h.deleteShipper)
	}

	consignees := router.Group("/api/v1/consignees")
	consignees.Use(middleware.AuthMiddleware(h.config))
	{
		consignees.GET("", h.listConsignees)
		consignees.POST("", h.createConsignee)
		consignees.PUT("/:id", h.updateConsignee)
		consignees.DELETE("/:id", h.deleteConsignee)
	}
}

func (slf *partyHandler) listShippers(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}
	shippers, err := slf.partyService.ListShippers()
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to list shippers")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, shippers)
}

func (slf *partyHandler) createShipper(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var req request.CreateParty
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	shipper, err := slf.partyService.CreateShipper(mapper.ToShipper(req), actor)
	if err != nil {
		slf.logger.Error().Err(err).Str("name", req.Name).Msg("Failed to create shipper")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shipper)
}

func (slf *partyHandler) updateShipper(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req request.UpdateParty
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	shipper, err := slf.partyService.UpdateShipper(id, mapper.PatchParty(req), actor)
	if err != nil {
		slf.logger.Warn().Err(err).Uint("shipperId", id).Msg("Failed to update shipper")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipper)
}

func (slf *partyHandler) deleteShipper(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := slf.partyService.DeleteShipper(id, actor); err != nil {
		slf.logger.Warn().Err(err).Uint("shipperId", id).Msg("Failed to delete shipper")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}

func (slf *partyHandler) listConsignees(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}
	consignees, err := slf.partyService.ListConsignees()
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to list consignees")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, consignees)
}

func (slf *partyHandler) createConsignee(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var req request.CreateParty
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	consignee, err := slf.partyService.CreateConsignee(mapper.ToConsignee(req), actor)
	if err != nil {
		slf.logger.Error().Err(err).Str("name", req.Name).Msg("Failed to create consignee")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, consignee)
}

func (slf *partyHandler) updateConsignee(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req request.UpdateParty
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	consignee, err := slf.partyService.UpdateConsignee(id, mapper.PatchParty(req), actor)
	if err != nil {
		slf.logger.Warn().Err(err).Uint("consigneeId", id).Msg("Failed to update consignee")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, consignee)
}

func (slf *partyHandler) deleteConsignee(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := slf.partyService.DeleteConsignee(id, actor); err != nil {
		slf.logger.Warn().Err(err).Uint("consigneeId", id).Msg("Failed to delete consignee")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}
