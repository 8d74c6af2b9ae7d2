package handlers

import (
	"lumber-inventory/helper"
	"lumber-inventory/services"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	locationService services.LocationService
	Helper          *helper.HTTPHelper
}

func NewLocationHandler(locationService services.LocationService, h *helper.HTTPHelper) *LocationHandler {
	return &LocationHandler{locationService: locationService, Helper: h}
}

func (h *LocationHandler) GetLocations(c *gin.Context) {
	locations, err := h.locationService.GetLocations()
	if err != nil {
		h.Helper.SendDatabaseError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", locations)
}
