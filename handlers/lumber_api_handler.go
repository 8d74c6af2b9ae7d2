package handlers

import (
	"strconv"

	"lumber-inventory/helper"
	"lumber-inventory/models"
	"lumber-inventory/services"

	"github.com/gin-gonic/gin"
)

// LumberAPIHandler exposes the inventory as JSON.
type LumberAPIHandler struct {
	lumberService services.LumberService
	Helper        *helper.HTTPHelper
}

func NewLumberAPIHandler(lumberService services.LumberService, h *helper.HTTPHelper) *LumberAPIHandler {
	return &LumberAPIHandler{lumberService: lumberService, Helper: h}
}

func (h *LumberAPIHandler) GetLumberList(c *gin.Context) {
	params := models.SearchParamsFromQuery(c.Request.URL.Query())

	items, err := h.lumberService.GetLumberList(params)
	if err != nil {
		h.Helper.SendDatabaseError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	res := make([]models.LumberResponse, 0, len(items))
	for i := range items {
		res = append(res, items[i].ToResponse())
	}
	h.Helper.SendSuccess(c, "Success", res)
}

func (h *LumberAPIHandler) GetLumber(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid lumber ID", h.Helper.EmptyJsonMap())
		return
	}

	lumber, err := h.lumberService.GetLumber(uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", lumber.ToResponse())
}

func (h *LumberAPIHandler) CreateLumber(c *gin.Context) {
	var form models.LumberForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if fields := h.Helper.ValidateStruct(form); len(fields) > 0 {
		h.Helper.SendValidationError(c, fields)
		return
	}

	lumber, err := h.lumberService.CreateLumber(form)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Lumber created successfully", lumber.ToResponse())
}
