package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"lumber-inventory/helper"
	"lumber-inventory/models"
	"lumber-inventory/services"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// LumberHandler serves the HTML pages of the inventory.
type LumberHandler struct {
	lumberService   services.LumberService
	locationService services.LocationService
	tagService      services.TagService
	exportService   services.ExportService
	Helper          *helper.HTTPHelper
}

func NewLumberHandler(
	lumberService services.LumberService,
	locationService services.LocationService,
	tagService services.TagService,
	exportService services.ExportService,
	h *helper.HTTPHelper,
) *LumberHandler {
	return &LumberHandler{
		lumberService:   lumberService,
		locationService: locationService,
		tagService:      tagService,
		exportService:   exportService,
		Helper:          h,
	}
}

func (h *LumberHandler) Index(c *gin.Context) {
	params := models.SearchParamsFromQuery(c.Request.URL.Query())

	items, err := h.lumberService.GetLumberList(params)
	if err != nil {
		h.serverError(c, err)
		return
	}
	locations, err := h.locationService.GetLocations()
	if err != nil {
		h.serverError(c, err)
		return
	}
	tags, err := h.tagService.GetTags()
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":     "Inventory",
		"Flash":     helper.GetFlash(c),
		"Items":     items,
		"Search":    params,
		"Locations": locations,
		"Tags":      tags,
		"Filtered":  !models.NewLumberFilter(params).IsEmpty(),
		"ExportURL": exportURL(params),
	})
}

func (h *LumberHandler) AddForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "add_lumber.html", "/add", models.LumberForm{}, nil, nil)
}

func (h *LumberHandler) Add(c *gin.Context) {
	form, errs, ok := h.bindForm(c)
	if !ok {
		return
	}
	if len(errs) > 0 {
		h.renderForm(c, http.StatusBadRequest, "add_lumber.html", "/add", form, errs, nil)
		return
	}

	if _, err := h.lumberService.CreateLumber(form); err != nil {
		var invalid models.ErrorValidation
		if errors.As(err, &invalid) {
			h.renderForm(c, http.StatusBadRequest, "add_lumber.html", "/add", form, invalid.Fields, nil)
			return
		}
		h.serverError(c, err)
		return
	}

	helper.SetFlash(c, "success", "Lumber added successfully!")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *LumberHandler) EditForm(c *gin.Context) {
	lumber, ok := h.loadLumber(c)
	if !ok {
		return
	}
	h.renderForm(c, http.StatusOK, "edit_lumber.html", editAction(lumber.ID), models.LumberFormFromLumber(lumber), nil, lumber)
}

func (h *LumberHandler) Edit(c *gin.Context) {
	lumber, ok := h.loadLumber(c)
	if !ok {
		return
	}

	form, errs, ok := h.bindForm(c)
	if !ok {
		return
	}
	if len(errs) > 0 {
		h.renderForm(c, http.StatusBadRequest, "edit_lumber.html", editAction(lumber.ID), form, errs, lumber)
		return
	}

	if _, err := h.lumberService.UpdateLumber(lumber.ID, form); err != nil {
		var invalid models.ErrorValidation
		switch {
		case errors.As(err, &invalid):
			h.renderForm(c, http.StatusBadRequest, "edit_lumber.html", editAction(lumber.ID), form, invalid.Fields, lumber)
		case h.Helper.GetStatusCode(err) == http.StatusNotFound:
			h.notFound(c, err.Error())
		default:
			h.serverError(c, err)
		}
		return
	}

	helper.SetFlash(c, "success", "Lumber updated successfully!")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *LumberHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.lumberService.DeleteLumber(id); err != nil {
		if h.Helper.GetStatusCode(err) == http.StatusNotFound {
			h.notFound(c, err.Error())
			return
		}
		h.serverError(c, err)
		return
	}

	helper.SetFlash(c, "success", "Lumber deleted successfully!")
	c.Redirect(http.StatusSeeOther, "/")
}

// Export sends the inventory matching the current search as a workbook.
func (h *LumberHandler) Export(c *gin.Context) {
	params := models.SearchParamsFromQuery(c.Request.URL.Query())

	items, err := h.lumberService.GetLumberList(params)
	if err != nil {
		h.serverError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.exportService.WriteWorkbook(&buf, items); err != nil {
		h.serverError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="lumber-inventory.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *LumberHandler) bindForm(c *gin.Context) (models.LumberForm, map[string]string, bool) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "Bad Request")
		return models.LumberForm{}, nil, false
	}

	form, errs := models.ParseLumberForm(c.Request.PostForm)
	for field, message := range h.Helper.ValidateStruct(form) {
		if _, exists := errs[field]; !exists {
			errs[field] = message
		}
	}
	return form, errs, true
}

func (h *LumberHandler) renderForm(c *gin.Context, status int, page, action string, form models.LumberForm, errs map[string]string, lumber *models.Lumber) {
	locations, err := h.locationService.GetLocations()
	if err != nil {
		h.serverError(c, err)
		return
	}
	tags, err := h.tagService.GetTags()
	if err != nil {
		h.serverError(c, err)
		return
	}
	if errs == nil {
		errs = map[string]string{}
	}

	title := "Add Lumber"
	if lumber != nil {
		title = "Edit Lumber"
	}

	c.HTML(status, page, gin.H{
		"Title":     title,
		"Flash":     helper.GetFlash(c),
		"Action":    action,
		"Form":      form,
		"Errors":    errs,
		"Species":   models.SpeciesChoices,
		"Locations": locations,
		"Tags":      tags,
		"Lumber":    lumber,
	})
}

func (h *LumberHandler) loadLumber(c *gin.Context) (*models.Lumber, bool) {
	id, ok := h.parseID(c)
	if !ok {
		return nil, false
	}

	lumber, err := h.lumberService.GetLumber(id)
	if err != nil {
		if h.Helper.GetStatusCode(err) == http.StatusNotFound {
			h.notFound(c, err.Error())
			return nil, false
		}
		h.serverError(c, err)
		return nil, false
	}
	return lumber, true
}

// parseID answers 404 for ids that are not positive integers.
func (h *LumberHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.notFound(c, "lumber "+c.Param("id")+" not found")
		return 0, false
	}
	return uint(id), true
}

func (h *LumberHandler) notFound(c *gin.Context, message string) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{
		"Title":   "Not Found",
		"Message": message,
	})
}

func (h *LumberHandler) serverError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.String(http.StatusInternalServerError, "Internal Server Error")
}

func exportURL(params models.LumberSearchParams) template.URL {
	if q := params.Encode(); q != "" {
		return template.URL("/export.xlsx?" + q)
	}
	return "/export.xlsx"
}

func editAction(id uint) string {
	return "/edit/" + strconv.FormatUint(uint64(id), 10)
}
