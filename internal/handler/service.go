package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/business-admin/internal/model"
	"github.com/iliyamo/business-admin/internal/repository"
)

// ServiceHandler serves service CRUD.
type ServiceHandler struct {
	Services *repository.ServiceRepo
}

// NewServiceHandler constructs a ServiceHandler.
func NewServiceHandler(services *repository.ServiceRepo) *ServiceHandler {
	if services == nil {
		panic("nil repository passed to NewServiceHandler")
	}
	return &ServiceHandler{Services: services}
}

// Create handles POST /api/services.
func (h *ServiceHandler) Create(c echo.Context) error {
	var body struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Frequency   string  `json:"frequency"`
		BasePrice   float64 `json:"basePrice"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)

	var v fieldErrors
	v.require("name", body.Name)
	v.require("frequency", body.Frequency)
	v.oneOf("frequency", body.Frequency, model.Frequencies)
	if body.BasePrice < 0 {
		v.add("basePrice", "must not be negative")
	}
	if !v.ok() {
		return v.respond(c)
	}

	svc := h.Services.Create(repository.ServiceInput{
		Name:        body.Name,
		Description: body.Description,
		Frequency:   body.Frequency,
		BasePrice:   body.BasePrice,
	})
	return c.JSON(http.StatusCreated, svc)
}

// Get handles GET /api/services/:id.
func (h *ServiceHandler) Get(c echo.Context) error {
	id := pathID(c, "id")
	svc, err := h.Services.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
	}
	return c.JSON(http.StatusOK, svc)
}

// List handles GET /api/services.
func (h *ServiceHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Services.List()})
}

// Update handles PUT /api/services/:id with a partial-field merge.
func (h *ServiceHandler) Update(c echo.Context) error {
	id := pathID(c, "id")
	var body struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Frequency   *string  `json:"frequency"`
		BasePrice   *float64 `json:"basePrice"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	var v fieldErrors
	if body.Name != nil {
		v.require("name", *body.Name)
	}
	if body.Frequency != nil {
		v.require("frequency", *body.Frequency)
		v.oneOf("frequency", *body.Frequency, model.Frequencies)
	}
	if body.BasePrice != nil && *body.BasePrice < 0 {
		v.add("basePrice", "must not be negative")
	}
	if !v.ok() {
		return v.respond(c)
	}

	svc, err := h.Services.Update(id, repository.ServicePatch{
		Name:        body.Name,
		Description: body.Description,
		Frequency:   body.Frequency,
		BasePrice:   body.BasePrice,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
	}
	return c.JSON(http.StatusOK, svc)
}

// Delete handles DELETE /api/services/:id.
func (h *ServiceHandler) Delete(c echo.Context) error {
	id := pathID(c, "id")
	if err := h.Services.Delete(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
