package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/business-admin/internal/model"
	"github.com/iliyamo/business-admin/internal/repository"
)

// ClientHandler serves client CRUD and the client-service
// subscription endpoints.
type ClientHandler struct {
	Clients *repository.ClientRepo
}

// NewClientHandler constructs a ClientHandler.
func NewClientHandler(clients *repository.ClientRepo) *ClientHandler {
	if clients == nil {
		panic("nil repository passed to NewClientHandler")
	}
	return &ClientHandler{Clients: clients}
}

type clientReq struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Type    string `json:"type"`
}

// Create handles POST /api/clients.
func (h *ClientHandler) Create(c echo.Context) error {
	var body clientReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)

	var v fieldErrors
	v.require("name", body.Name)
	v.require("type", body.Type)
	v.oneOf("type", body.Type, model.ClientTypes)
	if !v.ok() {
		return v.respond(c)
	}

	client := h.Clients.Create(repository.ClientInput{
		Name:    body.Name,
		Phone:   body.Phone,
		Address: body.Address,
		Type:    body.Type,
	})
	return c.JSON(http.StatusCreated, client)
}

// Get handles GET /api/clients/:id.
func (h *ClientHandler) Get(c echo.Context) error {
	id := pathID(c, "id")
	client, err := h.Clients.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
	}
	return c.JSON(http.StatusOK, client)
}

// List handles GET /api/clients.
func (h *ClientHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Clients.List()})
}

// Update handles PUT /api/clients/:id with a partial-field merge.
func (h *ClientHandler) Update(c echo.Context) error {
	id := pathID(c, "id")
	var body struct {
		Name    *string `json:"name"`
		Phone   *string `json:"phone"`
		Address *string `json:"address"`
		Type    *string `json:"type"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	var v fieldErrors
	if body.Name != nil {
		v.require("name", *body.Name)
	}
	if body.Type != nil {
		v.require("type", *body.Type)
		v.oneOf("type", *body.Type, model.ClientTypes)
	}
	if !v.ok() {
		return v.respond(c)
	}

	client, err := h.Clients.Update(id, repository.ClientPatch{
		Name:    body.Name,
		Phone:   body.Phone,
		Address: body.Address,
		Type:    body.Type,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
	}
	return c.JSON(http.StatusOK, client)
}

// Delete handles DELETE /api/clients/:id.
func (h *ClientHandler) Delete(c echo.Context) error {
	id := pathID(c, "id")
	if err := h.Clients.Delete(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ListServices handles GET /api/clients/:id/services.
func (h *ClientHandler) ListServices(c echo.Context) error {
	id := pathID(c, "id")
	services, err := h.Clients.ServicesFor(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
	}
	if services == nil {
		services = []model.Service{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": services})
}

// AddService handles POST /api/clients/:id/services.  Re-adding an
// existing subscription succeeds without creating a duplicate.
func (h *ClientHandler) AddService(c echo.Context) error {
	id := pathID(c, "id")
	var body struct {
		ServiceID uint64 `json:"serviceId"`
	}
	if err := c.Bind(&body); err != nil || body.ServiceID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "serviceId required"})
	}
	if err := h.Clients.AddService(id, body.ServiceID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "client or service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add service failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"clientId": id, "serviceId": body.ServiceID})
}

// RemoveService handles DELETE /api/clients/:id/services/:serviceId.
func (h *ClientHandler) RemoveService(c echo.Context) error {
	id := pathID(c, "id")
	serviceID := pathID(c, "serviceId")
	if err := h.Clients.RemoveService(id, serviceID); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "subscription not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
