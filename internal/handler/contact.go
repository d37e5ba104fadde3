package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/business-admin/internal/model"
	"github.com/iliyamo/business-admin/internal/queue"
	"github.com/iliyamo/business-admin/internal/repository"
	queue_publisher "github.com/iliyamo/business-admin/internal/service"
)

// ContactHandler serves lead CRUD and the conversion endpoint.  A
// successful conversion also publishes a broker event; publishing is
// best effort and never affects the HTTP response.
type ContactHandler struct {
	Contacts *repository.ContactRepo
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(contacts *repository.ContactRepo) *ContactHandler {
	if contacts == nil {
		panic("nil repository passed to NewContactHandler")
	}
	return &ContactHandler{Contacts: contacts}
}

// Create handles POST /api/contacts.
func (h *ContactHandler) Create(c echo.Context) error {
	var body struct {
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		Email       string `json:"email"`
		ContactedAt string `json:"contactedAt"`
		Method      string `json:"method"`
		Response    string `json:"response"`
		Notes       string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)

	var v fieldErrors
	v.require("name", body.Name)
	v.require("method", body.Method)
	v.oneOf("method", body.Method, model.ContactMethods)
	v.require("response", body.Response)
	v.oneOf("response", body.Response, model.ContactResponses)
	if body.Phone == "" && body.Email == "" {
		v.add("phone", "phone or email is required")
	}
	contactedAt := time.Now().UTC()
	if body.ContactedAt != "" {
		t, ok := parseDate(body.ContactedAt)
		if !ok {
			v.add("contactedAt", "must be a date")
		} else {
			contactedAt = t
		}
	}
	if !v.ok() {
		return v.respond(c)
	}

	contact := h.Contacts.Create(repository.ContactInput{
		Name:        body.Name,
		Phone:       body.Phone,
		Email:       body.Email,
		ContactedAt: contactedAt,
		Method:      body.Method,
		Response:    body.Response,
		Notes:       body.Notes,
	})
	return c.JSON(http.StatusCreated, contact)
}

// Get handles GET /api/contacts/:id.
func (h *ContactHandler) Get(c echo.Context) error {
	id := pathID(c, "id")
	contact, err := h.Contacts.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "contact not found"})
	}
	return c.JSON(http.StatusOK, contact)
}

// List handles GET /api/contacts, optionally filtered with
// ?converted=true|false.
func (h *ContactHandler) List(c echo.Context) error {
	switch c.QueryParam("converted") {
	case "true":
		return c.JSON(http.StatusOK, echo.Map{"items": h.Contacts.ListByConverted(true)})
	case "false":
		return c.JSON(http.StatusOK, echo.Map{"items": h.Contacts.ListByConverted(false)})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": h.Contacts.List()})
}

// Update handles PUT /api/contacts/:id with a partial-field merge.
func (h *ContactHandler) Update(c echo.Context) error {
	id := pathID(c, "id")
	var body struct {
		Name        *string `json:"name"`
		Phone       *string `json:"phone"`
		Email       *string `json:"email"`
		ContactedAt *string `json:"contactedAt"`
		Method      *string `json:"method"`
		Response    *string `json:"response"`
		Notes       *string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	var v fieldErrors
	patch := repository.ContactPatch{
		Name:     body.Name,
		Phone:    body.Phone,
		Email:    body.Email,
		Method:   body.Method,
		Response: body.Response,
		Notes:    body.Notes,
	}
	if body.Name != nil {
		v.require("name", *body.Name)
	}
	if body.Method != nil {
		v.oneOf("method", *body.Method, model.ContactMethods)
	}
	if body.Response != nil {
		v.oneOf("response", *body.Response, model.ContactResponses)
	}
	if body.ContactedAt != nil {
		t, ok := parseDate(*body.ContactedAt)
		if !ok {
			v.add("contactedAt", "must be a date")
		} else {
			patch.ContactedAt = &t
		}
	}
	if !v.ok() {
		return v.respond(c)
	}

	contact, err := h.Contacts.Update(id, patch)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "contact not found"})
	}
	return c.JSON(http.StatusOK, contact)
}

// Delete handles DELETE /api/contacts/:id.
func (h *ContactHandler) Delete(c echo.Context) error {
	id := pathID(c, "id")
	if err := h.Contacts.Delete(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "contact not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Convert handles POST /api/contacts/:id/convert.  The target client
// id is taken as given: the contact is marked converted even when no
// client record with that id exists.  Creating the client first is
// the caller's job.
func (h *ContactHandler) Convert(c echo.Context) error {
	id := pathID(c, "id")
	var body struct {
		ClientID uint64 `json:"clientId"`
	}
	if err := c.Bind(&body); err != nil || body.ClientID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "clientId required"})
	}

	contact, err := h.Contacts.ConvertToClient(id, body.ClientID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "contact not found"})
	}

	// Notify downstream consumers; a broker outage must not fail the
	// conversion, so the error is ignored after logging inside the
	// publisher.
	_ = queue_publisher.PublishContactConverted(c.Request().Context(), queue.ContactConvertedEvent{
		ContactID:   contact.ID,
		ContactName: contact.Name,
		ClientID:    contact.ConvertedClientID,
		Method:      contact.Method,
		Response:    contact.Response,
		ConvertedAt: time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusOK, contact)
}
