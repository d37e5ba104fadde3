package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/business-admin/internal/model"
	"github.com/iliyamo/business-admin/internal/repository"
	"github.com/iliyamo/business-admin/internal/upload"
)

// ProjectHandler serves project CRUD and the document attachment
// endpoints.  It owns the only real I/O in the system: decoding
// base64 file payloads and writing them under the uploads directory.
type ProjectHandler struct {
	Projects  *repository.ProjectRepo
	Documents *repository.DocumentRepo
	Files     *upload.Saver
}

// NewProjectHandler constructs a ProjectHandler.
func NewProjectHandler(projects *repository.ProjectRepo, documents *repository.DocumentRepo, files *upload.Saver) *ProjectHandler {
	if projects == nil || documents == nil || files == nil {
		panic("nil dependency passed to NewProjectHandler")
	}
	return &ProjectHandler{Projects: projects, Documents: documents, Files: files}
}

// filePayload is an embedded base64 upload: the client-side filename
// plus a data URI (or bare base64) with the file contents.
type filePayload struct {
	Filename string `json:"filename"`
	Data     string `json:"data"`
}

// Create handles POST /api/projects.  An optional invoice payload is
// written to disk before the record is stored.
func (h *ProjectHandler) Create(c echo.Context) error {
	var body struct {
		ClientID      uint64       `json:"clientId"`
		Name          string       `json:"name"`
		DateRequested string       `json:"dateRequested"`
		DateExecuted  string       `json:"dateExecuted"`
		Description   string       `json:"description"`
		Cost          float64      `json:"cost"`
		Price         float64      `json:"price"`
		Duration      float64      `json:"duration"`
		Status        string       `json:"status"`
		Invoice       *filePayload `json:"invoice"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Status == "" {
		body.Status = model.StatusPending
	}

	var v fieldErrors
	v.require("name", body.Name)
	if body.ClientID == 0 {
		v.add("clientId", "is required")
	}
	v.require("dateRequested", body.DateRequested)
	v.oneOf("status", body.Status, model.ProjectStatuses)
	requested, okDate := parseDate(body.DateRequested)
	if body.DateRequested != "" && !okDate {
		v.add("dateRequested", "must be a date")
	}
	var executed *time.Time
	if body.DateExecuted != "" {
		t, ok := parseDate(body.DateExecuted)
		if !ok {
			v.add("dateExecuted", "must be a date")
		} else {
			executed = &t
		}
	}
	if body.Invoice != nil {
		v.require("invoice.filename", body.Invoice.Filename)
		v.require("invoice.data", body.Invoice.Data)
	}
	if !v.ok() {
		return v.respond(c)
	}

	var invoicePath string
	if body.Invoice != nil {
		path, err := h.Files.Save(body.Invoice.Filename, body.Invoice.Data)
		if err != nil {
			if err == upload.ErrBadPayload {
				var v fieldErrors
				v.add("invoice.data", "must be base64 encoded")
				return v.respond(c)
			}
			c.Logger().Errorf("invoice write failed: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store invoice failed"})
		}
		invoicePath = path
	}

	project := h.Projects.Create(repository.ProjectInput{
		ClientID:      body.ClientID,
		Name:          body.Name,
		DateRequested: requested,
		DateExecuted:  executed,
		Description:   body.Description,
		InvoiceFile:   invoicePath,
		Cost:          body.Cost,
		Price:         body.Price,
		Duration:      body.Duration,
		Status:        body.Status,
	})
	return c.JSON(http.StatusCreated, project)
}

// Get handles GET /api/projects/:id.
func (h *ProjectHandler) Get(c echo.Context) error {
	id := pathID(c, "id")
	project, err := h.Projects.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "project not found"})
	}
	return c.JSON(http.StatusOK, project)
}

// List handles GET /api/projects, optionally filtered with ?client=.
func (h *ProjectHandler) List(c echo.Context) error {
	clientID, ok := queryID(c, "client")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid client filter"})
	}
	if clientID != nil {
		return c.JSON(http.StatusOK, echo.Map{"items": h.Projects.ListByClient(*clientID)})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": h.Projects.List()})
}

// Update handles PUT /api/projects/:id.  A new invoice payload
// replaces the stored file; the previous file is removed after the
// record update succeeds.
func (h *ProjectHandler) Update(c echo.Context) error {
	id := pathID(c, "id")
	var body struct {
		ClientID      *uint64      `json:"clientId"`
		Name          *string      `json:"name"`
		DateRequested *string      `json:"dateRequested"`
		DateExecuted  *string      `json:"dateExecuted"`
		Description   *string      `json:"description"`
		Cost          *float64     `json:"cost"`
		Price         *float64     `json:"price"`
		Duration      *float64     `json:"duration"`
		Status        *string      `json:"status"`
		Invoice       *filePayload `json:"invoice"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	var v fieldErrors
	patch := repository.ProjectPatch{
		ClientID:    body.ClientID,
		Name:        body.Name,
		Description: body.Description,
		Cost:        body.Cost,
		Price:       body.Price,
		Duration:    body.Duration,
		Status:      body.Status,
	}
	if body.Name != nil {
		v.require("name", *body.Name)
	}
	if body.Status != nil {
		v.require("status", *body.Status)
		v.oneOf("status", *body.Status, model.ProjectStatuses)
	}
	if body.DateRequested != nil {
		t, ok := parseDate(*body.DateRequested)
		if !ok {
			v.add("dateRequested", "must be a date")
		} else {
			patch.DateRequested = &t
		}
	}
	if body.DateExecuted != nil {
		t, ok := parseDate(*body.DateExecuted)
		if !ok {
			v.add("dateExecuted", "must be a date")
		} else {
			patch.DateExecuted = &t
		}
	}
	if body.Invoice != nil {
		v.require("invoice.filename", body.Invoice.Filename)
		v.require("invoice.data", body.Invoice.Data)
	}
	if !v.ok() {
		return v.respond(c)
	}

	// The record must exist before any file is written, otherwise a
	// 404 would leave an orphan on disk.
	existing, err := h.Projects.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "project not found"})
	}

	if body.Invoice != nil {
		path, err := h.Files.Save(body.Invoice.Filename, body.Invoice.Data)
		if err != nil {
			if err == upload.ErrBadPayload {
				var v fieldErrors
				v.add("invoice.data", "must be base64 encoded")
				return v.respond(c)
			}
			c.Logger().Errorf("invoice write failed: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store invoice failed"})
		}
		patch.InvoiceFile = &path
	}

	project, err := h.Projects.Update(id, patch)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "project not found"})
	}
	if body.Invoice != nil && existing.InvoiceFile != "" {
		// Best effort: a failed removal is logged, never surfaced.
		if err := h.Files.Remove(existing.InvoiceFile); err != nil {
			c.Logger().Warnf("remove old invoice %s: %v", existing.InvoiceFile, err)
		}
	}
	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /api/projects/:id.  The invoice file is
// removed best effort after the record; attached document records are
// left in place (no cascade).
func (h *ProjectHandler) Delete(c echo.Context) error {
	id := pathID(c, "id")
	existing, err := h.Projects.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "project not found"})
	}
	if err := h.Projects.Delete(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "project not found"})
	}
	if existing.InvoiceFile != "" {
		if err := h.Files.Remove(existing.InvoiceFile); err != nil {
			c.Logger().Warnf("remove invoice %s: %v", existing.InvoiceFile, err)
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// ListDocuments handles GET /api/projects/:id/documents.
func (h *ProjectHandler) ListDocuments(c echo.Context) error {
	id := pathID(c, "id")
	if _, err := h.Projects.GetByID(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "project not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": h.Documents.ListByProject(id)})
}

// CreateDocument handles POST /api/projects/:id/documents.  Both the
// filename and the base64 payload are required.
func (h *ProjectHandler) CreateDocument(c echo.Context) error {
	id := pathID(c, "id")
	var body filePayload
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	var v fieldErrors
	v.require("filename", body.Filename)
	v.require("data", body.Data)
	if !v.ok() {
		return v.respond(c)
	}
	if _, err := h.Projects.GetByID(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "project not found"})
	}

	path, err := h.Files.Save(body.Filename, body.Data)
	if err != nil {
		if err == upload.ErrBadPayload {
			var v fieldErrors
			v.add("data", "must be base64 encoded")
			return v.respond(c)
		}
		c.Logger().Errorf("document write failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store document failed"})
	}
	doc := h.Documents.Create(id, body.Filename, path)
	return c.JSON(http.StatusCreated, doc)
}

// DeleteDocument handles DELETE /api/documents/:id.  Record deletion
// reports success even when the file removal fails.
func (h *ProjectHandler) DeleteDocument(c echo.Context) error {
	id := pathID(c, "id")
	doc, err := h.Documents.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "document not found"})
	}
	if err := h.Documents.Delete(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "document not found"})
	}
	if err := h.Files.Remove(doc.Filepath); err != nil {
		c.Logger().Warnf("remove document %s: %v", doc.Filepath, err)
	}
	return c.NoContent(http.StatusNoContent)
}
