package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/business-admin/internal/model"
	"github.com/iliyamo/business-admin/internal/repository"
)

// FollowUpHandler serves follow-up task CRUD.  Foreign ids on a task
// (client, project, employee) are accepted without existence checks;
// the data model tolerates dangling references.
type FollowUpHandler struct {
	FollowUps *repository.FollowUpRepo
}

// NewFollowUpHandler constructs a FollowUpHandler.
func NewFollowUpHandler(followUps *repository.FollowUpRepo) *FollowUpHandler {
	if followUps == nil {
		panic("nil repository passed to NewFollowUpHandler")
	}
	return &FollowUpHandler{FollowUps: followUps}
}

// Create handles POST /api/followups.  The creator is the
// authenticated user.
func (h *FollowUpHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Description string  `json:"description"`
		ClientID    *uint64 `json:"clientId"`
		ProjectID   *uint64 `json:"projectId"`
		EmployeeID  uint64  `json:"employeeId"`
		DueDate     string  `json:"dueDate"`
		Status      string  `json:"status"`
		Notes       string  `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Description = strings.TrimSpace(body.Description)
	if body.Status == "" {
		body.Status = model.FollowUpPending
	}

	var v fieldErrors
	v.require("description", body.Description)
	if body.EmployeeID == 0 {
		v.add("employeeId", "is required")
	}
	v.require("dueDate", body.DueDate)
	v.oneOf("status", body.Status, model.FollowUpStatuses)
	due, okDate := parseDate(body.DueDate)
	if body.DueDate != "" && !okDate {
		v.add("dueDate", "must be a date")
	}
	if !v.ok() {
		return v.respond(c)
	}

	task := h.FollowUps.Create(repository.FollowUpInput{
		Description: body.Description,
		ClientID:    body.ClientID,
		ProjectID:   body.ProjectID,
		EmployeeID:  body.EmployeeID,
		DueDate:     due,
		Status:      body.Status,
		Notes:       body.Notes,
		CreatedBy:   userID,
	})
	return c.JSON(http.StatusCreated, task)
}

// Get handles GET /api/followups/:id.
func (h *FollowUpHandler) Get(c echo.Context) error {
	id := pathID(c, "id")
	task, err := h.FollowUps.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "follow-up not found"})
	}
	return c.JSON(http.StatusOK, task)
}

// List handles GET /api/followups with optional ?status=, ?client=
// and ?employee= filters; filters combine with AND.
func (h *FollowUpHandler) List(c echo.Context) error {
	var filter repository.FollowUpFilter
	if s := c.QueryParam("status"); s != "" {
		filter.Status = &s
	}
	var ok bool
	if filter.ClientID, ok = queryID(c, "client"); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid client filter"})
	}
	if filter.EmployeeID, ok = queryID(c, "employee"); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid employee filter"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": h.FollowUps.List(filter)})
}

// Update handles PUT /api/followups/:id with a partial-field merge.
func (h *FollowUpHandler) Update(c echo.Context) error {
	id := pathID(c, "id")
	var body struct {
		Description *string `json:"description"`
		ClientID    *uint64 `json:"clientId"`
		ProjectID   *uint64 `json:"projectId"`
		EmployeeID  *uint64 `json:"employeeId"`
		DueDate     *string `json:"dueDate"`
		Status      *string `json:"status"`
		Notes       *string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	var v fieldErrors
	patch := repository.FollowUpPatch{
		Description: body.Description,
		ClientID:    body.ClientID,
		ProjectID:   body.ProjectID,
		EmployeeID:  body.EmployeeID,
		Status:      body.Status,
		Notes:       body.Notes,
	}
	if body.Description != nil {
		v.require("description", *body.Description)
	}
	if body.Status != nil {
		v.require("status", *body.Status)
		v.oneOf("status", *body.Status, model.FollowUpStatuses)
	}
	if body.DueDate != nil {
		t, ok := parseDate(*body.DueDate)
		if !ok {
			v.add("dueDate", "must be a date")
		} else {
			patch.DueDate = &t
		}
	}
	if !v.ok() {
		return v.respond(c)
	}

	task, err := h.FollowUps.Update(id, patch)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "follow-up not found"})
	}
	return c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /api/followups/:id.
func (h *FollowUpHandler) Delete(c echo.Context) error {
	id := pathID(c, "id")
	if err := h.FollowUps.Delete(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "follow-up not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
