package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/business-admin/internal/model"
	"github.com/iliyamo/business-admin/internal/repository"
)

// EmployeeHandler serves employee CRUD and the employee-client
// assignment endpoints.
type EmployeeHandler struct {
	Employees *repository.EmployeeRepo
}

// NewEmployeeHandler constructs an EmployeeHandler.
func NewEmployeeHandler(employees *repository.EmployeeRepo) *EmployeeHandler {
	if employees == nil {
		panic("nil repository passed to NewEmployeeHandler")
	}
	return &EmployeeHandler{Employees: employees}
}

// Create handles POST /api/employees.  New employees default to
// active unless the body says otherwise.
func (h *EmployeeHandler) Create(c echo.Context) error {
	var body struct {
		Name   string `json:"name"`
		Email  string `json:"email"`
		Role   string `json:"role"`
		Active *bool  `json:"active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.TrimSpace(body.Email)

	var v fieldErrors
	v.require("name", body.Name)
	v.require("email", body.Email)
	v.require("role", body.Role)
	v.oneOf("role", body.Role, model.EmployeeRoles)
	if !v.ok() {
		return v.respond(c)
	}

	active := true
	if body.Active != nil {
		active = *body.Active
	}
	emp, err := h.Employees.Create(repository.EmployeeInput{
		Name:   body.Name,
		Email:  body.Email,
		Role:   body.Role,
		Active: active,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			var v fieldErrors
			v.add("email", "already in use")
			return v.respond(c)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create employee failed"})
	}
	return c.JSON(http.StatusCreated, emp)
}

// Get handles GET /api/employees/:id.
func (h *EmployeeHandler) Get(c echo.Context) error {
	id := pathID(c, "id")
	emp, err := h.Employees.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "employee not found"})
	}
	return c.JSON(http.StatusOK, emp)
}

// List handles GET /api/employees, optionally filtered with ?role=.
func (h *EmployeeHandler) List(c echo.Context) error {
	if role := c.QueryParam("role"); role != "" {
		return c.JSON(http.StatusOK, echo.Map{"items": h.Employees.ListByRole(role)})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": h.Employees.List()})
}

// Update handles PUT /api/employees/:id with a partial-field merge.
func (h *EmployeeHandler) Update(c echo.Context) error {
	id := pathID(c, "id")
	var body struct {
		Name   *string `json:"name"`
		Email  *string `json:"email"`
		Role   *string `json:"role"`
		Active *bool   `json:"active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	var v fieldErrors
	if body.Name != nil {
		v.require("name", *body.Name)
	}
	if body.Email != nil {
		v.require("email", *body.Email)
	}
	if body.Role != nil {
		v.require("role", *body.Role)
		v.oneOf("role", *body.Role, model.EmployeeRoles)
	}
	if !v.ok() {
		return v.respond(c)
	}

	emp, err := h.Employees.Update(id, repository.EmployeePatch{
		Name:   body.Name,
		Email:  body.Email,
		Role:   body.Role,
		Active: body.Active,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			var v fieldErrors
			v.add("email", "already in use")
			return v.respond(c)
		}
		return c.JSON(http.StatusNotFound, echo.Map{"error": "employee not found"})
	}
	return c.JSON(http.StatusOK, emp)
}

// Delete handles DELETE /api/employees/:id.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id := pathID(c, "id")
	if err := h.Employees.Delete(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "employee not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignClient handles POST /api/employees/:id/clients/:clientId.
// Re-assigning an existing pair succeeds without creating a duplicate.
func (h *EmployeeHandler) AssignClient(c echo.Context) error {
	employeeID := pathID(c, "id")
	clientID := pathID(c, "clientId")
	if err := h.Employees.AssignClient(employeeID, clientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "employee or client not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "assign failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"employeeId": employeeID, "clientId": clientID})
}

// UnassignClient handles DELETE /api/employees/:id/clients/:clientId.
func (h *EmployeeHandler) UnassignClient(c echo.Context) error {
	employeeID := pathID(c, "id")
	clientID := pathID(c, "clientId")
	if err := h.Employees.UnassignClient(employeeID, clientID); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "assignment not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ListClients handles GET /api/employees/:id/clients.
func (h *EmployeeHandler) ListClients(c echo.Context) error {
	id := pathID(c, "id")
	clients, err := h.Employees.ClientsFor(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "employee not found"})
	}
	if clients == nil {
		clients = []model.Client{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": clients})
}
