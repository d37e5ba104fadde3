package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/business-admin/internal/handler"    // handlers implementing business logic
	"github.com/iliyamo/business-admin/internal/middleware" // JWT, role and rate-limit middleware
	"github.com/iliyamo/business-admin/internal/model"      // role constants for the allow list
)

// Handlers bundles every entity handler so the API routes can be
// registered in one call from main.
type Handlers struct {
	Clients   *handler.ClientHandler
	Services  *handler.ServiceHandler
	Projects  *handler.ProjectHandler
	Contacts  *handler.ContactHandler
	FollowUps *handler.FollowUpHandler
	Employees *handler.EmployeeHandler
	Analytics *handler.AnalyticsHandler
}

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check for load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints.  Register,
// login, refresh and logout live outside the JWT middleware; /me is
// protected so it can echo the caller's claims.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	me := e.Group("/api/auth")
	me.Use(middleware.JWTAuth(jwtSecret))
	me.GET("/me", a.Me)
}

// RegisterAPI registers every business endpoint under /api.  All of
// them sit behind the JWT middleware (unauthenticated calls get 401),
// the role allow list, and the rate limiter when one is configured.
func RegisterAPI(e *echo.Echo, h Handlers, jwtSecret string, limiter echo.MiddlewareFunc) {
	api := e.Group("/api")
	api.Use(middleware.JWTAuth(jwtSecret))
	api.Use(middleware.RequireRole(
		model.RoleAdmin,
		model.RoleManager,
		model.RoleSales,
		model.RoleCustomerService,
		model.RoleTechnician,
	))
	if limiter != nil {
		api.Use(limiter)
	}

	// Clients and their service subscriptions.
	api.GET("/clients", h.Clients.List)
	api.POST("/clients", h.Clients.Create)
	api.GET("/clients/:id", h.Clients.Get)
	api.PUT("/clients/:id", h.Clients.Update)
	api.DELETE("/clients/:id", h.Clients.Delete)
	api.GET("/clients/:id/services", h.Clients.ListServices)
	api.POST("/clients/:id/services", h.Clients.AddService)
	api.DELETE("/clients/:id/services/:serviceId", h.Clients.RemoveService)

	// Services.
	api.GET("/services", h.Services.List)
	api.POST("/services", h.Services.Create)
	api.GET("/services/:id", h.Services.Get)
	api.PUT("/services/:id", h.Services.Update)
	api.DELETE("/services/:id", h.Services.Delete)

	// Projects and their document attachments.
	api.GET("/projects", h.Projects.List)
	api.POST("/projects", h.Projects.Create)
	api.GET("/projects/:id", h.Projects.Get)
	api.PUT("/projects/:id", h.Projects.Update)
	api.DELETE("/projects/:id", h.Projects.Delete)
	api.GET("/projects/:id/documents", h.Projects.ListDocuments)
	api.POST("/projects/:id/documents", h.Projects.CreateDocument)
	api.DELETE("/documents/:id", h.Projects.DeleteDocument)

	// Prospective contacts (leads).
	api.GET("/contacts", h.Contacts.List)
	api.POST("/contacts", h.Contacts.Create)
	api.GET("/contacts/:id", h.Contacts.Get)
	api.PUT("/contacts/:id", h.Contacts.Update)
	api.DELETE("/contacts/:id", h.Contacts.Delete)
	api.POST("/contacts/:id/convert", h.Contacts.Convert)

	// Follow-up tasks.
	api.GET("/followups", h.FollowUps.List)
	api.POST("/followups", h.FollowUps.Create)
	api.GET("/followups/:id", h.FollowUps.Get)
	api.PUT("/followups/:id", h.FollowUps.Update)
	api.DELETE("/followups/:id", h.FollowUps.Delete)

	// Employees and their client assignments.
	api.GET("/employees", h.Employees.List)
	api.POST("/employees", h.Employees.Create)
	api.GET("/employees/:id", h.Employees.Get)
	api.PUT("/employees/:id", h.Employees.Update)
	api.DELETE("/employees/:id", h.Employees.Delete)
	api.GET("/employees/:id/clients", h.Employees.ListClients)
	api.POST("/employees/:id/clients/:clientId", h.Employees.AssignClient)
	api.DELETE("/employees/:id/clients/:clientId", h.Employees.UnassignClient)

	// Dashboard aggregates.
	api.GET("/analytics/dashboard", h.Analytics.Dashboard)
}
