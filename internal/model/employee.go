package model

// Business roles an employee can hold.  The role also ends up in the
// JWT of any user account linked to the employee.
const (
	RoleManager         = "Manager"
	RoleSales           = "Sales"
	RoleCustomerService = "Customer Service"
	RoleTechnician      = "Technician"
)

// EmployeeRoles lists every accepted employee role for validation.
var EmployeeRoles = []string{RoleManager, RoleSales, RoleCustomerService, RoleTechnician}

// Employee is a staff member's business profile.  Employees are
// referenced by follow-ups, by the employee-client association set and
// optionally by a login user.  Email addresses are unique across
// employees.
type Employee struct {
	ID     uint64 `json:"id"`     // store-assigned identifier
	Name   string `json:"name"`   // full name
	Email  string `json:"email"`  // unique email address
	Role   string `json:"role"`   // one of the Role* constants
	Active bool   `json:"active"` // whether the employee currently works here
}
