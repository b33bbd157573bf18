package supervisor

// Supervisor is a staff member participants are assigned to.
type Supervisor struct {
	ID         string
	Name       string
	Division   string
	EmployeeID string
}
