package entities

// Caller is the authenticated identity extracted from a verified token.
// AccountID doubles as the driver identity for RoleDriver callers.
type Caller struct {
	AccountID int64
	Username  string
	Role      RoleType
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

func (c Caller) IsStaff() bool {
	return c.Role == RoleAdmin || c.Role == RoleManager
}
