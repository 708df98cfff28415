package constant

type TokenType string

const (
	TokenTypeAccess TokenType = "access"
)

// Roles seeded at startup.
const (
	RoleGuest         = "GUEST"
	RoleAdministrator = "ADMINISTRATOR"
)
