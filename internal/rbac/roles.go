package rbac

// Role names. Keep these stable; they are part of the token contract.
const (
	// RoleOperator may run dry-run resolutions.
	RoleOperator = "operator"
	// RoleAdmin may additionally inspect the routing tables.
	RoleAdmin = "admin"
)

func IsAdmin(role string) bool { return role == RoleAdmin }
