package auth

import "github.com/golang-jwt/jwt/v5"

// Claims are the only supported JWT claims shape for the diagnostic API.
// OperatorID identifies the human running dialplan diagnostics; Role gates
// what they may inspect (see internal/rbac).
type Claims struct {
	jwt.RegisteredClaims

	OperatorID string `json:"operator_id"`
	Role       string `json:"role"`
}
