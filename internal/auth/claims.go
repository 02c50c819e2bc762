package auth

import "github.com/golang-jwt/jwt/v5"

// Claims are the only supported JWT claims shape for this service.
// Subject (sub) identifies the calling application; Role drives rbac checks on the notify routes.
type Claims struct {
	jwt.RegisteredClaims

	Role string `json:"role"`
}
