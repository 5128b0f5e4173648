package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// EmployeeID extracts the authenticated employee's ID from the JWT claims.
func EmployeeID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	id, _ := claims["employee_id"].(string)
	return id
}

// UserID extracts the authenticated user's ID from the JWT claims. Admin
// mutations record it in the audit trail.
func UserID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	id, _ := claims["user_id"].(string)
	return id
}

// IsAdmin reports whether the token carries the admin flag.
func IsAdmin(r *http.Request) bool {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return false
	}
	admin, _ := claims["is_admin"].(bool)
	return admin
}
