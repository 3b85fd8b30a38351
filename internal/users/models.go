package users

// Role names a permission tier carried in JWT claims.
type Role string

const (
	RoleRegisteredUser Role = "REGISTERED_USER"
	RoleAdministrator  Role = "ADMINISTRATOR"
)

func IsValidRole(role string) bool {
	switch role {
	case string(RoleRegisteredUser), string(RoleAdministrator):
		return true
	default:
		return false
	}
}
