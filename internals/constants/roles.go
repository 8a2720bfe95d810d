package constants

import "fmt"

const (
	RoleStudent    = "student"
	RoleEducator   = "educator"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Template de mensajes de error por rol
const (
	ErrOnlyEducatorsCanAccess = "❌ Solo educadores o administradores pueden acceder a %s."
	ErrOnlyAdminsCanAccess    = "❌ Solo administradores pueden acceder a %s."
)

func RoleErrorEducator(feature string) string {
	return fmt.Sprintf(ErrOnlyEducatorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleEducator,
		RoleAdmin,
		RoleSuperAdmin,
	}

	EducatorAndAbove = []string{
		RoleEducator,
		RoleAdmin,
		RoleSuperAdmin,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleSuperAdmin,
	}
)
