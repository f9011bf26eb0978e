package constants

import "fmt"

// Role staff (tabel profiles.role)
const (
	RoleAdmin      = "admin"
	RoleUstadz     = "ustadz"
	RoleSuperAdmin = "super_admin"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyUstadzCanAccess = "❌ Hanya ustadz yang boleh mengakses fitur %s."
	ErrOnlyWaliCanAccess   = "❌ Hanya wali santri yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorUstadz(feature string) string {
	return fmt.Sprintf(ErrOnlyUstadzCanAccess, feature)
}

func RoleErrorWali(feature string) string {
	return fmt.Sprintf(ErrOnlyWaliCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllStaffRoles = []string{
		RoleAdmin,
		RoleUstadz,
		RoleSuperAdmin,
	}

	AdminSectionRoles = []string{
		RoleAdmin,
		RoleSuperAdmin,
	}

	TeacherSectionRoles = []string{
		RoleUstadz,
		RoleSuperAdmin,
	}
)

func IsStaffRole(role string) bool {
	for _, r := range AllStaffRoles {
		if r == role {
			return true
		}
	}
	return false
}
