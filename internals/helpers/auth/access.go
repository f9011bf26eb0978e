package helper

import (
	"strings"

	"santri_backend/internals/constants"
)

type Section string

const (
	SectionPublic  Section = "public"
	SectionAdmin   Section = "admin"
	SectionTeacher Section = "ustadz"
	SectionParent  Section = "wali"
)

// Halaman tujuan redirect
const (
	StaffLoginPath  = "/login"
	ParentLoginPath = "/wali/login"
	AdminHomePath   = "/admin"
	TeacherHomePath = "/ustadz"
	ParentHomePath  = "/wali"
)

type AccessRule struct {
	Prefix  string
	Section Section
	Roles   []string // hanya untuk bagian staff
}

// AccessTable: prefix → bagian → identitas/role yang dibutuhkan. Urutan penting (first match).
var AccessTable = []AccessRule{
	{Prefix: "/wali/login", Section: SectionPublic},
	{Prefix: "/api/wali/auth/login", Section: SectionPublic},
	{Prefix: "/api/wali/auth/logout", Section: SectionPublic},

	{Prefix: "/api/admin", Section: SectionAdmin, Roles: constants.AdminSectionRoles},
	{Prefix: "/admin", Section: SectionAdmin, Roles: constants.AdminSectionRoles},

	{Prefix: "/api/ustadz", Section: SectionTeacher, Roles: constants.TeacherSectionRoles},
	{Prefix: "/ustadz", Section: SectionTeacher, Roles: constants.TeacherSectionRoles},

	{Prefix: "/api/wali", Section: SectionParent},
	{Prefix: "/wali", Section: SectionParent},
}

type Action int

const (
	Allow Action = iota
	Redirect
)

type Decision struct {
	Action Action
	Target string
}

func allow() Decision              { return Decision{Action: Allow} }
func redirectTo(t string) Decision { return Decision{Action: Redirect, Target: t} }

func (d Decision) Allowed() bool { return d.Action == Allow }

func matchPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// ruleFor mencocokkan path tanpa membedakan huruf besar/kecil, supaya "/API/ADMIN"
// tetap terkena aturan admin walau router dikonfigurasi berbeda.
func ruleFor(path string) (AccessRule, bool) {
	path = strings.ToLower(path)
	for _, r := range AccessTable {
		if matchPrefix(path, r.Prefix) {
			return r, true
		}
	}
	return AccessRule{}, false
}

// SectionFor: bagian dari path; path yang tidak terdaftar dianggap publik.
func SectionFor(path string) Section {
	if r, ok := ruleFor(path); ok {
		return r.Section
	}
	return SectionPublic
}

// Authorize menerapkan aturan akses secara berurutan (first match wins).
func Authorize(id Identity, path string) Decision {
	rule, ok := ruleFor(path)
	if !ok || rule.Section == SectionPublic {
		return allow()
	}

	if rule.Section == SectionParent {
		if !id.IsParent() {
			return redirectTo(ParentLoginPath)
		}
		return allow()
	}

	switch {
	case id.IsStaff():
		if hasRole(rule.Roles, id.Staff.Role) {
			return allow()
		}
		return redirectTo(HomeFor(id))
	case id.IsParent():
		return redirectTo(ParentHomePath)
	default:
		return redirectTo(StaffLoginPath)
	}
}

// HomeFor: halaman awal sesuai identitas (dipakai /dashboard).
func HomeFor(id Identity) string {
	switch {
	case id.IsParent():
		return ParentHomePath
	case id.IsStaff():
		switch id.Staff.Role {
		case constants.RoleAdmin, constants.RoleSuperAdmin:
			return AdminHomePath
		case constants.RoleUstadz:
			return TeacherHomePath
		}
	}
	return StaffLoginPath
}

func hasRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
