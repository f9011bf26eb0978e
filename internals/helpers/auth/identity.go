package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Nama locals yang diisi middleware auth
const (
	LocIdentity = "identity"
	LocUserID   = "user_id"
	LocUserRole = "userRole"
	LocRawToken = "raw_access_token"
)

type IdentityKind int

const (
	KindAnonymous IdentityKind = iota
	KindStaff
	KindParent
)

func (k IdentityKind) String() string {
	switch k {
	case KindStaff:
		return "staff"
	case KindParent:
		return "wali"
	default:
		return "anonymous"
	}
}

// StaffIdentity: akun lembaga (tabel profiles).
type StaffIdentity struct {
	ProfileID uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	TeacherID *uuid.UUID `json:"teacher_id,omitempty"`
}

// ParentIdentity: akun wali santri berbasis nomor HP (tabel wali_santri).
type ParentIdentity struct {
	WaliID uuid.UUID `json:"id"`
	Phone  string    `json:"phone"`
	Name   string    `json:"name"`
}

// Identity = Anonymous | Staff | Parent. Tepat satu pointer terisi sesuai Kind.
type Identity struct {
	Kind   IdentityKind
	Staff  *StaffIdentity
	Parent *ParentIdentity
}

func Anonymous() Identity { return Identity{Kind: KindAnonymous} }

func StaffOf(s StaffIdentity) Identity {
	return Identity{Kind: KindStaff, Staff: &s}
}

func ParentOf(p ParentIdentity) Identity {
	return Identity{Kind: KindParent, Parent: &p}
}

func (id Identity) IsStaff() bool  { return id.Kind == KindStaff && id.Staff != nil }
func (id Identity) IsParent() bool { return id.Kind == KindParent && id.Parent != nil }

// ResolveIdentity memilih satu identitas per request.
// Jika dua sesi hadir sekaligus, sesi wali dipakai untuk path bagian wali,
// sesi staff untuk path lainnya.
func ResolveIdentity(staff *StaffIdentity, parent *ParentIdentity, path string) Identity {
	if parent != nil && SectionFor(path) == SectionParent {
		return ParentOf(*parent)
	}
	if staff != nil {
		return StaffOf(*staff)
	}
	if parent != nil {
		return ParentOf(*parent)
	}
	return Anonymous()
}

func SetIdentity(c *fiber.Ctx, id Identity) {
	c.Locals(LocIdentity, id)
	if id.IsStaff() {
		c.Locals(LocUserID, id.Staff.ProfileID.String())
		c.Locals(LocUserRole, id.Staff.Role)
	}
}

// GetIdentity membaca identitas dari locals; default Anonymous.
func GetIdentity(c *fiber.Ctx) Identity {
	if v, ok := c.Locals(LocIdentity).(Identity); ok {
		return v
	}
	return Anonymous()
}

// MustStaff untuk handler di belakang Guard bagian admin/ustadz.
func MustStaff(c *fiber.Ctx) (*StaffIdentity, error) {
	id := GetIdentity(c)
	if !id.IsStaff() {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Silakan login terlebih dahulu")
	}
	return id.Staff, nil
}

// MustParent untuk handler di belakang Guard bagian wali.
func MustParent(c *fiber.Ctx) (*ParentIdentity, error) {
	id := GetIdentity(c)
	if !id.IsParent() {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Silakan login sebagai wali santri")
	}
	return id.Parent, nil
}
