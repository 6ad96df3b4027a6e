package access

// Role is the single access tier assigned to a principal. The enumeration is
// closed; anything else coming out of the profile store coerces to viewer.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleTherapist Role = "therapist"
	RoleAssociate Role = "associate"
	RoleViewer    Role = "viewer"
)

// FallbackRole is assigned when the profile store is unreachable and the
// caller is otherwise verified. Therapist is the practice's most common
// operator role; the caller is flagged for setup out-of-band.
const FallbackRole = RoleTherapist

// Roles lists the closed enumeration.
func Roles() []Role {
	return []Role{RoleAdmin, RoleTherapist, RoleAssociate, RoleViewer}
}

// ValidRole reports whether s names a member of the closed enumeration.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleTherapist, RoleAssociate, RoleViewer:
		return true
	}
	return false
}

// ParseRole coerces a stored role string to a member of the enumeration.
// Unknown strings resolve to viewer, never to an error.
func ParseRole(s string) Role {
	if ValidRole(s) {
		return Role(s)
	}
	return RoleViewer
}

// DisplayName returns the label the dashboard shows for a role. The
// therapist role doubles as the billing operator in this practice, so it is
// displayed as "Billing". Cosmetic only; access control never branches on it.
func (r Role) DisplayName() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleTherapist:
		return "Billing"
	case RoleAssociate:
		return "Associate"
	case RoleViewer:
		return "Viewer"
	}
	return string(r)
}
