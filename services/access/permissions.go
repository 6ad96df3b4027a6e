package access

// Permission is an atomic capability check from the fixed catalog below.
type Permission string

const (
	PermViewClients          Permission = "view_clients"
	PermEditClients          Permission = "edit_clients"
	PermViewClientsPersonal  Permission = "view_clients_personal"
	PermViewBilling          Permission = "view_billing"
	PermEditBilling          Permission = "edit_billing"
	PermViewNotes            Permission = "view_notes"
	PermCreateNotes          Permission = "create_notes"
	PermEditNotes            Permission = "edit_notes"
	PermViewTreatmentPlans   Permission = "view_treatment_plans"
	PermManageTreatmentPlans Permission = "manage_treatment_plans"
	PermViewAudit            Permission = "view_audit"
	PermManageUsers          Permission = "manage_users"
)

// catalog is the live set of every defined permission. Admin's grant is a
// membership test against this map, so a permission registered here is
// automatically granted to admin without touching the role table.
var catalog = map[Permission]struct{}{
	PermViewClients:          {},
	PermEditClients:          {},
	PermViewClientsPersonal:  {},
	PermViewBilling:          {},
	PermEditBilling:          {},
	PermViewNotes:            {},
	PermCreateNotes:          {},
	PermEditNotes:            {},
	PermViewTreatmentPlans:   {},
	PermManageTreatmentPlans: {},
	PermViewAudit:            {},
	PermManageUsers:          {},
}

// rolePermissions is the static role table. Admin's entry aliases the catalog
// map itself, never a frozen copy of it.
var rolePermissions = map[Role]map[Permission]struct{}{
	RoleAdmin: catalog,
	RoleTherapist: {
		PermViewClients:          {},
		PermEditClients:          {},
		PermViewClientsPersonal:  {},
		PermViewBilling:          {},
		PermEditBilling:          {},
		PermViewNotes:            {},
		PermCreateNotes:          {},
		PermEditNotes:            {},
		PermViewTreatmentPlans:   {},
		PermManageTreatmentPlans: {},
	},
	RoleAssociate: {
		PermViewClients:        {},
		PermViewNotes:          {},
		PermCreateNotes:        {},
		PermViewTreatmentPlans: {},
	},
	RoleViewer: {
		PermViewClients: {},
		PermViewNotes:   {},
	},
}

// RegisterPermission extends the catalog. Intended for startup wiring of
// optional feature sets; the tables are read-only once the server begins
// accepting requests.
func RegisterPermission(p Permission) {
	catalog[p] = struct{}{}
}

// Catalog returns every permission currently defined.
func Catalog() []Permission {
	out := make([]Permission, 0, len(catalog))
	for p := range catalog {
		out = append(out, p)
	}
	return out
}

// permissionSet returns the live permission set for a role. Roles outside the
// table get an empty set, so every check denies.
func permissionSet(role Role) map[Permission]struct{} {
	return rolePermissions[role]
}

// PermissionsFor lists the permissions granted to a role, for the UI-gating
// query surface.
func PermissionsFor(role Role) []Permission {
	set := permissionSet(role)
	out := make([]Permission, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	return out
}
