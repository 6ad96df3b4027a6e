package access

// DecisionReason explains the outcome of an access check.
type DecisionReason string

const (
	ReasonGranted           DecisionReason = "granted"
	ReasonMissingPermission DecisionReason = "missing_permission"
	ReasonUnknownRole       DecisionReason = "unknown_role"
)

// Decision is the ephemeral result of a single access check.
type Decision struct {
	Allowed bool           `json:"allowed"`
	Reason  DecisionReason `json:"reason"`
}

// HasPermission reports whether role holds p. Unknown roles hold nothing.
func HasPermission(role Role, p Permission) bool {
	_, ok := permissionSet(role)[p]
	return ok
}

// HasAny reports whether role holds at least one of perms.
func HasAny(role Role, perms ...Permission) bool {
	set := permissionSet(role)
	for _, p := range perms {
		if _, ok := set[p]; ok {
			return true
		}
	}
	return false
}

// HasAll reports whether role holds every permission in perms. An empty list
// is vacuously satisfied; the middleware relies on that for endpoints open to
// any authenticated principal.
func HasAll(role Role, perms ...Permission) bool {
	set := permissionSet(role)
	for _, p := range perms {
		if _, ok := set[p]; !ok {
			return false
		}
	}
	return true
}

// Decide runs a HasAll check and returns a reasoned decision.
func Decide(role Role, perms []Permission) Decision {
	set := permissionSet(role)
	if set == nil {
		return Decision{Allowed: false, Reason: ReasonUnknownRole}
	}
	for _, p := range perms {
		if _, ok := set[p]; !ok {
			return Decision{Allowed: false, Reason: ReasonMissingPermission}
		}
	}
	return Decision{Allowed: true, Reason: ReasonGranted}
}
