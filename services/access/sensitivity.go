package access

import "fmt"

// Level is the ordered confidentiality tier assigned to a data category.
type Level int

const (
	LevelPublic Level = iota
	LevelInternal
	LevelConfidential
	LevelRestricted
)

func (l Level) String() string {
	switch l {
	case LevelPublic:
		return "public"
	case LevelInternal:
		return "internal"
	case LevelConfidential:
		return "confidential"
	case LevelRestricted:
		return "restricted"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Category tags a payload's sensitivity domain independent of its shape.
type Category string

const (
	CategoryClientBasic     Category = "client.basic"
	CategoryClientPersonal  Category = "client.personal"
	CategoryClientMedical   Category = "client.medical"
	CategoryClientFinancial Category = "client.financial"
	CategoryNotesBasic      Category = "notes.basic"
	CategoryNotesDetailed   Category = "notes.detailed"
	CategoryPlansTreatment  Category = "plans.treatment"
	CategoryBillingPayment  Category = "billing.payment"
)

// categoryLevels maps every registered category to exactly one level.
// Extending the catalog means adding the category and its level here
// together; a category missing from this map is treated as restricted by
// every caller.
var categoryLevels = map[Category]Level{
	CategoryClientBasic:     LevelPublic,
	CategoryClientPersonal:  LevelConfidential,
	CategoryClientMedical:   LevelRestricted,
	CategoryClientFinancial: LevelRestricted,
	CategoryNotesBasic:      LevelPublic,
	CategoryNotesDetailed:   LevelConfidential,
	CategoryPlansTreatment:  LevelConfidential,
	CategoryBillingPayment:  LevelRestricted,
}

// Classify returns the sensitivity level of a category, or ErrUnknownCategory
// when the tag is not registered.
func Classify(cat Category) (Level, error) {
	level, ok := categoryLevels[cat]
	if !ok {
		return LevelRestricted, fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	return level, nil
}

// CanAccess reports whether a role may see a sensitivity level at all.
func CanAccess(level Level, role Role) bool {
	switch level {
	case LevelPublic:
		return true
	case LevelInternal:
		return role == RoleAdmin || role == RoleTherapist || role == RoleAssociate
	case LevelConfidential:
		return role == RoleAdmin || role == RoleTherapist || role == RoleAssociate
	case LevelRestricted:
		return role == RoleAdmin || role == RoleTherapist
	}
	return false
}

// CanAccessCategory answers the UI-gating question for a category. Unknown
// categories deny.
func CanAccessCategory(cat Category, role Role) bool {
	level, err := Classify(cat)
	if err != nil {
		return false
	}
	return CanAccess(level, role)
}

// AccessibleCategories lists every registered category the role may see.
func AccessibleCategories(role Role) []Category {
	out := make([]Category, 0, len(categoryLevels))
	for cat, level := range categoryLevels {
		if CanAccess(level, role) {
			out = append(out, cat)
		}
	}
	return out
}
