package access

// Record is an arbitrary nested key-value payload (client profile, billing
// sub-object, note, plan) as decoded from the document store.
type Record = map[string]any

// roleView is the per-role reshaping strategy applied after the sensitivity
// gate. A nil result means the role gets nothing for that category.
type roleView interface {
	reshape(rec Record, cat Category) Record
}

// viewFor returns the strategy for a role. One implementation per member of
// the closed enumeration; roles outside it never reach a strategy because
// they fail the sensitivity gate first.
func viewFor(role Role) roleView {
	switch role {
	case RoleAdmin:
		return adminView{}
	case RoleTherapist:
		return therapistView{}
	case RoleAssociate:
		return associateView{}
	case RoleViewer:
		return viewerView{}
	}
	return nil
}

// FilterForRole returns a redacted copy of rec appropriate for role, or nil
// when the role may not see the category at all. Callers treat nil as "omit
// this record", not as an error. The input record is never mutated.
func FilterForRole(rec Record, cat Category, role Role) Record {
	if rec == nil {
		return nil
	}
	level, err := Classify(cat)
	if err != nil {
		// Unregistered category: deny. The caller logs this loudly since it
		// indicates a missing classifier entry.
		return nil
	}
	if !CanAccess(level, role) {
		return nil
	}
	view := viewFor(role)
	if view == nil {
		return nil
	}
	return view.reshape(rec, cat)
}

// adminView returns records at full fidelity.
type adminView struct{}

func (adminView) reshape(rec Record, _ Category) Record {
	return cloneRecord(rec)
}

// therapistView sees clinical detail but only a summary of billing. Payment
// instrument fields are dropped outright, never masked, so no partial digits
// ever leave the boundary.
type therapistView struct{}

func (therapistView) reshape(rec Record, cat Category) Record {
	switch cat {
	case CategoryClientBasic, CategoryClientPersonal:
		// Payment instruments never ride along on client records, not even
		// in the roster view.
		out := cloneRecord(rec)
		delete(out, "billing")
		return out
	case CategoryClientFinancial, CategoryBillingPayment:
		return project(rec, "paymentOption", "provider", "planName")
	}
	return cloneRecord(rec)
}

// associateView gets the least clinical and financial detail of any role
// with client access.
type associateView struct{}

func (associateView) reshape(rec Record, cat Category) Record {
	switch cat {
	case CategoryClientBasic, CategoryClientPersonal:
		out := cloneRecord(rec)
		delete(out, "medical")
		delete(out, "billing")
		delete(out, "insurance")
		return out
	case CategoryClientMedical, CategoryClientFinancial, CategoryBillingPayment:
		// No reduced view for associates; full denial.
		return nil
	}
	return cloneRecord(rec)
}

// viewerView sees hard projections of rosters and note headers, nothing else.
type viewerView struct{}

func (viewerView) reshape(rec Record, cat Category) Record {
	switch cat {
	case CategoryClientBasic:
		return project(rec, "id", "name", "active")
	case CategoryNotesBasic:
		return project(rec, "id", "subject", "timestamp", "therapistName")
	}
	return nil
}

// cloneRecord deep-copies a record so filtering never aliases the caller's
// data.
func cloneRecord(rec Record) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneRecord(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	}
	return v
}

// project copies exactly the named keys that exist in rec.
func project(rec Record, keys ...string) Record {
	out := make(Record, len(keys))
	for _, k := range keys {
		if v, ok := rec[k]; ok {
			out[k] = cloneValue(v)
		}
	}
	return out
}

// FilterAllForRole filters a slice of records, omitting denied entries.
func FilterAllForRole(recs []Record, cat Category, role Role) []Record {
	out := make([]Record, 0, len(recs))
	for _, rec := range recs {
		if filtered := FilterForRole(rec, cat, role); filtered != nil {
			out = append(out, filtered)
		}
	}
	return out
}
