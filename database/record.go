package database

import (
	"caredesk/services/access"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToRecord converts a decoded BSON document into a plain nested record.
// The driver decodes embedded documents as bson.D/bson.M depending on the
// registry; the filter layer only speaks plain maps and slices, so every
// read path normalizes here.
func ToRecord(doc bson.M) access.Record {
	out := make(access.Record, len(doc))
	for k, v := range doc {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case bson.M:
		return ToRecord(val)
	case bson.D:
		out := make(access.Record, len(val))
		for _, elem := range val {
			out[elem.Key] = normalizeValue(elem.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	case map[string]any:
		return ToRecord(bson.M(val))
	case primitive.DateTime:
		return val.Time()
	case primitive.ObjectID:
		return val.Hex()
	}
	return v
}
