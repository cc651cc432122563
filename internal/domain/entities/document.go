package entities

import "time"

// Document is a schemaless record as stored in a collection: a flat map of
// field name to value.
type Document map[string]any

const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// TimestampLayout is the persisted form of store timestamps. It is fixed
// width so lexical order matches chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z"

type serverTimestamp struct{}

// ServerTimestamp asks the document store to fill the field with its own
// clock at write time.
var ServerTimestamp = serverTimestamp{}

// IsServerTimestamp reports whether v is the ServerTimestamp sentinel.
func IsServerTimestamp(v any) bool {
	_, ok := v.(serverTimestamp)
	return ok
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func ParseTimestamp(s string) (time.Time, bool) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Clone returns a shallow copy of d.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// String returns the string value of field, or "" when absent or not a string.
func (d Document) String(field string) string {
	s, _ := d[field].(string)
	return s
}

// Time returns the timestamp value of field, accepting both decoded
// time.Time values and persisted timestamp strings.
func (d Document) Time(field string) time.Time {
	switch v := d[field].(type) {
	case time.Time:
		return v
	case string:
		t, _ := ParseTimestamp(v)
		return t
	}
	return time.Time{}
}
