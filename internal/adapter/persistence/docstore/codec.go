package docstore

import (
	"cmp"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"sistema_mdu/internal/domain/entities"
	"sistema_mdu/internal/usecase/interfaces"
)

var (
	errInvalidID         = fmt.Errorf("%w: document id", interfaces.ErrInvalidTarget)
	errInvalidCollection = fmt.Errorf("%w: collection name", interfaces.ErrInvalidTarget)
	errInvalidField      = fmt.Errorf("%w: field name", interfaces.ErrInvalidTarget)
)

// timestampFields are decoded back to time.Time when read.
var timestampFields = []string{entities.FieldCreatedAt, entities.FieldUpdatedAt}

// Clock hands out strictly increasing UTC instants, so two writes in the same
// process never share a timestamp.
type Clock struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// NewClockWithSource uses now as the time source. Intended for tests.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now().UTC().Round(0)
	if !t.After(c.last) {
		t = c.last.Add(time.Nanosecond)
	}
	c.last = t
	return t
}

func checkTarget(collection, id string, needID bool) error {
	if collection == "" || strings.Contains(collection, "/") {
		return errInvalidCollection
	}
	if needID && (id == "" || strings.Contains(id, "/")) {
		return errInvalidID
	}
	return nil
}

// encode resolves ServerTimestamp sentinels against now and turns the
// document into its persisted JSON-compatible form. Values that cannot be
// represented (functions, channels, NaN) are rejected.
func encode(doc entities.Document, now time.Time) (map[string]any, error) {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if k == "" {
			return nil, errInvalidField
		}
		if k == entities.FieldID {
			continue
		}
		switch tv := v.(type) {
		case time.Time:
			out[k] = entities.FormatTimestamp(tv)
		default:
			if entities.IsServerTimestamp(v) {
				out[k] = entities.FormatTimestamp(now)
				continue
			}
			out[k] = v
		}
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("unsupported document value: %w", err)
	}
	var normalized map[string]any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

// decode converts a persisted document back into an entities.Document.
func decode(raw map[string]any) entities.Document {
	doc := make(entities.Document, len(raw))
	for k, v := range raw {
		if k == entities.FieldID {
			continue
		}
		doc[k] = v
	}
	for _, f := range timestampFields {
		if s, ok := doc[f].(string); ok {
			if t, ok := entities.ParseTimestamp(s); ok {
				doc[f] = t
			}
		}
	}
	return doc
}

func merge(base, fields map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(fields))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// normalizeValue gives a filter value the same shape it has once stored.
func normalizeValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return entities.FormatTimestamp(t)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}

func matches(doc map[string]any, filters []interfaces.Filter) bool {
	for _, f := range filters {
		got, ok := doc[f.Field]
		if !ok || !reflect.DeepEqual(got, normalizeValue(f.Value)) {
			return false
		}
	}
	return true
}

// applyOrder sorts snapshots by the order field. Documents missing the field
// (or holding null) are left out of ordered results.
func applyOrder(snaps []interfaces.Snapshot, order *interfaces.Order) []interfaces.Snapshot {
	if order == nil {
		return snaps
	}
	kept := snaps[:0]
	for _, s := range snaps {
		if v, ok := s.Data[order.Field]; ok && v != nil {
			kept = append(kept, s)
		}
	}
	slices.SortStableFunc(kept, func(a, b interfaces.Snapshot) int {
		c := compareValues(a.Data[order.Field], b.Data[order.Field])
		if c == 0 {
			c = strings.Compare(a.ID, b.ID)
		}
		if order.Descending {
			return -c
		}
		return c
	})
	return kept
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return cmp.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			default:
				return 1
			}
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
