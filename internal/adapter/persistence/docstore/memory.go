package docstore

import (
	"context"
	"encoding/json"
	"sync"

	"sistema_mdu/internal/domain/entities"
	"sistema_mdu/internal/usecase/interfaces"
	"sistema_mdu/pkg"
)

// MemoryStore keeps documents in process memory. Documents are held in their
// persisted JSON form so readers never share state with writers.
type MemoryStore struct {
	mu          sync.RWMutex
	clock       *Clock
	collections map[string]map[string][]byte
}

var _ interfaces.IDocumentStore = (*MemoryStore)(nil)

func NewMemoryStore(clock *Clock) *MemoryStore {
	if clock == nil {
		clock = NewClock()
	}
	return &MemoryStore{clock: clock, collections: map[string]map[string][]byte{}}
}

func (s *MemoryStore) Add(ctx context.Context, collection string, doc entities.Document) (string, error) {
	id := newID()
	if err := s.create(ctx, collection, id, doc); err != nil {
		return "", pkg.NewStoreError("add", collection, "", err)
	}
	return id, nil
}

func (s *MemoryStore) Create(ctx context.Context, collection, id string, doc entities.Document) error {
	if err := s.create(ctx, collection, id, doc); err != nil {
		return pkg.NewStoreError("create", collection, id, err)
	}
	return nil
}

func (s *MemoryStore) create(ctx context.Context, collection, id string, doc entities.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkTarget(collection, id, true); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	enc, err := encode(doc, s.clock.Now())
	if err != nil {
		return err
	}
	coll := s.collection(collection)
	if _, ok := coll[id]; ok {
		return interfaces.ErrDocumentExists
	}
	raw, err := json.Marshal(enc)
	if err != nil {
		return err
	}
	coll[id] = raw
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (entities.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, pkg.NewStoreError("get", collection, id, err)
	}
	if err := checkTarget(collection, id, true); err != nil {
		return nil, pkg.NewStoreError("get", collection, id, err)
	}
	s.mu.RLock()
	raw, ok := s.collections[collection][id]
	s.mu.RUnlock()
	if !ok {
		return nil, pkg.NewStoreError("get", collection, id, interfaces.ErrDocumentNotFound)
	}
	m, err := unmarshalRaw(raw)
	if err != nil {
		return nil, pkg.NewStoreError("get", collection, id, err)
	}
	return decode(m), nil
}

func (s *MemoryStore) List(ctx context.Context, collection string) ([]interfaces.Snapshot, error) {
	return s.Query(ctx, collection, interfaces.Query{})
}

func (s *MemoryStore) Query(ctx context.Context, collection string, q interfaces.Query) ([]interfaces.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, pkg.NewStoreError("query", collection, "", err)
	}
	if err := checkTarget(collection, "", false); err != nil {
		return nil, pkg.NewStoreError("query", collection, "", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]interfaces.Snapshot, 0, len(s.collections[collection]))
	for id, raw := range s.collections[collection] {
		m, err := unmarshalRaw(raw)
		if err != nil {
			return nil, pkg.NewStoreError("query", collection, id, err)
		}
		if !matches(m, q.Filters) {
			continue
		}
		out = append(out, interfaces.Snapshot{ID: id, Data: decode(m)})
	}
	return applyOrder(out, q.Sort), nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, fields entities.Document) error {
	if err := s.write(ctx, collection, id, fields, false); err != nil {
		return pkg.NewStoreError("update", collection, id, err)
	}
	return nil
}

func (s *MemoryStore) Upsert(ctx context.Context, collection, id string, fields entities.Document) error {
	if err := s.write(ctx, collection, id, fields, true); err != nil {
		return pkg.NewStoreError("upsert", collection, id, err)
	}
	return nil
}

func (s *MemoryStore) write(ctx context.Context, collection, id string, fields entities.Document, upsert bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkTarget(collection, id, true); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	enc, err := encode(fields, now)
	if err != nil {
		return err
	}
	coll := s.collection(collection)
	base := map[string]any{}
	if raw, ok := coll[id]; ok {
		if base, err = unmarshalRaw(raw); err != nil {
			return err
		}
	} else if !upsert {
		return interfaces.ErrDocumentNotFound
	} else if _, ok := enc[entities.FieldCreatedAt]; !ok {
		base[entities.FieldCreatedAt] = entities.FormatTimestamp(now)
	}
	raw, err := json.Marshal(merge(base, enc))
	if err != nil {
		return err
	}
	coll[id] = raw
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return pkg.NewStoreError("delete", collection, id, err)
	}
	if err := checkTarget(collection, id, true); err != nil {
		return pkg.NewStoreError("delete", collection, id, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections[collection], id)
	return nil
}

func (s *MemoryStore) collection(name string) map[string][]byte {
	coll, ok := s.collections[name]
	if !ok {
		coll = map[string][]byte{}
		s.collections[name] = coll
	}
	return coll
}

func unmarshalRaw(raw []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
