package interfaces

import (
	"context"
	"errors"

	"sistema_mdu/internal/domain/entities"
)

//go:generate mockgen -source=document_store_interface.go -destination=mocks/mock_document_store.go -package=mock_interfaces

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrDocumentExists   = errors.New("document already exists")
	// ErrInvalidTarget is wrapped by stores when a collection, id or field
	// name cannot address a document.
	ErrInvalidTarget = errors.New("invalid target")
)

// Snapshot is a document read back from a collection.
type Snapshot struct {
	ID   string
	Data entities.Document
}

// Filter is an equality predicate over one field.
type Filter struct {
	Field string
	Value any
}

// Order sorts query results by a single field.
type Order struct {
	Field      string
	Descending bool
}

// Query is a filtered and ordered read. Filters are combined with AND and are
// always evaluated before the ordering clause.
type Query struct {
	Filters []Filter
	Sort    *Order
}

// Where starts a query with one equality predicate.
func Where(field string, value any) Query {
	return Query{}.Where(field, value)
}

// Where appends an equality predicate.
func (q Query) Where(field string, value any) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Value: value})
	return q
}

// OrderByDesc sets a descending sort on field.
func (q Query) OrderByDesc(field string) Query {
	q.Sort = &Order{Field: field, Descending: true}
	return q
}

// OrderByAsc sets an ascending sort on field.
func (q Query) OrderByAsc(field string) Query {
	q.Sort = &Order{Field: field}
	return q
}

// IDocumentStore abstracts the remote document database used by every
// service: collections addressed by name, documents addressed by id.
//
// Values equal to entities.ServerTimestamp are replaced by the store clock at
// write time. There are no transactions and no version checks: concurrent
// writers follow last-write-wins.
type IDocumentStore interface {
	Add(ctx context.Context, collection string, doc entities.Document) (string, error)
	Create(ctx context.Context, collection, id string, doc entities.Document) error
	Get(ctx context.Context, collection, id string) (entities.Document, error)
	List(ctx context.Context, collection string) ([]Snapshot, error)
	Query(ctx context.Context, collection string, q Query) ([]Snapshot, error)
	Update(ctx context.Context, collection, id string, fields entities.Document) error
	Upsert(ctx context.Context, collection, id string, fields entities.Document) error
	Delete(ctx context.Context, collection, id string) error
}
