package entities

import (
	"encoding/json"
	"time"
)

const (
	FieldCidade  = "cidade"
	FieldProjeto = "projeto"
	FieldStatus  = "status"
)

// Address is an infrastructure address (endereço) tracked by the dashboard.
//
// Besides the well-known fields, callers may attach any attribute; those are
// kept in Attributes and flattened back into the JSON object.
type Address struct {
	ID         string
	Cidade     string
	Projeto    string
	Status     string
	Attributes map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AddressFilter holds optional equality predicates. Empty fields impose no
// constraint.
type AddressFilter struct {
	Cidade  string `form:"cidade" json:"cidade,omitempty"`
	Projeto string `form:"projeto" json:"projeto,omitempty"`
	Status  string `form:"status" json:"status,omitempty"`
}

// AddressFromDocument maps a stored document onto an Address.
func AddressFromDocument(id string, doc Document) Address {
	a := Address{
		ID:         id,
		Cidade:     doc.String(FieldCidade),
		Projeto:    doc.String(FieldProjeto),
		Status:     doc.String(FieldStatus),
		CreatedAt:  doc.Time(FieldCreatedAt),
		UpdatedAt:  doc.Time(FieldUpdatedAt),
		Attributes: map[string]any{},
	}
	for k, v := range doc {
		switch k {
		case FieldID, FieldCidade, FieldProjeto, FieldStatus, FieldCreatedAt, FieldUpdatedAt:
			continue
		}
		a.Attributes[k] = v
	}
	// Known fields stored with a non-string value are kept as attributes so
	// nothing written by a caller is lost.
	for _, k := range []string{FieldCidade, FieldProjeto, FieldStatus} {
		if v, ok := doc[k]; ok {
			if _, isString := v.(string); !isString {
				a.Attributes[k] = v
			}
		}
	}
	return a
}

// Fields returns the flat representation of the address.
func (a Address) Fields() map[string]any {
	out := make(map[string]any, len(a.Attributes)+6)
	for k, v := range a.Attributes {
		out[k] = v
	}
	out[FieldID] = a.ID
	if a.Cidade != "" {
		out[FieldCidade] = a.Cidade
	}
	if a.Projeto != "" {
		out[FieldProjeto] = a.Projeto
	}
	if a.Status != "" {
		out[FieldStatus] = a.Status
	}
	if !a.CreatedAt.IsZero() {
		out[FieldCreatedAt] = a.CreatedAt
	}
	if !a.UpdatedAt.IsZero() {
		out[FieldUpdatedAt] = a.UpdatedAt
	}
	return out
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Fields())
}
