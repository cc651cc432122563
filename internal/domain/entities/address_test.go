package entities

import (
	"encoding/json"
	"testing"
	"time"
)

func TestAddressFromDocument(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	doc := Document{
		FieldCidade:    "Recife",
		FieldProjeto:   "P1",
		FieldStatus:    "Ativo",
		"numero":       float64(42),
		FieldCreatedAt: now,
		FieldUpdatedAt: FormatTimestamp(now.Add(time.Second)),
	}

	a := AddressFromDocument("abc", doc)
	if a.ID != "abc" || a.Cidade != "Recife" || a.Projeto != "P1" || a.Status != "Ativo" {
		t.Fatalf("unexpected address: %+v", a)
	}
	if !a.CreatedAt.Equal(now) || !a.UpdatedAt.Equal(now.Add(time.Second)) {
		t.Fatalf("unexpected timestamps: %v %v", a.CreatedAt, a.UpdatedAt)
	}
	if a.Attributes["numero"] != float64(42) || len(a.Attributes) != 1 {
		t.Fatalf("unexpected attributes: %+v", a.Attributes)
	}
}

func TestAddressFromDocument_NonStringKnownFieldKept(t *testing.T) {
	a := AddressFromDocument("x", Document{FieldStatus: float64(3)})
	if a.Status != "" {
		t.Fatalf("expected empty status, got %q", a.Status)
	}
	if a.Fields()[FieldStatus] != float64(3) {
		t.Fatalf("expected raw status to survive, got %+v", a.Fields())
	}
}

func TestAddress_MarshalJSONIsFlat(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a := Address{ID: "abc", Cidade: "Recife", Projeto: "P1", Status: "Ativo", CreatedAt: now, UpdatedAt: now,
		Attributes: map[string]any{"bairro": "Boa Viagem"}}

	b, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	for k, want := range map[string]any{"id": "abc", "cidade": "Recife", "projeto": "P1", "status": "Ativo", "bairro": "Boa Viagem"} {
		if body[k] != want {
			t.Fatalf("expected %s=%v, got %s", k, want, b)
		}
	}
	if _, ok := body["createdAt"]; !ok {
		t.Fatalf("expected createdAt in %s", b)
	}
}

func TestTimestampLayoutSortsLexically(t *testing.T) {
	a := FormatTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 100, time.UTC))
	b := FormatTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 2000, time.UTC))
	if !(a < b) {
		t.Fatalf("expected %s < %s", a, b)
	}
	if _, ok := ParseTimestamp(a); !ok {
		t.Fatalf("expected %s to parse", a)
	}
}

func TestNewManagementData(t *testing.T) {
	d := NewManagementData()
	if len(d) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(d))
	}
	for _, c := range KnownCategories {
		if items, ok := d[c]; !ok || len(items) != 0 {
			t.Fatalf("expected empty %s", c)
		}
	}
}
