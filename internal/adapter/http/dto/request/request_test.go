package request

import (
	"testing"

	"sistema_mdu/internal/domain/entities"
)

func TestAddressSearchQuery_Filter(t *testing.T) {
	f := AddressSearchQuery{Cidade: " Recife ", Status: "\tAtivo"}.Filter()
	if f != (entities.AddressFilter{Cidade: "Recife", Status: "Ativo"}) {
		t.Fatalf("unexpected filter: %+v", f)
	}
}

func TestTransferQuery_ResolveFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    entities.FileFormat
		wantErr bool
	}{
		{in: "", want: entities.FormatJSON},
		{in: "CSV", want: entities.FormatCSV},
		{in: "yml", want: entities.FormatYAML},
		{in: "xlsx", wantErr: true},
	}
	for _, tt := range tests {
		got, err := TransferQuery{Format: tt.in}.ResolveFormat()
		if (err != nil) != tt.wantErr {
			t.Fatalf("%q: unexpected error %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("%q: expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestResolveEmail(t *testing.T) {
	if got := ResolveEmail("  Ana@Example.com "); got != "Ana@Example.com" {
		t.Fatalf("unexpected email %q", got)
	}
}
