package usecase

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"sistema_mdu/internal/adapter/http/handlers/mocks"
	"sistema_mdu/internal/adapter/persistence/docstore"
	"sistema_mdu/internal/domain/entities"
	mock_interfaces "sistema_mdu/internal/usecase/interfaces/mocks"
	"sistema_mdu/pkg"

	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func TestImportExportUseCase_ImportBatchSkipsFailures(t *testing.T) {
	ctx := context.Background()
	addresses := NewAddressUseCase(docstore.NewMemoryStore(nil))
	uc := NewImportExportUseCase(addresses, nil)

	records := []entities.Document{
		{"cidade": "Recife"},
		{"cidade": "Natal"},
		{"cidade": "Olinda", "callback": func() {}}, // rejected by the store
		{"cidade": "Caruaru"},
		{"cidade": "Petrolina"},
	}

	res := uc.ImportBatch(ctx, records)
	if !res.Success || res.Data != 4 || res.Key() != pkg.KeyImported {
		t.Fatalf("unexpected result: %+v", res)
	}

	all := addresses.GetAll(ctx)
	if len(all.Data) != 4 {
		t.Fatalf("expected 4 stored addresses, got %d", len(all.Data))
	}
	if all.Data[0].Cidade != "Petrolina" {
		t.Fatalf("records after the failure must be imported, newest is %q", all.Data[0].Cidade)
	}
}

func TestImportExportUseCase_ImportIsSequential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	addresses := mocks.NewMockIAddressUseCase(ctrl)
	uc := NewImportExportUseCase(addresses, nil)

	gomock.InOrder(
		addresses.EXPECT().Add(gomock.Any(), entities.Document{"n": 1}).Return(pkg.OKAs(pkg.KeyID, "a")),
		addresses.EXPECT().Add(gomock.Any(), entities.Document{"n": 2}).Return(pkg.Fail[string](errors.New("rejected"))),
		addresses.EXPECT().Add(gomock.Any(), entities.Document{"n": 3}).Return(pkg.OKAs(pkg.KeyID, "c")),
	)

	res := uc.ImportReport(context.Background(), []entities.Document{{"n": 1}, {"n": 2}, {"n": 3}})
	if !res.Success {
		t.Fatalf("unexpected failure: %s", res.Error)
	}
	r := res.Data
	if r.Imported != 2 || len(r.IDs) != 2 || r.IDs[0] != "a" || r.IDs[1] != "c" {
		t.Fatalf("unexpected report: %+v", r)
	}
	if len(r.Failures) != 1 || r.Failures[0].Index != 1 || r.Failures[0].Error != "rejected" {
		t.Fatalf("unexpected failures: %+v", r.Failures)
	}
}

func TestImportExportUseCase_ImportEmpty(t *testing.T) {
	uc := NewImportExportUseCase(nil, nil)
	res := uc.ImportBatch(context.Background(), nil)
	if !res.Success || res.Data != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func fixtureAddresses() []entities.Address {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []entities.Address{
		{ID: "b", Cidade: "Recife", Projeto: "P1", Status: "Ativo", CreatedAt: ts.Add(time.Minute), UpdatedAt: ts.Add(time.Minute),
			Attributes: map[string]any{"unidades": 40.0, "bairro": "Boa Vista"}},
		{ID: "a", Cidade: "Natal", CreatedAt: ts, UpdatedAt: ts, Attributes: map[string]any{"tags": []any{"x", "y"}}},
	}
}

func TestEncodeAddressesCSV(t *testing.T) {
	out, err := EncodeAddresses(entities.FormatCSV, fixtureAddresses())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	wantHeader := []string{"id", "cidade", "projeto", "status", "createdAt", "updatedAt", "bairro", "tags", "unidades"}
	if strings.Join(rows[0], ",") != strings.Join(wantHeader, ",") {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[1][0] != "b" || rows[1][6] != "Boa Vista" || rows[1][8] != "40" || rows[1][4] != "2025-03-01T12:01:00.000000000Z" {
		t.Fatalf("unexpected row: %v", rows[1])
	}
	if rows[2][2] != "" || rows[2][7] != `["x","y"]` {
		t.Fatalf("unexpected row: %v", rows[2])
	}
}

func TestEncodeAddressesJSONAndYAML(t *testing.T) {
	out, err := EncodeAddresses(entities.FormatJSON, fixtureAddresses())
	if err != nil {
		t.Fatalf("encode json: %v", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(out, &rows); err != nil || len(rows) != 2 || rows[0]["bairro"] != "Boa Vista" {
		t.Fatalf("unexpected json: %s (%v)", out, err)
	}

	out, err = EncodeAddresses(entities.FormatYAML, fixtureAddresses())
	if err != nil {
		t.Fatalf("encode yaml: %v", err)
	}
	rows = nil
	if err := yaml.Unmarshal(out, &rows); err != nil || len(rows) != 2 || rows[1]["cidade"] != "Natal" {
		t.Fatalf("unexpected yaml: %s (%v)", out, err)
	}

	if _, err := EncodeAddresses("xml", nil); !pkg.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestImportExportUseCase_Export(t *testing.T) {
	t.Run("uploads to storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		addresses := mocks.NewMockIAddressUseCase(ctrl)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewImportExportUseCase(addresses, storage)
		uc.now = func() time.Time { return time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC) }

		addresses.EXPECT().GetAll(gomock.Any()).Return(pkg.OK(fixtureAddresses()))
		storage.EXPECT().Put(gomock.Any(), "exports/enderecos-20250301T123000Z.csv", "text/csv; charset=utf-8", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, body io.Reader) (string, error) {
				raw, _ := io.ReadAll(body)
				if !strings.HasPrefix(string(raw), "id,cidade,projeto,status,createdAt,updatedAt") {
					t.Fatalf("unexpected body: %s", raw)
				}
				return "s3://mdu/exports/enderecos-20250301T123000Z.csv", nil
			},
		)

		res := uc.Export(context.Background(), entities.FormatCSV)
		if !res.Success {
			t.Fatalf("unexpected failure: %s", res.Error)
		}
		f := res.Data
		if f.Count != 2 || f.Filename != "enderecos-20250301T123000Z.csv" || f.Location == "" || len(f.Content) == 0 {
			t.Fatalf("unexpected export: %+v", f)
		}
	})

	t.Run("without storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		addresses := mocks.NewMockIAddressUseCase(ctrl)
		uc := NewImportExportUseCase(addresses, nil)

		addresses.EXPECT().GetAll(gomock.Any()).Return(pkg.OK(fixtureAddresses()))

		res := uc.Export(context.Background(), entities.FormatJSON)
		if !res.Success || res.Data.Location != "" || res.Data.ContentType != "application/json" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		addresses := mocks.NewMockIAddressUseCase(ctrl)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewImportExportUseCase(addresses, storage)

		addresses.EXPECT().GetAll(gomock.Any()).Return(pkg.OK(fixtureAddresses()))
		storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket missing"))

		res := uc.Export(context.Background(), entities.FormatYAML)
		if res.Success || res.Error != "bucket missing" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("getAll failure forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		addresses := mocks.NewMockIAddressUseCase(ctrl)
		uc := NewImportExportUseCase(addresses, nil)

		addresses.EXPECT().GetAll(gomock.Any()).Return(pkg.Fail[[]entities.Address](errors.New("offline")))

		res := uc.Export(context.Background(), entities.FormatJSON)
		if res.Success || res.Error != "offline" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestDecodeRecords(t *testing.T) {
	t.Run("csv", func(t *testing.T) {
		in := "\ufeffcidade, projeto,status,obs\nRecife,P1,Ativo,\nNatal,,Pendente,sem acesso\n\n"
		got, err := DecodeRecords(entities.FormatCSV, strings.NewReader(in))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 records, got %v", got)
		}
		if got[0]["cidade"] != "Recife" || got[0]["projeto"] != "P1" {
			t.Fatalf("unexpected first record: %v", got[0])
		}
		if _, ok := got[0]["obs"]; ok {
			t.Fatalf("empty cells must be omitted")
		}
		if _, ok := got[1]["projeto"]; ok || got[1]["obs"] != "sem acesso" {
			t.Fatalf("unexpected second record: %v", got[1])
		}
	})

	t.Run("json", func(t *testing.T) {
		got, err := DecodeRecords(entities.FormatJSON, strings.NewReader(`[{"cidade":"Recife","unidades":3}]`))
		if err != nil || len(got) != 1 || got[0]["unidades"] != float64(3) {
			t.Fatalf("unexpected records: %v (%v)", got, err)
		}
		if _, err := DecodeRecords(entities.FormatJSON, strings.NewReader(`{"cidade":"Recife"}`)); !pkg.IsValidationError(err) {
			t.Fatalf("expected validation error for a non-array, got %v", err)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		got, err := DecodeRecords(entities.FormatYAML, strings.NewReader("- cidade: Recife\n  status: Ativo\n- cidade: Natal\n"))
		if err != nil || len(got) != 2 || got[1]["cidade"] != "Natal" {
			t.Fatalf("unexpected records: %v (%v)", got, err)
		}
		empty, err := DecodeRecords(entities.FormatYAML, strings.NewReader(""))
		if err != nil || empty == nil || len(empty) != 0 {
			t.Fatalf("expected empty records, got %v (%v)", empty, err)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		if _, err := DecodeRecords("xml", strings.NewReader("")); !pkg.IsValidationError(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}
