package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"sistema_mdu/internal/adapter/persistence/docstore"
	"sistema_mdu/internal/domain/entities"
	"sistema_mdu/internal/usecase/interfaces"
	mock_interfaces "sistema_mdu/internal/usecase/interfaces/mocks"
	"sistema_mdu/pkg"

	"go.uber.org/mock/gomock"
)

func TestManagementDataUseCase_Get(t *testing.T) {
	t.Run("initialises known categories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)
		uc := NewManagementDataUseCase(store)

		store.EXPECT().List(gomock.Any(), ManagementCollection).Return([]interfaces.Snapshot{
			{ID: "cidades", Data: entities.Document{"items": []any{"Recife", "Natal"}}},
			{ID: "regioes", Data: entities.Document{"items": []any{"NE"}}},
			{ID: "equipes", Data: entities.Document{}},
		}, nil)

		res := uc.Get(context.Background())
		if !res.Success {
			t.Fatalf("unexpected failure: %s", res.Error)
		}
		for _, c := range entities.KnownCategories {
			if res.Data[c] == nil {
				t.Fatalf("category %s missing", c)
			}
		}
		if !reflect.DeepEqual(res.Data[entities.CategoryCidades], []any{"Recife", "Natal"}) {
			t.Fatalf("unexpected cidades: %v", res.Data[entities.CategoryCidades])
		}
		if len(res.Data[entities.CategoryProjetos]) != 0 || len(res.Data[entities.CategoryEquipes]) != 0 {
			t.Fatalf("expected empty categories")
		}
		if !reflect.DeepEqual(res.Data["regioes"], []any{"NE"}) {
			t.Fatalf("unknown categories must be kept: %v", res.Data)
		}
	})

	t.Run("legacy documents keyed by type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)
		uc := NewManagementDataUseCase(store)

		store.EXPECT().List(gomock.Any(), ManagementCollection).Return([]interfaces.Snapshot{
			{ID: "x9f", Data: entities.Document{"type": "equipes", "items": []any{"E1"}}},
			{ID: "k2a", Data: entities.Document{"type": "cidades", "items": []any{"old"}}},
			{ID: "cidades", Data: entities.Document{"type": "cidades", "items": []any{"new"}}},
		}, nil)

		res := uc.Get(context.Background())
		if !reflect.DeepEqual(res.Data[entities.CategoryEquipes], []any{"E1"}) {
			t.Fatalf("legacy equipes not used: %v", res.Data)
		}
		if !reflect.DeepEqual(res.Data[entities.CategoryCidades], []any{"new"}) {
			t.Fatalf("category document must win over legacy: %v", res.Data)
		}
		if _, ok := res.Data["x9f"]; ok {
			t.Fatalf("legacy id leaked as a category")
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)
		uc := NewManagementDataUseCase(store)

		store.EXPECT().List(gomock.Any(), ManagementCollection).Return(nil, errors.New("offline"))

		res := uc.Get(context.Background())
		if res.Success || res.Error != "offline" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestManagementDataUseCase_Save(t *testing.T) {
	t.Run("upserts by category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)
		uc := NewManagementDataUseCase(store)

		store.EXPECT().Upsert(gomock.Any(), ManagementCollection, "projetos", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, doc entities.Document) error {
				if doc["type"] != "projetos" || !reflect.DeepEqual(doc["items"], []any{"P1"}) {
					t.Fatalf("unexpected document: %+v", doc)
				}
				if !entities.IsServerTimestamp(doc[entities.FieldUpdatedAt]) {
					t.Fatalf("expected updatedAt sentinel")
				}
				return nil
			},
		)

		if res := uc.Save(context.Background(), entities.CategoryProjetos, []any{"P1"}); !res.Success {
			t.Fatalf("unexpected failure: %s", res.Error)
		}
	})

	t.Run("empty category", func(t *testing.T) {
		uc := NewManagementDataUseCase(nil)
		res := uc.Save(context.Background(), "  ", []any{"x"})
		if res.Success || !pkg.IsValidationError(res.Err()) {
			t.Fatalf("expected validation failure, got %+v", res)
		}
	})

	t.Run("round trip keeps one document per category", func(t *testing.T) {
		store := docstore.NewMemoryStore(nil)
		uc := NewManagementDataUseCase(store)
		ctx := context.Background()

		for _, items := range [][]any{{"Recife"}, {"Recife", "Olinda"}} {
			if res := uc.Save(ctx, entities.CategoryCidades, items); !res.Success {
				t.Fatalf("save failed: %s", res.Error)
			}
		}
		if res := uc.Save(ctx, entities.CategoryEquipes, nil); !res.Success {
			t.Fatalf("save failed: %s", res.Error)
		}

		snaps, err := store.List(ctx, ManagementCollection)
		if err != nil || len(snaps) != 2 {
			t.Fatalf("expected 2 documents, got %d (%v)", len(snaps), err)
		}
		for _, s := range snaps {
			if s.Data.String("type") != s.ID {
				t.Fatalf("document id must equal its category: %+v", s)
			}
		}

		res := uc.Get(ctx)
		if !reflect.DeepEqual(res.Data[entities.CategoryCidades], []any{"Recife", "Olinda"}) {
			t.Fatalf("unexpected cidades: %v", res.Data[entities.CategoryCidades])
		}
		if items := res.Data[entities.CategoryEquipes]; items == nil || len(items) != 0 {
			t.Fatalf("expected empty equipes, got %v", items)
		}
	})
}
