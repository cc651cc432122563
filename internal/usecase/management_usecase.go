package usecase

import (
	"context"
	"strings"

	"sistema_mdu/internal/domain/entities"
	"sistema_mdu/internal/usecase/interfaces"
	"sistema_mdu/pkg"

	"go.uber.org/zap"
)

//go:generate mockgen -source=management_usecase.go -destination=../adapter/http/handlers/mocks/mock_management_usecase.go -package=mocks

// IManagementDataUseCase reads and writes the management datasets (gestao).
type IManagementDataUseCase interface {
	Get(ctx context.Context) pkg.Result[entities.ManagementData]
	Save(ctx context.Context, category entities.ManagementCategory, items []any) pkg.Result[struct{}]
}

type ManagementDataUseCase struct {
	service
	store interfaces.IDocumentStore
}

var _ IManagementDataUseCase = (*ManagementDataUseCase)(nil)

func NewManagementDataUseCase(store interfaces.IDocumentStore, opts ...Option) *ManagementDataUseCase {
	return &ManagementDataUseCase{service: newService("gestao", opts), store: store}
}

// Get returns every category found in the collection, plus the known
// categories initialised empty.
//
// Older deployments created documents with generated ids and the category in
// their type field; those fill a category only when no document is keyed by
// the category itself.
func (u *ManagementDataUseCase) Get(ctx context.Context) pkg.Result[entities.ManagementData] {
	return guard(u.service, "get", func() pkg.Result[entities.ManagementData] {
		snaps, err := u.store.List(ctx, ManagementCollection)
		if err != nil {
			return pkg.Fail[entities.ManagementData](err)
		}

		data := entities.NewManagementData()
		keyed := map[entities.ManagementCategory]bool{}
		var legacy []interfaces.Snapshot
		for _, s := range snaps {
			cat := entities.ManagementCategory(s.ID)
			typ := s.Data.String(entities.FieldType)
			if !isKnownCategory(cat) && isKnownCategory(entities.ManagementCategory(typ)) {
				legacy = append(legacy, s)
				continue
			}
			data[cat] = itemsOf(s.Data)
			keyed[cat] = true
		}
		for _, s := range legacy {
			cat := entities.ManagementCategory(s.Data.String(entities.FieldType))
			if keyed[cat] {
				continue
			}
			u.log.Debug("using legacy management document", zap.String("id", s.ID), zap.String("category", string(cat)))
			data[cat] = itemsOf(s.Data)
			keyed[cat] = true
		}
		return pkg.OK(data)
	})
}

// Save replaces the items of category, creating its document on first use.
// The document id is always the category name.
func (u *ManagementDataUseCase) Save(ctx context.Context, category entities.ManagementCategory, items []any) pkg.Result[struct{}] {
	return guard(u.service, "save", func() pkg.Result[struct{}] {
		name := strings.TrimSpace(string(category))
		if name == "" {
			return pkg.Fail[struct{}](&pkg.ValidationError{Field: "category", Reason: "must not be empty"})
		}
		if items == nil {
			items = []any{}
		}
		err := u.store.Upsert(ctx, ManagementCollection, name, entities.Document{
			entities.FieldType:      name,
			entities.FieldItems:     items,
			entities.FieldUpdatedAt: entities.ServerTimestamp,
		})
		if err != nil {
			return pkg.Fail[struct{}](err)
		}
		return pkg.Done()
	})
}

func isKnownCategory(c entities.ManagementCategory) bool {
	for _, k := range entities.KnownCategories {
		if k == c {
			return true
		}
	}
	return false
}

func itemsOf(doc entities.Document) []any {
	if items, ok := doc[entities.FieldItems].([]any); ok {
		return items
	}
	return []any{}
}
