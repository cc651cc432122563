package usecase

import (
	"context"

	"sistema_mdu/internal/domain/entities"
	"sistema_mdu/internal/usecase/interfaces"
	"sistema_mdu/pkg"
)

//go:generate mockgen -source=address_usecase.go -destination=../adapter/http/handlers/mocks/mock_address_usecase.go -package=mocks

// IAddressUseCase exposes CRUD and search over the enderecos collection.
type IAddressUseCase interface {
	GetAll(ctx context.Context) pkg.Result[[]entities.Address]
	Add(ctx context.Context, record entities.Document) pkg.Result[string]
	Update(ctx context.Context, id string, partial entities.Document) pkg.Result[struct{}]
	Delete(ctx context.Context, id string) pkg.Result[struct{}]
	Search(ctx context.Context, filter entities.AddressFilter) pkg.Result[[]entities.Address]
}

type AddressUseCase struct {
	service
	store interfaces.IDocumentStore
}

var _ IAddressUseCase = (*AddressUseCase)(nil)

func NewAddressUseCase(store interfaces.IDocumentStore, opts ...Option) *AddressUseCase {
	return &AddressUseCase{service: newService("address", opts), store: store}
}

// GetAll returns every address, newest first.
func (u *AddressUseCase) GetAll(ctx context.Context) pkg.Result[[]entities.Address] {
	return guard(u.service, "getAll", func() pkg.Result[[]entities.Address] {
		return u.query(ctx, interfaces.Query{}.OrderByDesc(entities.FieldCreatedAt))
	})
}

// Add stores record with server-assigned timestamps. A caller supplied id is
// ignored; the store assigns one.
func (u *AddressUseCase) Add(ctx context.Context, record entities.Document) pkg.Result[string] {
	return guard(u.service, "add", func() pkg.Result[string] {
		doc := record.Clone()
		delete(doc, entities.FieldID)
		doc[entities.FieldCreatedAt] = entities.ServerTimestamp
		doc[entities.FieldUpdatedAt] = entities.ServerTimestamp

		id, err := u.store.Add(ctx, AddressCollection, doc)
		if err != nil {
			return pkg.Fail[string](err)
		}
		return pkg.OKAs(pkg.KeyID, id)
	})
}

// Update merges partial into the stored address and refreshes updatedAt.
// Field names are not checked; id and createdAt cannot be overwritten.
func (u *AddressUseCase) Update(ctx context.Context, id string, partial entities.Document) pkg.Result[struct{}] {
	return guard(u.service, "update", func() pkg.Result[struct{}] {
		fields := partial.Clone()
		delete(fields, entities.FieldID)
		delete(fields, entities.FieldCreatedAt)
		fields[entities.FieldUpdatedAt] = entities.ServerTimestamp

		if err := u.store.Update(ctx, AddressCollection, id, fields); err != nil {
			return pkg.Fail[struct{}](err)
		}
		return pkg.Done()
	})
}

// Delete removes the address. Deleting an absent address succeeds.
func (u *AddressUseCase) Delete(ctx context.Context, id string) pkg.Result[struct{}] {
	return guard(u.service, "delete", func() pkg.Result[struct{}] {
		if err := u.store.Delete(ctx, AddressCollection, id); err != nil {
			return pkg.Fail[struct{}](err)
		}
		return pkg.Done()
	})
}

// Search applies the non-empty filter fields (cidade, projeto, status) and
// orders the matches newest first.
func (u *AddressUseCase) Search(ctx context.Context, filter entities.AddressFilter) pkg.Result[[]entities.Address] {
	return guard(u.service, "search", func() pkg.Result[[]entities.Address] {
		q := interfaces.Query{}
		if filter.Cidade != "" {
			q = q.Where(entities.FieldCidade, filter.Cidade)
		}
		if filter.Projeto != "" {
			q = q.Where(entities.FieldProjeto, filter.Projeto)
		}
		if filter.Status != "" {
			q = q.Where(entities.FieldStatus, filter.Status)
		}
		return u.query(ctx, q.OrderByDesc(entities.FieldCreatedAt))
	})
}

func (u *AddressUseCase) query(ctx context.Context, q interfaces.Query) pkg.Result[[]entities.Address] {
	snaps, err := u.store.Query(ctx, AddressCollection, q)
	if err != nil {
		return pkg.Fail[[]entities.Address](err)
	}
	out := make([]entities.Address, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, entities.AddressFromDocument(s.ID, s.Data))
	}
	return pkg.OK(out)
}
