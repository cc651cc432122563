package usecase

import (
	"context"
	"fmt"
	"reflect"

	"sistema_mdu/internal/domain/entities"
	"sistema_mdu/pkg"
)

//go:generate mockgen -source=stats_usecase.go -destination=../adapter/http/handlers/mocks/mock_stats_usecase.go -package=mocks

type IStatsUseCase interface {
	GetStats(ctx context.Context) pkg.Result[entities.Stats]
}

// StatsUseCase derives the dashboard snapshot from AddressUseCase.GetAll; it
// has no store access of its own.
type StatsUseCase struct {
	service
	addresses IAddressUseCase
}

var _ IStatsUseCase = (*StatsUseCase)(nil)

func NewStatsUseCase(addresses IAddressUseCase, opts ...Option) *StatsUseCase {
	return &StatsUseCase{service: newService("stats", opts), addresses: addresses}
}

// GetStats forwards a GetAll failure unchanged.
func (u *StatsUseCase) GetStats(ctx context.Context) pkg.Result[entities.Stats] {
	return guard(u.service, "getStats", func() pkg.Result[entities.Stats] {
		all := u.addresses.GetAll(ctx)
		if !all.Success {
			return pkg.Forward[entities.Stats](all)
		}
		return pkg.OK(computeStats(all.Data))
	})
}

// computeStats expects addresses ordered newest first.
func computeStats(addresses []entities.Address) entities.Stats {
	stats := entities.Stats{
		Total:      len(addresses),
		PorStatus:  map[string]int{},
		PorCidade:  map[string]int{},
		PorProjeto: map[string]int{},
		Recentes:   make([]entities.Address, min(len(addresses), entities.RecentLimit)),
	}
	copy(stats.Recentes, addresses)
	for _, a := range addresses {
		stats.PorStatus[label(a, entities.FieldStatus, a.Status, entities.UndefinedStatus)]++
		stats.PorCidade[label(a, entities.FieldCidade, a.Cidade, entities.UndefinedCidade)]++
		stats.PorProjeto[label(a, entities.FieldProjeto, a.Projeto, entities.UndefinedProjeto)]++
	}
	return stats
}

// label counts a known field stored as a non-string by its printed value.
// Empty strings, nil and zero values fall back to def.
func label(a entities.Address, field, value, def string) string {
	if value != "" {
		return value
	}
	if v, ok := a.Attributes[field]; ok && v != nil && !reflect.ValueOf(v).IsZero() {
		return fmt.Sprint(v)
	}
	return def
}
