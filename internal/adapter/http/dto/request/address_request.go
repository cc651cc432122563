package request

import (
	"strings"

	"sistema_mdu/internal/domain/entities"
)

// AddressSearchQuery binds GET /enderecos/search.
type AddressSearchQuery struct {
	Cidade  string `form:"cidade"`
	Projeto string `form:"projeto"`
	Status  string `form:"status"`
}

func (q AddressSearchQuery) Filter() entities.AddressFilter {
	return entities.AddressFilter{
		Cidade:  strings.TrimSpace(q.Cidade),
		Projeto: strings.TrimSpace(q.Projeto),
		Status:  strings.TrimSpace(q.Status),
	}
}
