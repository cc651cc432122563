package entities

// Sentinels used when an address has no value for an aggregated field.
const (
	UndefinedStatus  = "Não definido"
	UndefinedCidade  = "Não definida"
	UndefinedProjeto = "Não definido"
)

// RecentLimit is the size of the "most recent" slice of a stats snapshot.
const RecentLimit = 10

// Stats is a derived, non-persisted dashboard snapshot.
type Stats struct {
	Total      int            `json:"total"`
	PorStatus  map[string]int `json:"porStatus"`
	PorCidade  map[string]int `json:"porCidade"`
	PorProjeto map[string]int `json:"porProjeto"`
	Recentes   []Address      `json:"recentes"`
}
