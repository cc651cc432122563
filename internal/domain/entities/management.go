package entities

// ManagementCategory names a management dataset (dados de gestão). Each
// category is stored as one document whose id is the category name.
type ManagementCategory string

const (
	CategoryProjetos     ManagementCategory = "projetos"
	CategorySubprojetos  ManagementCategory = "subprojetos"
	CategorySupervisores ManagementCategory = "supervisores"
	CategoryEquipes      ManagementCategory = "equipes"
	CategoryCidades      ManagementCategory = "cidades"
)

const (
	FieldItems = "items"
	FieldType  = "type"
)

// KnownCategories lists the categories the dashboard always expects.
var KnownCategories = []ManagementCategory{
	CategoryProjetos,
	CategorySubprojetos,
	CategorySupervisores,
	CategoryEquipes,
	CategoryCidades,
}

// ManagementData maps each category to its ordered items.
type ManagementData map[ManagementCategory][]any

// NewManagementData returns a dataset with every known category present and
// empty.
func NewManagementData() ManagementData {
	d := make(ManagementData, len(KnownCategories))
	for _, c := range KnownCategories {
		d[c] = []any{}
	}
	return d
}
