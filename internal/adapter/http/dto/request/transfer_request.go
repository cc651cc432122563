package request

import "sistema_mdu/internal/domain/entities"

// TransferQuery binds the format (and, for imports, the report flag) of
// POST /import and GET /export.
type TransferQuery struct {
	Format string `form:"format"`
	Report bool   `form:"report"`
}

func (q TransferQuery) ResolveFormat() (entities.FileFormat, error) {
	return entities.ParseFileFormat(q.Format)
}
