package request

type SaveManagementRequest struct {
	Items []any `json:"items" binding:"required"`
}
