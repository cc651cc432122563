package interfaces

import (
	"context"
	"io"
)

//go:generate mockgen -source=object_storage_interface.go -destination=mocks/mock_object_storage.go -package=mock_interfaces

// IObjectStorage receives exported files (the dashboard's file storage bucket).
type IObjectStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (location string, err error)
}
