package blob

import (
	"context"
	"errors"
	"io"
	"time"
)

var ErrNotFound = errors.New("blob not found")

// Object describe un objeto listado.
type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Store es el bucket de fotos: key/value opaco direccionado por "{slug}/{archivo}".
type Store interface {
	// Put crea o reemplaza (upsert) el objeto.
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// List devuelve los objetos con ese prefijo, ordenados por key.
	List(ctx context.Context, prefix string) ([]Object, error)
	Delete(ctx context.Context, keys ...string) error
	// PublicURL arma la URL pública del objeto (no valida que exista).
	PublicURL(key string) string
}
