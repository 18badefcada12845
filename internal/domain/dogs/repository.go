package dogs

import "context"

type Repository interface {
	Create(ctx context.Context, d Dog) error
	Update(ctx context.Context, d Dog) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Dog, error)
	// GetByName compara sin distinguir mayúsculas.
	GetByName(ctx context.Context, name string) (Dog, error)
	List(ctx context.Context, f ListFilter) ([]Dog, error)
}
