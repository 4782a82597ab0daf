package person

import (
	"context"

	"gestiondeo/internal/domain"
	"gestiondeo/internal/repository"
)

// Store is the slice of the dataset this module needs.
type Store interface {
	Current() repository.Snapshot
	CreatePerson(ctx context.Context, p domain.Person) (domain.Person, error)
	UpdatePerson(ctx context.Context, p domain.Person) error
	DeletePerson(ctx context.Context, rowIdx int64) error
}
