package project

import (
	"context"

	"gestiondeo/internal/domain"
	"gestiondeo/internal/repository"
)

type Store interface {
	Current() repository.Snapshot
	CreateProject(ctx context.Context, p domain.Project) (domain.Project, error)
	UpdateProject(ctx context.Context, p domain.Project) error
	DeleteProject(ctx context.Context, rowIdx int64) error
}
