package repository

import (
	"moviehub/pkg/remote"

	"go.uber.org/zap"
)

type Repository struct {
	Catalog CatalogRepository
}

func NewRepository(client remote.HTTPIface, log *zap.Logger) *Repository {
	return &Repository{
		Catalog: NewCatalogRepository(client, log),
	}
}
