package usecase

import (
	"moviehub/internal/data/repository"

	"go.uber.org/zap"
)

// Service mounts page controllers. Every call returns a fresh controller
// owned by the caller; nothing is shared between pages.
type Service struct {
	catalog repository.CatalogRepository
	log     *zap.Logger
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		catalog: repo.Catalog,
		log:     log.With(zap.String("service", "pages")),
	}
}

func (s *Service) Home() *ListingController {
	return newHomeController(s.catalog, s.log)
}

func (s *Service) Explore() *ListingController {
	return newExploreController(s.catalog, s.log)
}

func (s *Service) Search() *SearchController {
	return newSearchController(s.catalog, s.log)
}

func (s *Service) Detail() *DetailController {
	return newDetailController(s.catalog, s.log)
}

func (s *Service) Certification() *CertificationController {
	return newCertificationController(s.catalog, s.log)
}
