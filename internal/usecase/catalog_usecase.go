package usecase

import (
	"context"
	"strings"

	"katana_store/internal/cache"
	"katana_store/internal/domain"

	"github.com/sirupsen/logrus"
)

type CatalogUseCase interface {
	ListKatanas(ctx context.Context, query string) ([]domain.Katana, error)
	CreateKatana(ctx context.Context, katana *domain.Katana) (*domain.Katana, error)
}

type catalogUseCase struct {
	katanaRepo domain.KatanaRepository
	cache      *cache.CatalogCache
	log        *logrus.Logger
}

func NewCatalogUseCase(repo domain.KatanaRepository, catalogCache *cache.CatalogCache, logger *logrus.Logger) CatalogUseCase {
	return &catalogUseCase{
		katanaRepo: repo,
		cache:      catalogCache,
		log:        logger,
	}
}

// ListKatanas returns the whole catalog for an empty query, or the katanas
// whose name or steel contains the query (case-insensitive). Only the
// unfiltered listing goes through the cache.
func (uc *catalogUseCase) ListKatanas(ctx context.Context, query string) ([]domain.Katana, error) {
	if query == "" {
		if katanas, ok := uc.cache.GetCatalog(ctx); ok {
			uc.log.Infof("Use Case: Catalog served from cache (%d katanas)", len(katanas))
			return katanas, nil
		}
	}

	katanas, err := uc.katanaRepo.SearchKatanas(ctx, query)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to search katanas (q=%q): %v", query, err)
		return nil, err
	}

	if query == "" {
		uc.cache.SetCatalog(ctx, katanas)
	}

	uc.log.Infof("Use Case: Retrieved %d katanas (q=%q)", len(katanas), query)
	return katanas, nil
}

func (uc *catalogUseCase) CreateKatana(ctx context.Context, katana *domain.Katana) (*domain.Katana, error) {
	if strings.TrimSpace(katana.Name) == "" {
		return nil, &domain.ValidationError{Reason: "katana name cannot be empty"}
	}
	if katana.Price < 0 {
		return nil, &domain.ValidationError{Reason: "price cannot be negative"}
	}
	if katana.Stock < 0 {
		return nil, &domain.ValidationError{Reason: "stock cannot be negative"}
	}
	if katana.Rating < 0 || katana.Rating > 5 {
		return nil, &domain.ValidationError{Reason: "rating must be between 0 and 5"}
	}
	if katana.BladeLengthCM != nil && *katana.BladeLengthCM < 0 {
		return nil, &domain.ValidationError{Reason: "blade length cannot be negative"}
	}
	if katana.Images == nil {
		katana.Images = []string{}
	}

	created, err := uc.katanaRepo.CreateKatana(ctx, katana)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create katana '%s': %v", katana.Name, err)
		return nil, err
	}

	uc.cache.InvalidateCatalog(ctx)
	uc.log.Infof("Use Case: Katana created with ID %s", created.ID.Hex())
	return created, nil
}
