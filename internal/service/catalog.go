package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"
	"gorm.io/gorm"

	"github.com/cemention/cemention/internal/es"
	"github.com/cemention/cemention/internal/models"
	"github.com/cemention/cemention/internal/repo"
	"github.com/cemention/cemention/internal/transport"
)

type CatalogService struct {
	Repo *repo.GormRepo
	ES   *elasticsearch.Client
}

// ListProducts returns active products with the caller's price resolved.
func (s *CatalogService) ListProducts(ctx context.Context, role models.Role) ([]transport.ProductWithPrice, error) {
	products, err := s.Repo.ListProducts(ctx, true)
	if err != nil {
		return nil, err
	}
	priced := make([]transport.ProductWithPrice, len(products))
	for i := range products {
		priced[i] = transport.ProductWithPrice{
			Product:   products[i],
			UserPrice: products[i].UnitPriceFor(role),
		}
	}
	return priced, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string, role models.Role) (*transport.ProductWithPrice, error) {
	product, err := s.Repo.ProductByID(ctx, id, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product", ErrNotFound)
		}
		return nil, err
	}
	return &transport.ProductWithPrice{
		Product:   *product,
		UserPrice: product.UnitPriceFor(role),
	}, nil
}

func (s *CatalogService) SearchProducts(ctx context.Context, query string, from, size int) (*transport.SearchResponse, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query required", ErrValidation)
	}
	if s.ES == nil {
		return nil, errors.New("search not configured")
	}
	total, products, err := es.SearchProducts(ctx, s.ES, query, from, size)
	if err != nil {
		return nil, err
	}
	return &transport.SearchResponse{Total: total, Products: products}, nil
}
