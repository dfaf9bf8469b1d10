package service

import (
	"context"
	"errors"

	"github.com/maroofsyyed/dominion1/internal/domain"
	"github.com/maroofsyyed/dominion1/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

type ShopService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

type shopService struct {
	productRepo repository.ProductRepository
}

func NewShopService(productRepo repository.ProductRepository) ShopService {
	return &shopService{productRepo: productRepo}
}

func (s *shopService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *shopService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrProductNotFound)
	}
	return p, nil
}
