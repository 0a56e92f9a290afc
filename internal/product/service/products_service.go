package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"meatshop/internal/domain"
	apperrors "meatshop/internal/errors"
)

type Repository interface {
	FindAll(ctx context.Context, category string) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Insert(ctx context.Context, p domain.Product) error
	Update(ctx context.Context, id string, patch domain.ProductPatch) error
	Delete(ctx context.Context, id string) error
}

type ProductService struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *ProductService {
	return &ProductService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func (s *ProductService) List(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.FindAll(ctx, category)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create assigns the identifier and creation time, then stores p. The
// returned product carries the price exactly as stored.
func (s *ProductService) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	p.ID = uuid.New().String()
	p.CreatedAt = s.now()
	p.Price = domain.RoundMoney(p.Price)

	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *ProductService) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	if patch.IsEmpty() {
		return nil, apperrors.NewValidationError("No update data provided")
	}

	if patch.Price != nil {
		price := domain.RoundMoney(*patch.Price)
		patch.Price = &price
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
