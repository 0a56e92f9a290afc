package category

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"meatshop/internal/domain"
	apperrors "meatshop/internal/errors"
)

type Repository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	Insert(ctx context.Context, c domain.Category) error
	Update(ctx context.Context, id string, patch domain.CategoryPatch) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context, name string) (int64, error)
}

// maxNameLength matches the Category.name column width.
const maxNameLength = 100

type Service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, name string, displayOrder int) (*domain.Category, error) {
	name = domain.NormalizeCategoryName(name)
	if err := checkName(name); err != nil {
		return nil, err
	}

	taken, err := s.nameTaken(ctx, name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewValidationError("Category already exists")
	}

	c := domain.Category{
		ID:           uuid.New().String(),
		Name:         name,
		DisplayOrder: displayOrder,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Service) Update(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error) {
	if patch.IsEmpty() {
		return nil, apperrors.NewValidationError("No update data provided")
	}

	if patch.Name != nil {
		name := domain.NormalizeCategoryName(*patch.Name)
		if err := checkName(name); err != nil {
			return nil, err
		}

		taken, err := s.nameTaken(ctx, name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.NewValidationError("Category name already exists")
		}
		patch.Name = &name
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

// Delete refuses to remove a category that products still reference.
func (s *Service) Delete(ctx context.Context, id string) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	inUse, err := s.repo.CountProducts(ctx, c.Name)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return apperrors.NewValidationError(fmt.Sprintf("Cannot delete category. %d products are using this category.", inUse))
	}

	return s.repo.Delete(ctx, id)
}

// SeedDefaults inserts the default categories when none exist.
func (s *Service) SeedDefaults(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, c := range domain.DefaultCategories() {
		c.ID = uuid.New().String()
		c.CreatedAt = s.now()
		if err := s.repo.Insert(ctx, c); err != nil {
			return fmt.Errorf("seeding category %s: %w", c.Name, err)
		}
	}

	s.logger.Info("default categories seeded", zap.Int("count", len(domain.DefaultCategories())))
	return nil
}

func (s *Service) nameTaken(ctx context.Context, name, exceptID string) (bool, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return false, nil
		}
		return false, err
	}
	return existing.ID != exceptID, nil
}

func checkName(name string) error {
	if name == "" {
		return apperrors.NewValidationError("Category name is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return apperrors.NewValidationError(fmt.Sprintf("Category name must be at most %d characters", maxNameLength))
	}
	return nil
}
