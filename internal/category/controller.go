package category

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"meatshop/internal/commons"
	"meatshop/internal/domain"
)

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, name string, displayOrder int) (*domain.Category, error)
	Update(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type createCategoryRequest struct {
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
}

type updateCategoryRequest struct {
	Name         *string `json:"name"`
	DisplayOrder *int    `json:"displayOrder"`
}

type CategoryDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toDTO(c domain.Category) CategoryDTO {
	return CategoryDTO{
		ID:           c.ID,
		Name:         c.Name,
		DisplayOrder: c.DisplayOrder,
		CreatedAt:    c.CreatedAt,
	}
}

type Controller struct {
	service CategoryService
	logger  *zap.Logger
}

func NewController(service CategoryService, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	categories, err := c.service.List(r.Context())
	if err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	resp := make([]CategoryDTO, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, toDTO(cat))
	}
	commons.WriteJSON(w, http.StatusOK, resp, c.logger)
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	cat, err := c.service.Get(r.Context(), chi.URLParam(r, "categoryId"))
	if err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}
	commons.WriteJSON(w, http.StatusOK, toDTO(*cat), c.logger)
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := commons.DecodeJSON(w, r, &req); err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	cat, err := c.service.Create(r.Context(), req.Name, req.DisplayOrder)
	if err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	c.logger.Info("category created", zap.String("categoryId", cat.ID), zap.String("name", cat.Name))
	commons.WriteJSON(w, http.StatusOK, toDTO(*cat), c.logger)
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateCategoryRequest
	if err := commons.DecodeJSON(w, r, &req); err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	cat, err := c.service.Update(r.Context(), chi.URLParam(r, "categoryId"), domain.CategoryPatch{
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}
	commons.WriteJSON(w, http.StatusOK, toDTO(*cat), c.logger)
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Delete(r.Context(), chi.URLParam(r, "categoryId")); err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, commons.SuccessResponse{
		Success: true,
		Message: "Category deleted",
	}, c.logger)
}

func (c *Controller) Routes(r chi.Router) {
	r.Get("/", c.HandleList)
	r.Post("/", c.HandleCreate)
	r.Get("/{categoryId}", c.HandleGet)
	r.Put("/{categoryId}", c.HandleUpdate)
	r.Delete("/{categoryId}", c.HandleDelete)
}
