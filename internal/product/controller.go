package product

import (
	"net/http"

	"meatshop/internal/commons"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	resp := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		resp = append(resp, toDTO(p))
	}

	commons.WriteJSON(w, http.StatusOK, resp, c.logger)
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := c.service.Get(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, toDTO(*p), c.logger)
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := commons.DecodeJSON(w, r, &req); err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	if err := commons.Validate(req); err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	p, err := c.service.Create(r.Context(), req.toDomain())
	if err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	c.logger.Info("product created", zap.String("productId", p.ID), zap.String("category", p.Category))
	commons.WriteJSON(w, http.StatusOK, toDTO(*p), c.logger)
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if err := commons.DecodeJSON(w, r, &req); err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	if err := commons.Validate(req); err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	p, err := c.service.Update(r.Context(), chi.URLParam(r, "productId"), req.toPatch())
	if err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, toDTO(*p), c.logger)
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productId")
	if err := c.service.Delete(r.Context(), id); err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	c.logger.Info("product deleted", zap.String("productId", id))
	commons.WriteJSON(w, http.StatusOK, commons.SuccessResponse{
		Success: true,
		Message: "Product deleted",
	}, c.logger)
}

// Routes mounts the catalog endpoints on r.
func (c *Controller) Routes(r chi.Router) {
	r.Get("/", c.HandleList)
	r.Post("/", c.HandleCreate)
	r.Get("/{productId}", c.HandleGet)
	r.Put("/{productId}", c.HandleUpdate)
	r.Delete("/{productId}", c.HandleDelete)
}
