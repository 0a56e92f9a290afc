package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"meatshop/internal/admin"
	"meatshop/internal/category"
	"meatshop/internal/commons"
	apperrors "meatshop/internal/errors"
	ordercontroller "meatshop/internal/order/controller"
	"meatshop/internal/product"
	"meatshop/internal/serviceability"
	"meatshop/internal/stats"
	"meatshop/internal/upload"
)

const welcomeMessage = "Fresh Meat Hub API - Welcome!"

type Controllers struct {
	Serviceability *serviceability.Controller
	Admin          *admin.Controller
	Products       *product.Controller
	Categories     *category.Controller
	Orders         *ordercontroller.OrderController
	Stats          *stats.Controller
	Upload         *upload.Controller
}

func NewRouter(c Controllers, corsOrigins []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		commons.WriteError(w, apperrors.NewNotFoundError("Route not found"), logger)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		commons.WriteError(w, apperrors.NewMethodNotAllowedError("Method not allowed"), logger)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			commons.WriteJSON(w, http.StatusOK, map[string]string{"message": welcomeMessage}, logger)
		})

		r.Post("/check-pincode", c.Serviceability.HandleCheckPincode)
		r.Post("/admin/verify", c.Admin.HandleVerify)
		r.Post("/upload-image", c.Upload.HandleUpload)
		r.Get("/stats", c.Stats.HandleStats)

		r.Route("/products", c.Products.Routes)
		r.Route("/categories", c.Categories.Routes)
		r.Route("/orders", c.Orders.Routes)
	})

	return r
}

// requestLogger logs one line per request after the handler returns.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				logger.Info("request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("requestId", middleware.GetReqID(r.Context())),
					zap.String("remoteAddr", r.RemoteAddr),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
