// Package catalogtest is an in-process stand-in for the public product
// catalog. It serves a fixed seed catalog with the upstream's documented
// quirks so the suites can run without network access. Creation, update and
// deletion are simulated the way upstream simulates them: nothing is stored.
package catalogtest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/otel"

	apicontract "github.com/tuanvumaihuynh/catalog-e2e/api-contract"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/catalogtest/middleware"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
)

var tracer = otel.Tracer("internal/catalogtest")

// ContractPath serves the OpenAPI document the stand-in conforms to.
const ContractPath = "/docs/openapi.yml"

// Server holds the seed catalog. It is read-only after New and safe for
// concurrent use.
type Server struct {
	logger     *slog.Logger
	products   []model.Product
	byID       map[int]model.Product
	categories []model.Category
}

func New(logger *slog.Logger) *Server {
	products := seedProducts()
	byID := make(map[int]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return &Server{
		logger:     logger.With(slog.String("service", "catalog-stand-in")),
		products:   products,
		byID:       byID,
		categories: seedCategories(products),
	}
}

// Products returns a copy of the seed catalog in id order.
func (s *Server) Products() []model.Product {
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Start serves the stand-in on a loopback port until the returned server is
// closed.
func (s *Server) Start() *httptest.Server {
	return httptest.NewServer(s.Handler())
}

// Handler returns the routed stand-in.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)
	s.RegisterHandlers(r)
	return r
}

func (s *Server) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"*"},
			MaxAge:         300,
		}),
		middleware.Logging(s.logger),
	)
}

func (s *Server) RegisterHandlers(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", s.listProducts)
		r.Get("/search", s.searchProducts)
		r.Get("/categories", s.listCategories)
		r.Get("/category-list", s.listCategorySlugs)
		r.Get("/category/{slug}", s.listProductsByCategory)
		r.Post("/add", s.addProduct)
		r.Get("/{id}", s.getProduct)
		r.Put("/{id}", s.updateProduct)
		r.Patch("/{id}", s.updateProduct)
		r.Delete("/{id}", s.deleteProduct)
	})

	specBytes := apicontract.GetSpecBytes()
	r.Get(ContractPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		w.Write(specBytes)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, http.StatusNotFound, "Route not found")
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding response", slog.Any("error", err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.writeJSON(w, r, status, model.ErrorResponse{Message: msg})
}
