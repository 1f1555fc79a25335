package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mkuznecov/northwind-api/internal/domain"
	"github.com/mkuznecov/northwind-api/internal/observability"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

type CustomerService interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	Orders(ctx context.Context, id int64) ([]domain.OrderLine, error)
	Create(ctx context.Context, c domain.NewCustomer) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type CatalogService interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	CategoryProducts(ctx context.Context, categoryID int64) ([]domain.Product, error)
	Products(ctx context.Context) ([]domain.Product, error)
	ProductsByCategory(ctx context.Context) ([]domain.ProductGroup, error)
	ProductBuyers(ctx context.Context, productID int64) ([]domain.CustomerRef, error)
}

type Server struct {
	customers CustomerService
	catalog   CatalogService
	logger    *zap.Logger
	metrics   observability.Metrics
	router    chi.Router
}

func New(customers CustomerService, catalog CatalogService, logger *zap.Logger, metrics observability.Metrics) *Server {
	s := &Server{
		customers: customers,
		catalog:   catalog,
		logger:    logger,
		metrics:   metrics,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		RequestLogger(s.logger, s.metrics),
	)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", s.listCustomers)
		r.Post("/", s.createCustomer)
		r.Get("/{id}", s.getCustomer)
		r.Delete("/{id}", s.deleteCustomer)
		r.Get("/{id}/orders", s.customerOrders)
	})

	r.Get("/categories", s.listCategories)
	r.Get("/categories/{id}/products", s.categoryProducts)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", s.listProducts)
		r.Get("/by-category", s.productsByCategory)
		r.Get("/{id}/customers", s.productBuyers)
	})

	s.router = r
}

func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs the server until ctx is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	return srv.ListenAndServe()
}

func (s *Server) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := s.customers.List(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

func (s *Server) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	c, err := s.customers.Get(r.Context(), id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) customerOrders(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	lines, err := s.customers.Orders(r.Context(), id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if lines == nil {
		lines = []domain.OrderLine{}
	}
	writeJSON(w, http.StatusOK, lines)
}

func (s *Server) createCustomer(w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var in domain.NewCustomer
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	trimCustomer(&in)
	if err := validateNewCustomer(in); err != nil {
		s.renderError(w, r, err)
		return
	}

	id, err := s.customers.Create(r.Context(), in)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"customerId": id})
}

func (s *Server) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if err := s.customers.Delete(r.Context(), id); err != nil {
		s.renderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.catalog.Categories(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if cats == nil {
		cats = []domain.Category{}
	}
	writeJSON(w, http.StatusOK, cats)
}

func (s *Server) categoryProducts(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	products, err := s.catalog.CategoryProducts(r.Context(), id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.Products(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) productsByCategory(w http.ResponseWriter, r *http.Request) {
	groups, err := s.catalog.ProductsByCategory(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if groups == nil {
		groups = []domain.ProductGroup{}
	}
	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) productBuyers(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	buyers, err := s.catalog.ProductBuyers(r.Context(), id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if buyers == nil {
		buyers = []domain.CustomerRef{}
	}
	writeJSON(w, http.StatusOK, buyers)
}

func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.FieldError{Field: name, Reason: "must be a positive integer"}
	}
	return id, nil
}

// renderError maps the domain error taxonomy to status codes. Internal
// detail is logged, never echoed to the client.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErr *domain.FieldError
	switch {
	case errors.As(err, &fieldErr):
		writeError(w, http.StatusBadRequest, fieldErr.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrHasOrders):
		writeError(w, http.StatusConflict, "customer has existing orders")
	case errors.Is(err, domain.ErrDeleteInProgress):
		writeError(w, http.StatusConflict, "delete already in progress")
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "timed out, try again")
	default:
		s.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "something went wrong, try again")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
