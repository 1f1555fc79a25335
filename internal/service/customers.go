package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/mkuznecov/northwind-api/internal/domain"
	"github.com/mkuznecov/northwind-api/internal/observability"
	"github.com/mkuznecov/northwind-api/internal/pkg/breaker"
)

//go:generate mockgen -source internal/service/customers.go -destination=internal/service/customers_mock_test.go -package=service

type CustomerStore interface {
	List(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Orders(ctx context.Context, id int64) ([]domain.OrderLine, error)
	Create(ctx context.Context, c domain.NewCustomer) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type Guard interface {
	TryAcquire(id int64) bool
	Release(id int64)
}

type Publisher interface {
	CustomerCreated(ctx context.Context, id int64) error
	CustomerDeleted(ctx context.Context, id int64) error
}

type Customers struct {
	store         CustomerStore
	guard         Guard
	events        Publisher
	brk           *breaker.Breaker
	logger        *zap.Logger
	metrics       observability.Metrics
	deleteTimeout time.Duration
}

func NewCustomers(
	store CustomerStore,
	guard Guard,
	events Publisher,
	brk *breaker.Breaker,
	logger *zap.Logger,
	metrics observability.Metrics,
	deleteTimeout time.Duration,
) *Customers {
	if deleteTimeout <= 0 {
		deleteTimeout = 5 * time.Second
	}
	return &Customers{
		store:         store,
		guard:         guard,
		events:        events,
		brk:           brk,
		logger:        logger,
		metrics:       metrics,
		deleteTimeout: deleteTimeout,
	}
}

func (s *Customers) List(ctx context.Context) ([]domain.Customer, error) {
	if err := s.brk.Allow(); err != nil {
		return nil, err
	}
	t0 := time.Now()
	out, err := s.store.List(ctx)
	s.finish("list_customers", t0, err)
	return out, err
}

func (s *Customers) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	if err := s.brk.Allow(); err != nil {
		return nil, err
	}
	t0 := time.Now()
	c, err := s.store.GetByID(ctx, id)
	s.finish("get_customer", t0, err)
	return c, err
}

func (s *Customers) Orders(ctx context.Context, id int64) ([]domain.OrderLine, error) {
	if err := s.brk.Allow(); err != nil {
		return nil, err
	}
	t0 := time.Now()
	out, err := s.store.Orders(ctx, id)
	s.finish("customer_orders", t0, err)
	return out, err
}

func (s *Customers) Create(ctx context.Context, c domain.NewCustomer) (int64, error) {
	if err := s.brk.Allow(); err != nil {
		return 0, err
	}
	t0 := time.Now()
	id, err := s.store.Create(ctx, c)
	s.finish("create_customer", t0, err)
	if err != nil {
		s.logger.Error("create customer", zap.Error(err))
		return 0, err
	}

	if perr := s.events.CustomerCreated(ctx, id); perr != nil {
		s.logger.Warn("customer.created not published", zap.Int64("customer_id", id), zap.Error(perr))
	}
	s.logger.Info("customer created",
		zap.Int64("customer_id", id),
		zap.String("customer_name", c.CustomerName),
	)
	return id, nil
}

// Delete first claims the single-flight guard, then runs the
// transactional check-then-delete with its own deadline. The guard is
// released on every path; the deferred release also covers panics in
// the store.
func (s *Customers) Delete(ctx context.Context, id int64) error {
	if !s.guard.TryAcquire(id) {
		s.metrics.ObserveDelete("in_progress")
		return domain.ErrDeleteInProgress
	}
	defer s.guard.Release(id)

	if err := s.brk.Allow(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.deleteTimeout)
	defer cancel()

	t0 := time.Now()
	err := s.store.Delete(ctx, id)
	s.finish("delete_customer", t0, err)

	switch {
	case err == nil:
		s.metrics.ObserveDelete("ok")
		if perr := s.events.CustomerDeleted(context.WithoutCancel(ctx), id); perr != nil {
			s.logger.Warn("customer.deleted not published", zap.Int64("customer_id", id), zap.Error(perr))
		}
		s.logger.Info("customer deleted", zap.Int64("customer_id", id))
		return nil
	case errors.Is(err, domain.ErrHasOrders):
		s.metrics.ObserveDelete("has_orders")
		return err
	case errors.Is(err, domain.ErrNotFound):
		s.metrics.ObserveDelete("not_found")
		return err
	default:
		s.metrics.ObserveDelete("error")
		s.logger.Error("delete customer", zap.Int64("customer_id", id), zap.Error(err))
		return err
	}
}

// finish records the query outcome and feeds the breaker. Business
// outcomes (not found, has orders) are not store failures.
func (s *Customers) finish(op string, t0 time.Time, err error) {
	failed := err != nil && !isBusiness(err)
	s.metrics.ObserveQuery(op, msSince(t0), failed)
	if failed {
		s.brk.Failure()
	} else {
		s.brk.Success()
	}
}

func isBusiness(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrHasOrders)
}

func msSince(t0 time.Time) float64 {
	return float64(time.Since(t0).Microseconds()) / 1000.0
}
