package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/eshopcore/backoffice/internal/domain/errors"
	"github.com/eshopcore/backoffice/internal/domain/model"
	"github.com/eshopcore/backoffice/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage uses; mock pools
// implement it in tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type refundRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Refunds() repository.RefundRepository {
	return &refundRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            total DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (total >= 0),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS refunds (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            reason TEXT NOT NULL DEFAULT '',
            amount DOUBLE PRECISION NOT NULL CHECK (amount >= 0),
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_refunds_order ON refunds(order_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_refunds_status ON refunds(status)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, total float64) (*model.Order, error) {
	const query = `INSERT INTO orders (total) VALUES ($1) RETURNING id, created_at`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, total).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	o.Total = total
	return &o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, total, created_at FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.Total, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// --- RefundRepository implementation ---

const refundColumns = `id, order_id, reason, amount, status, created_at, updated_at`

func scanRefund(row pgx.Row) (*model.Refund, error) {
	var ref model.Refund
	err := row.Scan(&ref.ID, &ref.OrderID, &ref.Reason, &ref.Amount, &ref.Status, &ref.CreatedAt, &ref.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &ref, nil
}

func (r *refundRepository) Create(ctx context.Context, params repository.CreateRefundParams) (*model.Refund, error) {
	const query = `INSERT INTO refunds (order_id, reason, amount, status)
                   VALUES ($1, $2, $3, $4)
                   RETURNING ` + refundColumns
	return scanRefund(r.storage.pool.QueryRow(ctx, query, params.OrderID, params.Reason, params.Amount, params.Status))
}

func (r *refundRepository) GetByID(ctx context.Context, id int64) (*model.Refund, error) {
	const query = `SELECT ` + refundColumns + ` FROM refunds WHERE id=$1`
	return scanRefund(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *refundRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.Refund, error) {
	const query = `SELECT ` + refundColumns + ` FROM refunds WHERE order_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, orderID)
}

func (r *refundRepository) ListByStatus(ctx context.Context, status model.RefundStatus) ([]model.Refund, error) {
	const query = `SELECT ` + refundColumns + ` FROM refunds WHERE status=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, status)
}

func (r *refundRepository) list(ctx context.Context, query string, arg any) ([]model.Refund, error) {
	rows, err := r.storage.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Refund
	for rows.Next() {
		var ref model.Refund
		if err := rows.Scan(&ref.ID, &ref.OrderID, &ref.Reason, &ref.Amount, &ref.Status, &ref.CreatedAt, &ref.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *refundRepository) Update(ctx context.Context, id int64, update repository.RefundUpdate) (*model.Refund, error) {
	const query = `UPDATE refunds
                   SET reason=COALESCE($1, reason),
                       amount=COALESCE($2, amount),
                       status=COALESCE($3, status),
                       updated_at=NOW()
                   WHERE id=$4
                   RETURNING ` + refundColumns
	return scanRefund(r.storage.pool.QueryRow(ctx, query, update.Reason, update.Amount, update.Status, id))
}

func (r *refundRepository) SetStatus(ctx context.Context, id int64, status model.RefundStatus) (*model.Refund, error) {
	const query = `UPDATE refunds SET status=$1, updated_at=NOW() WHERE id=$2 RETURNING ` + refundColumns
	return scanRefund(r.storage.pool.QueryRow(ctx, query, status, id))
}

func (r *refundRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM refunds WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *refundRepository) TotalByOrder(ctx context.Context, orderID int64) (float64, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM refunds WHERE order_id=$1`
	var total float64
	if err := r.storage.pool.QueryRow(ctx, query, orderID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
