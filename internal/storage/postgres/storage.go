package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/chowdhry/storefront/internal/domain/errors"
	"github.com/chowdhry/storefront/internal/domain/model"
	"github.com/chowdhry/storefront/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on, kept as
// an interface so tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
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

type userRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type failedOrderRepository struct {
	storage *Storage
}

type addressRepository struct {
	storage *Storage
}

type inventoryRepository struct {
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
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) FailedOrders() repository.FailedOrderRepository {
	return &failedOrderRepository{storage: s}
}

func (s *Storage) Addresses() repository.AddressRepository {
	return &addressRepository{storage: s}
}

func (s *Storage) Inventory() repository.InventoryRepository {
	return &inventoryRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS addresses (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL,
            address_type TEXT NOT NULL,
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            street TEXT NOT NULL,
            apartment TEXT NOT NULL DEFAULT '',
            city TEXT NOT NULL,
            state TEXT NOT NULL,
            postcode TEXT NOT NULL,
            email TEXT NOT NULL,
            phone TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            user_id BIGINT NOT NULL,
            customer_name TEXT NOT NULL,
            customer_email TEXT NOT NULL,
            customer_phone TEXT NOT NULL,
            address_id BIGINT NOT NULL,
            subtotal BIGINT NOT NULL,
            tax BIGINT NOT NULL,
            shipping_total BIGINT NOT NULL,
            total_amount BIGINT NOT NULL,
            distance DOUBLE PRECISION NOT NULL DEFAULT 0,
            total_weight DOUBLE PRECISION NOT NULL DEFAULT 0,
            provider TEXT NOT NULL,
            status TEXT NOT NULL,
            payment_status TEXT NOT NULL,
            delivery_status TEXT NOT NULL,
            waybill TEXT NOT NULL DEFAULT '',
            shipping_pincode TEXT NOT NULL DEFAULT '',
            gateway_order_id TEXT NOT NULL DEFAULT '',
            order_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            confirmed_at TIMESTAMPTZ,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id TEXT NOT NULL REFERENCES orders(id),
            item_id TEXT NOT NULL,
            name TEXT NOT NULL,
            quantity INT NOT NULL,
            unit_price BIGINT NOT NULL,
            weight DOUBLE PRECISION NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS payment_transactions (
            id SERIAL PRIMARY KEY,
            order_id TEXT NOT NULL REFERENCES orders(id),
            payment_id TEXT NOT NULL DEFAULT '',
            amount BIGINT NOT NULL,
            method TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL,
            signature_verified BOOLEAN NOT NULL DEFAULT FALSE,
            error_code TEXT NOT NULL DEFAULT '',
            error_description TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS failed_orders (
            id SERIAL PRIMARY KEY,
            order_id TEXT UNIQUE NOT NULL,
            customer_name TEXT NOT NULL,
            customer_email TEXT NOT NULL,
            customer_phone TEXT NOT NULL,
            items_summary TEXT NOT NULL,
            subtotal BIGINT NOT NULL,
            tax BIGINT NOT NULL,
            shipping_total BIGINT NOT NULL,
            total_amount BIGINT NOT NULL,
            error_message TEXT NOT NULL,
            order_date TIMESTAMPTZ NOT NULL,
            recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS inventory (
            sku TEXT PRIMARY KEY,
            stock INT NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS stock_decrements (
            order_id TEXT PRIMARY KEY,
            applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_date ON orders(order_date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_dispatch ON orders(provider, status, payment_status) WHERE waybill = ''`,
		`CREATE INDEX IF NOT EXISTS idx_addresses_user ON addresses(user_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, created_at FROM users WHERE login=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, user_id, customer_name, customer_email, customer_phone, address_id,
    subtotal, tax, shipping_total, total_amount, distance, total_weight,
    provider, status, payment_status, delivery_status, waybill, shipping_pincode,
    gateway_order_id, order_date, confirmed_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.AddressID,
		&o.Subtotal, &o.Tax, &o.ShippingTotal, &o.TotalAmount, &o.Distance, &o.TotalWeight,
		&o.Provider, &o.Status, &o.PaymentStatus, &o.DeliveryStatus, &o.Waybill, &o.ShippingPincode,
		&o.GatewayOrderID, &o.OrderDate, &o.ConfirmedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders
            (id, user_id, customer_name, customer_email, customer_phone, address_id,
             subtotal, tax, shipping_total, total_amount, distance, total_weight,
             provider, status, payment_status, delivery_status, waybill, shipping_pincode,
             gateway_order_id, order_date)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)`
		_, err := tx.Exec(ctx, insertOrder,
			order.ID, order.UserID, order.CustomerName, order.CustomerEmail, order.CustomerPhone, order.AddressID,
			order.Subtotal, order.Tax, order.ShippingTotal, order.TotalAmount, order.Distance, order.TotalWeight,
			order.Provider, order.Status, order.PaymentStatus, order.DeliveryStatus, order.Waybill, order.ShippingPincode,
			order.GatewayOrderID, order.OrderDate)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, item_id, name, quantity, unit_price, weight)
            VALUES ($1,$2,$3,$4,$5,$6)`
		for _, item := range order.Items {
			if _, err := tx.Exec(ctx, insertItem, order.ID, item.ItemID, item.Name, item.Quantity, item.UnitPrice, item.Weight); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	if err := r.loadItems(ctx, []*model.Order{order}); err != nil {
		return nil, err
	}
	if err := r.loadTransactions(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context, page, size int) ([]model.Order, repository.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}

	var total int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, repository.Pagination{}, err
	}

	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY order_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, size, (page-1)*size)
	if err != nil {
		return nil, repository.Pagination{}, err
	}
	defer rows.Close()

	var orders []*model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, repository.Pagination{}, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Pagination{}, err
	}

	if err := r.loadItems(ctx, orders); err != nil {
		return nil, repository.Pagination{}, err
	}

	result := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, *o)
	}

	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	return result, repository.Pagination{Page: page, Size: size, Total: total, Pages: pages}, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orders []*model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, 0, len(orders))
	byID := make(map[string]*model.Order, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
	}

	const query = `SELECT order_id, item_id, name, quantity, unit_price, weight
        FROM order_items WHERE order_id = ANY($1) ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var item model.OrderItem
		if err := rows.Scan(&orderID, &item.ItemID, &item.Name, &item.Quantity, &item.UnitPrice, &item.Weight); err != nil {
			return err
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	return rows.Err()
}

func (r *orderRepository) loadTransactions(ctx context.Context, order *model.Order) error {
	const query = `SELECT id, payment_id, amount, method, status, signature_verified, error_code, error_description, created_at
        FROM payment_transactions WHERE order_id=$1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, order.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		txn := model.PaymentTransaction{OrderID: order.ID}
		if err := rows.Scan(&txn.ID, &txn.PaymentID, &txn.Amount, &txn.Method, &txn.Status,
			&txn.SignatureVerified, &txn.ErrorCode, &txn.ErrorDescription, &txn.CreatedAt); err != nil {
			return err
		}
		order.Transactions = append(order.Transactions, txn)
	}
	return rows.Err()
}

func (r *orderRepository) Update(ctx context.Context, orderID string, upd repository.OrderUpdate) error {
	sets := []string{"updated_at=NOW()"}
	args := []any{}
	arg := 1

	appendSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s=$%d", column, arg))
		args = append(args, value)
		arg++
	}

	if upd.Status != nil {
		appendSet("status", *upd.Status)
	}
	if upd.PaymentStatus != nil {
		appendSet("payment_status", *upd.PaymentStatus)
	}
	if upd.DeliveryStatus != nil {
		appendSet("delivery_status", *upd.DeliveryStatus)
	}
	if upd.Waybill != nil {
		appendSet("waybill", *upd.Waybill)
	}
	if upd.ConfirmedAt != nil {
		appendSet("confirmed_at", *upd.ConfirmedAt)
	}

	query := fmt.Sprintf("UPDATE orders SET %s WHERE id=$%d", strings.Join(sets, ", "), arg)
	args = append(args, orderID)

	tag, err := r.storage.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) AppendTransaction(ctx context.Context, orderID string, txn model.PaymentTransaction) error {
	const query = `INSERT INTO payment_transactions
        (order_id, payment_id, amount, method, status, signature_verified, error_code, error_description, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	_, err := r.storage.pool.Exec(ctx, query, orderID, txn.PaymentID, txn.Amount, txn.Method,
		txn.Status, txn.SignatureVerified, txn.ErrorCode, txn.ErrorDescription, txn.CreatedAt)
	return err
}

func (r *orderRepository) SelectBatchForDispatch(ctx context.Context, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
        WHERE provider='DELHIVERY' AND status='confirmed' AND payment_status='paid' AND waybill=''
        ORDER BY order_date
        LIMIT $1`
	return r.selectBatch(ctx, query, limit)
}

func (r *orderRepository) SelectBatchForTracking(ctx context.Context, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
        WHERE waybill<>'' AND delivery_status NOT IN ('DELIVERED', 'RTO')
        ORDER BY updated_at
        LIMIT $1`
	return r.selectBatch(ctx, query, limit)
}

func (r *orderRepository) selectBatch(ctx context.Context, query string, limit int) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}

	result := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, *o)
	}
	return result, nil
}

// --- FailedOrderRepository implementation ---

func (r *failedOrderRepository) Upsert(ctx context.Context, failed *model.FailedOrder) error {
	const query = `INSERT INTO failed_orders
        (order_id, customer_name, customer_email, customer_phone, items_summary,
         subtotal, tax, shipping_total, total_amount, error_message, order_date, recorded_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        ON CONFLICT (order_id) DO UPDATE
        SET error_message = EXCLUDED.error_message,
            recorded_at = EXCLUDED.recorded_at`
	_, err := r.storage.pool.Exec(ctx, query,
		failed.OrderID, failed.CustomerName, failed.CustomerEmail, failed.CustomerPhone, failed.ItemsSummary,
		failed.Subtotal, failed.Tax, failed.ShippingTotal, failed.TotalAmount, failed.ErrorMessage,
		failed.OrderDate, failed.RecordedAt)
	return err
}

func (r *failedOrderRepository) List(ctx context.Context, page, size int) ([]model.FailedOrder, repository.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}

	var total int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM failed_orders`).Scan(&total); err != nil {
		return nil, repository.Pagination{}, err
	}

	const query = `SELECT id, order_id, customer_name, customer_email, customer_phone, items_summary,
        subtotal, tax, shipping_total, total_amount, error_message, order_date, recorded_at
        FROM failed_orders ORDER BY recorded_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, size, (page-1)*size)
	if err != nil {
		return nil, repository.Pagination{}, err
	}
	defer rows.Close()

	var result []model.FailedOrder
	for rows.Next() {
		var f model.FailedOrder
		if err := rows.Scan(&f.ID, &f.OrderID, &f.CustomerName, &f.CustomerEmail, &f.CustomerPhone, &f.ItemsSummary,
			&f.Subtotal, &f.Tax, &f.ShippingTotal, &f.TotalAmount, &f.ErrorMessage, &f.OrderDate, &f.RecordedAt); err != nil {
			return nil, repository.Pagination{}, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Pagination{}, err
	}

	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	return result, repository.Pagination{Page: page, Size: size, Total: total, Pages: pages}, nil
}

func (r *failedOrderRepository) Clean(ctx context.Context) (int64, error) {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM failed_orders`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// --- AddressRepository implementation ---

func (r *addressRepository) Create(ctx context.Context, addr *model.Address) (*model.Address, error) {
	const query = `INSERT INTO addresses
        (user_id, address_type, first_name, last_name, street, apartment, city, state, postcode, email, phone)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at`
	stored := *addr
	err := r.storage.pool.QueryRow(ctx, query,
		addr.UserID, addr.AddressType, addr.FirstName, addr.LastName, addr.Street, addr.Apartment,
		addr.City, addr.State, addr.Postcode, addr.Email, addr.Phone).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	const query = `SELECT id, user_id, address_type, first_name, last_name, street, apartment,
        city, state, postcode, email, phone, created_at
        FROM addresses WHERE user_id=$1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Address
	for rows.Next() {
		var a model.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.AddressType, &a.FirstName, &a.LastName, &a.Street, &a.Apartment,
			&a.City, &a.State, &a.Postcode, &a.Email, &a.Phone, &a.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- InventoryRepository implementation ---

// DecrementStock applies the order's quantities to the inventory exactly
// once. A guard row keyed by order id makes retries no-ops, so callers
// can safely invoke this again after a partial failure.
func (r *inventoryRepository) DecrementStock(ctx context.Context, orderID string, items []model.OrderItem) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const guard = `INSERT INTO stock_decrements (order_id) VALUES ($1) ON CONFLICT (order_id) DO NOTHING`
		tag, err := tx.Exec(ctx, guard, orderID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		const decrement = `UPDATE inventory SET stock = GREATEST(stock - $1, 0) WHERE sku = $2`
		for _, item := range items {
			if _, err := tx.Exec(ctx, decrement, item.Quantity, item.ItemID); err != nil {
				return err
			}
		}
		return nil
	})
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
