// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package order

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/urugowoc/urugo/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Orders

const orderColumns = `
	o.id, o.user_id, o.status, o.total_price, o.created_at, o.updated_at,
	a.id, a.email, a.first_name, a.last_name`

const orderFrom = `
	FROM commerce.purchase_order o
	JOIN users.account a ON a.id = o.user_id`

func scanOrder(row pgx.Row) (*Order, error) {
	order := &Order{}
	purchaser := &Purchaser{}

	err := row.Scan(
		&order.ID, &order.UserID, &order.Status, &order.TotalPrice,
		&order.CreatedAt, &order.UpdatedAt,
		&purchaser.ID, &purchaser.Email, &purchaser.FirstName, &purchaser.LastName,
	)
	if err != nil {
		return nil, err
	}

	order.User = purchaser
	return order, nil
}

func (repository *PostgresRepository) ListOrders(context context.Context, f OrderFilter, limit, offset int) ([]*Order, int, error) {
	query := `SELECT ` + orderColumns + orderFrom + ` WHERE TRUE`
	countQuery := `SELECT count(*) FROM commerce.purchase_order o WHERE TRUE`

	args := []any{}
	countArgs := []any{}

	addClause := func(clause string, value any) {
		placeholder := `$` + strconv.Itoa(len(args)+1)
		query += ` AND ` + clause + ` ` + placeholder
		countQuery += ` AND ` + clause + ` ` + placeholder
		args = append(args, value)
		countArgs = append(countArgs, value)
	}

	if f.Status != "" {
		addClause(`o.status =`, f.Status)
	}
	if f.UserID != "" {
		addClause(`o.user_id =`, f.UserID)
	}

	query += ` ORDER BY o.created_at ASC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_orders")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_orders")
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_order")
		}
		orders = append(orders, order)
	}

	return orders, total, nil
}

// GetOrder loads the order together with its line items.
func (repository *PostgresRepository) GetOrder(context context.Context, id int) (*Order, error) {
	query := `SELECT ` + orderColumns + orderFrom + ` WHERE o.id = $1`

	order, err := scanOrder(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_order")
	}

	const itemsQuery = `
		SELECT id, order_id, listing_id, quantity, price, created_at
		FROM commerce.order_item
		WHERE order_id = $1
		ORDER BY id ASC`

	rows, err := repository.db.Query(context, itemsQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "list_order_items")
	}
	defer rows.Close()

	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ListingID, &item.Quantity, &item.Price, &item.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_order_item")
		}
		order.Items = append(order.Items, item)
	}

	return order, nil
}

func (repository *PostgresRepository) CreateOrder(context context.Context, order *Order) error {
	const query = `
		INSERT INTO commerce.purchase_order (user_id, status, total_price, created_at, updated_at)
		VALUES ($1, $2, 0, NOW(), NOW())
		RETURNING id, total_price, created_at, updated_at`

	err := repository.db.QueryRow(context, query, order.UserID, order.Status).
		Scan(&order.ID, &order.TotalPrice, &order.CreatedAt, &order.UpdatedAt)
	return dberr.Wrap(err, "create_order")
}

func (repository *PostgresRepository) UpdateOrder(context context.Context, order *Order) error {
	const query = `
		UPDATE commerce.purchase_order
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING total_price, updated_at`

	err := repository.db.QueryRow(context, query, order.ID, order.Status).
		Scan(&order.TotalPrice, &order.UpdatedAt)
	return dberr.Wrap(err, "update_order")
}

func (repository *PostgresRepository) DeleteOrder(context context.Context, id int) error {
	const query = `DELETE FROM commerce.purchase_order WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_order")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Items
//
// Item writes run in a transaction so the parent order's total_price is
// always consistent with its lines.

func (repository *PostgresRepository) ListItems(context context.Context, f ItemFilter, limit, offset int) ([]*Item, int, error) {
	query := `
		SELECT id, order_id, listing_id, quantity, price, created_at
		FROM commerce.order_item
		WHERE TRUE`
	countQuery := `SELECT count(*) FROM commerce.order_item WHERE TRUE`

	args := []any{}
	countArgs := []any{}

	addClause := func(clause string, value any) {
		placeholder := `$` + strconv.Itoa(len(args)+1)
		query += ` AND ` + clause + ` ` + placeholder
		countQuery += ` AND ` + clause + ` ` + placeholder
		args = append(args, value)
		countArgs = append(countArgs, value)
	}

	if f.OrderID != nil {
		addClause(`order_id =`, *f.OrderID)
	}
	if f.ListingID != nil {
		addClause(`listing_id =`, *f.ListingID)
	}

	query += ` ORDER BY id ASC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_order_items")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_order_items")
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ListingID, &item.Quantity, &item.Price, &item.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_order_item")
		}
		items = append(items, item)
	}

	return items, total, nil
}

func (repository *PostgresRepository) GetItem(context context.Context, id int) (*Item, error) {
	const query = `
		SELECT id, order_id, listing_id, quantity, price, created_at
		FROM commerce.order_item
		WHERE id = $1`

	item := &Item{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&item.ID, &item.OrderID, &item.ListingID, &item.Quantity, &item.Price, &item.CreatedAt,
	)

	return item, dberr.Wrap(err, "get_order_item")
}

// CreateItem snapshots the listing's current unit price, inserts the line and
// adds the line total to the parent order.
func (repository *PostgresRepository) CreateItem(context context.Context, item *Item) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_order_item")
	}
	defer tx.Rollback(context)

	const priceQuery = `SELECT price FROM commerce.listing WHERE id = $1`
	if err := tx.QueryRow(context, priceQuery, item.ListingID).Scan(&item.Price); err != nil {
		return dberr.Wrap(err, "snapshot_listing_price")
	}

	const insertQuery = `
		INSERT INTO commerce.order_item (order_id, listing_id, quantity, price, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at`

	err = tx.QueryRow(context, insertQuery, item.OrderID, item.ListingID, item.Quantity, item.Price).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_order_item")
	}

	const totalQuery = `
		UPDATE commerce.purchase_order
		SET total_price = total_price + $2, updated_at = NOW()
		WHERE id = $1`

	if _, err := tx.Exec(context, totalQuery, item.OrderID, item.Price*float64(item.Quantity)); err != nil {
		return dberr.Wrap(err, "update_order_total")
	}

	return dberr.Wrap(tx.Commit(context), "commit_create_order_item")
}

// UpdateItem changes the quantity of a line and adjusts the parent order's
// total by the difference.
func (repository *PostgresRepository) UpdateItem(context context.Context, item *Item) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_order_item")
	}
	defer tx.Rollback(context)

	previous := &Item{}
	const currentQuery = `
		SELECT order_id, listing_id, quantity, price
		FROM commerce.order_item
		WHERE id = $1
		FOR UPDATE`

	err = tx.QueryRow(context, currentQuery, item.ID).
		Scan(&previous.OrderID, &previous.ListingID, &previous.Quantity, &previous.Price)
	if err != nil {
		return dberr.Wrap(err, "get_order_item")
	}

	item.OrderID = previous.OrderID
	item.ListingID = previous.ListingID
	item.Price = previous.Price

	const updateQuery = `UPDATE commerce.order_item SET quantity = $2 WHERE id = $1`
	if _, err := tx.Exec(context, updateQuery, item.ID, item.Quantity); err != nil {
		return dberr.Wrap(err, "update_order_item")
	}

	delta := item.Price * float64(item.Quantity-previous.Quantity)
	const totalQuery = `
		UPDATE commerce.purchase_order
		SET total_price = total_price + $2, updated_at = NOW()
		WHERE id = $1`

	if _, err := tx.Exec(context, totalQuery, item.OrderID, delta); err != nil {
		return dberr.Wrap(err, "update_order_total")
	}

	return dberr.Wrap(tx.Commit(context), "commit_update_order_item")
}

// DeleteItem removes a line and subtracts its total from the parent order.
func (repository *PostgresRepository) DeleteItem(context context.Context, id int) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_order_item")
	}
	defer tx.Rollback(context)

	const deleteQuery = `
		DELETE FROM commerce.order_item
		WHERE id = $1
		RETURNING order_id, quantity, price`

	var orderID, quantity int
	var price float64
	err = tx.QueryRow(context, deleteQuery, id).Scan(&orderID, &quantity, &price)
	if err != nil {
		return dberr.Wrap(err, "delete_order_item")
	}

	const totalQuery = `
		UPDATE commerce.purchase_order
		SET total_price = total_price - $2, updated_at = NOW()
		WHERE id = $1`

	if _, err := tx.Exec(context, totalQuery, orderID, price*float64(quantity)); err != nil {
		return dberr.Wrap(err, "update_order_total")
	}

	return dberr.Wrap(tx.Commit(context), "commit_delete_order_item")
}
