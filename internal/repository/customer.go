package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/bizsuite/loyalty/internal/model"
	"github.com/bizsuite/loyalty/pkg/db/transactor"
)

// CustomerRepository is data access layer for loyalty customers
type CustomerRepository interface {
	FindByID(context.Context, string) (*model.Customer, error)
	FindByIDForUpdate(context.Context, string) (*model.Customer, error)
	FindAll(context.Context) ([]*model.Customer, error)
	Create(context.Context, *model.Customer) error
	Update(context.Context, *model.Customer) error
	DeleteByID(context.Context, string) error
	CardNumberExists(context.Context, string) (bool, error)
}

type postgresCustomerRepository struct {
	trx transactor.PgxTransactor
}

// NewPostgresCustomerRepository builds pgx-backed CustomerRepository
func NewPostgresCustomerRepository(trx transactor.PgxTransactor) CustomerRepository {
	return &postgresCustomerRepository{trx: trx}
}

const customerColumns = "id, name, email, phone, points, level, card_number, card_color, text_color, join_date, last_activity, total_spent"

func (r *postgresCustomerRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	q := "SELECT " + customerColumns + " FROM customers WHERE id = $1"
	row := r.trx.Executor(ctx).QueryRow(ctx, q, id)
	return r.scanRow(row)
}

// FindByIDForUpdate locks the customer row for the duration of the
// surrounding transaction, serializing concurrent balance updates
func (r *postgresCustomerRepository) FindByIDForUpdate(ctx context.Context, id string) (*model.Customer, error) {
	q := "SELECT " + customerColumns + " FROM customers WHERE id = $1 FOR UPDATE"
	row := r.trx.Executor(ctx).QueryRow(ctx, q, id)
	return r.scanRow(row)
}

func (r *postgresCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	customers := make([]*model.Customer, 0)
	q := "SELECT " + customerColumns + " FROM customers ORDER BY join_date"

	rows, err := r.trx.Executor(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Points, &c.Level, &c.CardNumber,
			&c.CardColor, &c.TextColor, &c.JoinDate, &c.LastActivity, &c.TotalSpent); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *postgresCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	q := `INSERT INTO customers(id, name, email, phone, points, level, card_number, card_color, text_color, join_date, last_activity, total_spent)
			   VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.trx.Executor(ctx).Exec(ctx, q, c.ID, c.Name, c.Email, c.Phone, c.Points, c.Level, c.CardNumber,
		c.CardColor, c.TextColor, c.JoinDate, c.LastActivity, c.TotalSpent)
	return err
}

func (r *postgresCustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	q := `UPDATE customers SET name = $1, email = $2, phone = $3, points = $4, level = $5,
			     card_color = $6, text_color = $7, last_activity = $8, total_spent = $9
		   WHERE id = $10`
	_, err := r.trx.Executor(ctx).Exec(ctx, q, c.Name, c.Email, c.Phone, c.Points, c.Level,
		c.CardColor, c.TextColor, c.LastActivity, c.TotalSpent, c.ID)
	return err
}

func (r *postgresCustomerRepository) DeleteByID(ctx context.Context, id string) error {
	q := "DELETE FROM customers WHERE id = $1"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, id); err != nil {
		return err
	}
	return nil
}

func (r *postgresCustomerRepository) CardNumberExists(ctx context.Context, cardNumber string) (bool, error) {
	var exists bool
	q := "SELECT EXISTS(SELECT 1 FROM customers WHERE card_number = $1)"
	if err := r.trx.Executor(ctx).QueryRow(ctx, q, cardNumber).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresCustomerRepository) scanRow(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Points, &c.Level, &c.CardNumber,
		&c.CardColor, &c.TextColor, &c.JoinDate, &c.LastActivity, &c.TotalSpent); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
