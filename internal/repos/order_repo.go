package repos

import (
	"github.com/jmoiron/sqlx"

	"webshop/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) List() ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Select(&out, `SELECT id, product_id, quantity, total_price FROM orders`)
	return out, err
}

func (r *OrderRepo) Get(id int64) (domain.Order, error) {
	var o domain.Order
	err := r.db.Get(&o, `SELECT id, product_id, quantity, total_price FROM orders WHERE id = ?`, id)
	return o, err
}

func (r *OrderRepo) Create(productID int64, quantity int, totalPrice float64) (domain.Order, error) {
	res, err := r.db.Exec(`
	  INSERT INTO orders(product_id, quantity, total_price) VALUES(?, ?, ?)
	`, productID, quantity, totalPrice)
	if err != nil {
		return domain.Order{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Order{}, err
	}
	return r.Get(id)
}
