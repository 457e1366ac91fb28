package repos

import (
	"github.com/jmoiron/sqlx"

	"webshop/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, COALESCE(name,'') AS name, COALESCE(raw_image_arr,'[]') AS raw_image_arr,
  COALESCE(description,'') AS description, COALESCE(price,0) AS price`

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products`)
	return out, err
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

func (r *ProductRepo) Create(p domain.Product) (domain.Product, error) {
	res, err := r.db.Exec(`
	  INSERT INTO products(name, raw_image_arr, description, price)
	  VALUES(?, ?, ?, ?)
	`, p.Name, imagesOrEmpty(p.RawImageArr), p.Description, p.Price)
	if err != nil {
		return domain.Product{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Product{}, err
	}
	return r.Get(id)
}

// Update replaces all mutable fields in one statement and reports how many
// rows matched, so the caller can distinguish a missing id.
func (r *ProductRepo) Update(id int64, p domain.Product) (int64, error) {
	res, err := r.db.Exec(`
	  UPDATE products SET name = ?, raw_image_arr = ?, description = ?, price = ?
	  WHERE id = ?
	`, p.Name, imagesOrEmpty(p.RawImageArr), p.Description, p.Price, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ProductRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	return err
}

func imagesOrEmpty(raw []byte) string {
	if len(raw) == 0 {
		return "[]"
	}
	return string(raw)
}
