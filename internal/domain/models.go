package domain

import (
	"database/sql/driver"
	"fmt"
)

// RawJSON carries a JSON fragment untouched between the wire and a TEXT
// column. modernc sqlite hands TEXT back as string, so a plain
// json.RawMessage cannot be a scan target.
type RawJSON []byte

func (r RawJSON) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

func (r *RawJSON) UnmarshalJSON(data []byte) error {
	*r = append((*r)[0:0], data...)
	return nil
}

func (r *RawJSON) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*r = nil
	case string:
		*r = RawJSON(v)
	case []byte:
		*r = append(RawJSON(nil), v...)
	default:
		return fmt.Errorf("cannot scan %T into RawJSON", src)
	}
	return nil
}

func (r RawJSON) Value() (driver.Value, error) {
	if len(r) == 0 {
		return nil, nil
	}
	return string(r), nil
}

type Product struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	RawImageArr RawJSON `db:"raw_image_arr" json:"rawImageArr"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
}

type Order struct {
	ID         int64   `db:"id" json:"id"`
	ProductID  int64   `db:"product_id" json:"product_id"`
	Quantity   int     `db:"quantity" json:"quantity"`
	TotalPrice float64 `db:"total_price" json:"total_price"`
}
