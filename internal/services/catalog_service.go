package services

import (
	"database/sql"
	"errors"
	"fmt"

	"webshop/internal/domain"
	"webshop/internal/repos"
)

type CatalogService struct {
	Prods  *repos.ProductRepo
	Orders *repos.OrderRepo
}

func NewCatalogService(prods *repos.ProductRepo, orders *repos.OrderRepo) *CatalogService {
	return &CatalogService{Prods: prods, Orders: orders}
}

func (s *CatalogService) ListProducts() ([]domain.Product, error) {
	return s.Prods.List()
}

func (s *CatalogService) GetProduct(id int64) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, err
}

// CreateProduct passes fields through as-is. Price sign and name emptiness are
// deliberately not checked; writers are already authenticated.
func (s *CatalogService) CreateProduct(p domain.Product) (domain.Product, error) {
	return s.Prods.Create(p)
}

func (s *CatalogService) UpdateProduct(id int64, p domain.Product) (domain.Product, error) {
	n, err := s.Prods.Update(id, p)
	if err != nil {
		return domain.Product{}, err
	}
	if n == 0 {
		return domain.Product{}, domain.ErrNotFound
	}
	return s.Prods.Get(id)
}

// DeleteProduct succeeds whether or not the row existed; no rows-affected check.
func (s *CatalogService) DeleteProduct(id int64) error {
	return s.Prods.Delete(id)
}

func (s *CatalogService) ListOrders() ([]domain.Order, error) {
	return s.Orders.List()
}

// PlaceOrder computes the total from the product row read in this same call;
// a client-supplied price is never trusted. The read and the insert are not
// wrapped in a transaction, so a concurrent price update can land between
// them; the order keeps the price that was read.
func (s *CatalogService) PlaceOrder(productID int64, quantity int) (domain.Order, error) {
	if quantity <= 0 {
		return domain.Order{}, fmt.Errorf("%w: quantity must be a positive integer", domain.ErrValidation)
	}
	p, err := s.Prods.Get(productID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}
	return s.Orders.Create(productID, quantity, p.Price*float64(quantity))
}
