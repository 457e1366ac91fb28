package handlers

import (
	"github.com/jmoiron/sqlx"

	"webshop/internal/config"
	"webshop/internal/repos"
	"webshop/internal/services"
)

type Deps struct {
	AuthHandler    *AuthHandler
	ProductHandler *ProductHandler
	OrderHandler   *OrderHandler
	Auth           *services.AuthService
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	userRepo := repos.NewUserRepo(db)
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	authSvc := &services.AuthService{Users: userRepo, Secret: []byte(cfg.JWTSecret)}
	catalogSvc := services.NewCatalogService(prodRepo, orderRepo)

	return &Deps{
		AuthHandler:    &AuthHandler{Auth: authSvc},
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		OrderHandler:   &OrderHandler{Catalog: catalogSvc},
		Auth:           authSvc,
	}
}
