package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/elokrypt/bestbuy-2.0/internal/order"
	"github.com/elokrypt/bestbuy-2.0/internal/product"
)

func NewRouter(productCtrl *product.Controller, orderCtrl *order.Controller, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", productCtrl.HandleListProducts)
		r.Get("/stock", productCtrl.HandleTotalStock)
		r.Post("/orders", orderCtrl.HandlePlaceOrder)
	})

	return r
}
