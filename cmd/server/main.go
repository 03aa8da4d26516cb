package main

import (
	"context"

	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/linemk/storefront/internal/app"
	"github.com/linemk/storefront/internal/app/handlers"
	"github.com/linemk/storefront/internal/catalog"
	"github.com/linemk/storefront/internal/config"
	"github.com/linemk/storefront/internal/lib/logger"
	"github.com/linemk/storefront/internal/lib/logger/handlers/urllog"
	"github.com/linemk/storefront/internal/service"
	"github.com/linemk/storefront/internal/sessionmw"
	"github.com/pkg/errors"
)

func main() {
	// загрузка конфигурации
	cfg := config.MustLoad()

	// инициализация логгера, зависит от настройки окружения
	log := logger.SetupLogger(cfg.Env)
	log.Info("starting app", slog.String("env", cfg.Env))

	// загружаем объект приложения: конфиг и хранилище состояния
	application, err := app.NewApp(log, cfg)
	if err != nil {
		log.Error("failed to initialize app", slog.Any("error", err))
		panic(errors.Wrap(err, "failed to initialize app"))
	}
	defer application.Close()

	// сервисы ядра: корзина, сессия (при выходе очищает корзину), заказы
	cartService := service.NewCartService(application.Logger)
	sessionService := service.NewSessionService(application.Logger, application.Store, cartService)
	orderService := service.NewOrderService(application.Logger, application.Store, sessionService, cartService)

	// внешний каталог товаров
	catalogClient := catalog.New(application.Logger, cfg.Catalog.BaseURL, cfg.Catalog.Timeout)

	// восстановление сессии и заказов после перезапуска
	startCtx, startCancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	if user, err := sessionService.Restore(startCtx); err != nil {
		log.Error("failed to restore session", slog.Any("error", err))
	} else if user != nil {
		log.Info("session restored", slog.String("email", user.Email))
	}
	if _, err := orderService.Load(startCtx); err != nil {
		log.Error("failed to load orders", slog.Any("error", err))
	}
	startCancel()

	router := chi.NewRouter()
	// настройка middleware
	router.Use(middleware.RequestID)
	router.Use(urllog.CustomLoggerMiddleware(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	// эндпоинт для входа
	router.Post("/api/login", handlers.LoginHandler(application.Logger, sessionService))

	router.Group(func(r chi.Router) {
		r.Use(sessionmw.New(sessionService))

		r.Post("/api/logout", handlers.LogoutHandler(application.Logger, sessionService))
		r.Get("/api/session", handlers.SessionHandler(application.Logger, sessionService))

		r.Get("/api/products", handlers.ListProductsHandler(application.Logger, catalogClient))
		r.Get("/api/products/{productID}", handlers.GetProductHandler(application.Logger, catalogClient))

		r.Get("/api/cart", handlers.GetCartHandler(application.Logger, cartService))
		r.Post("/api/cart/items", handlers.AddCartItemHandler(application.Logger, cartService))
		r.Put("/api/cart/items/{productID}", handlers.SetCartItemQuantityHandler(application.Logger, cartService))
		r.Delete("/api/cart/items/{productID}", handlers.RemoveCartItemHandler(application.Logger, cartService))
		r.Delete("/api/cart", handlers.ClearCartHandler(application.Logger, cartService))

		r.Post("/api/orders", handlers.PlaceOrderHandler(application.Logger, orderService))
		r.Get("/api/orders", handlers.ListOrdersHandler(application.Logger, orderService))
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", slog.Any("error", err))
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	stopSign := <-stop
	log.Info("received shutdown signal", slog.String("signal", stopSign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", slog.Any("error", err))
	}
	log.Info("server gracefully stopped")
}
