package app

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
	"github.com/linemk/storefront/internal/config"
	"github.com/linemk/storefront/internal/storage"
	"github.com/linemk/storefront/internal/storage/filestore"
	"github.com/linemk/storefront/internal/storage/pgstore"
)

type App struct {
	Config *config.Config
	Logger *slog.Logger
	Store  storage.Store
	DB     *sql.DB // nil при file backend
}

// NewApp создаёт новый экземпляр App: открывает хранилище состояния,
// выбранное конфигом (file или postgres)
func NewApp(log *slog.Logger, cfg *config.Config) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: log,
	}

	switch cfg.Storage.Backend {
	case "file":
		store, err := filestore.New(cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file store: %w", err)
		}
		app.Store = store
	case "postgres":
		if cfg.Storage.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD environment variable is not set")
		}
		// реализуем подключение к БД через DSN
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.Storage.Database.User,
			cfg.Storage.Database.Password,
			cfg.Storage.Database.Host,
			cfg.Storage.Database.Port,
			cfg.Storage.Database.Name,
		)

		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.Ping(); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		app.DB = db
		app.Store = pgstore.New(db)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}

	return app, nil
}

// Close освобождает ресурсы приложения
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
