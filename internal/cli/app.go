package cli

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"dashkit/internal/catalog"
	"dashkit/internal/config"
	"dashkit/internal/db"
	h "dashkit/internal/http/handlers"
	"dashkit/internal/repositories"
	"dashkit/internal/services"
	"dashkit/internal/store"
)

// app is the wired set of backends shared by the commands.
type app struct {
	cfg     config.Config
	db      *sqlx.DB
	kv      store.KV
	catalog *catalog.Catalog
	users   services.UserRepository
}

func bootstrap(ctx context.Context, cfg config.Config) (*app, error) {
	a := &app{cfg: cfg}
	if cfg.Database.Enabled {
		conn, err := config.ConnectDB(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		a.db = conn
	}

	kv, err := store.Open(ctx, cfg.Store)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	a.kv = kv

	src := catalog.FixtureSources()
	if a.db != nil {
		src = catalog.DatabaseSources(ctx, a.db, src)
	}
	cat, err := catalog.New(src, cfg.Cache.MemoSize)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.catalog = cat
	if a.db != nil {
		if err := cat.Registry.RefreshAll(ctx); err != nil {
			log.Warn().Err(err).Msg("initial collection load failed")
		}
	}
	if cfg.Fixtures.Path != "" {
		if err := a.reloadFixtures(cfg.Fixtures.Path); err != nil {
			a.Close()
			return nil, err
		}
	}

	if a.db != nil && db.HasTable(ctx, a.db, "users") {
		a.users = repositories.MySQLUserRepository{DB: a.db}
	} else {
		a.users = repositories.NewKVUserRepository(kv)
	}
	return a, nil
}

func (a *app) reloadFixtures(path string) error {
	warnings, err := a.catalog.Reload(path)
	if err != nil {
		return fmt.Errorf("load fixtures: %w", err)
	}
	for _, w := range warnings {
		log.Warn().Str("path", path).Msg(w)
	}
	log.Info().Str("path", path).Msg("fixtures loaded")
	return nil
}

func (a *app) auth() services.AuthService {
	return services.AuthService{
		Users:         a.users,
		Sessions:      a.kv,
		Secret:        []byte(a.cfg.Auth.JWTSecret),
		TokenTTL:      a.cfg.Auth.TokenTTL,
		LoginLatency:  a.cfg.Auth.LoginLatency,
		SignupLatency: a.cfg.Auth.SignupLatency,
	}
}

func (a *app) handler() (*h.Handler, error) {
	views, err := services.NewViewService(a.catalog.Registry, a.cfg.Cache.ViewSessions)
	if err != nil {
		return nil, err
	}
	return &h.Handler{
		Auth:      a.auth(),
		Prefs:     services.PreferencesService{KV: a.kv},
		Views:     views,
		Docs:      &services.DocumentService{KV: a.kv, Registry: a.catalog.Registry, Uploads: a.cfg.Uploads},
		Export:    services.ExportService{Registry: a.catalog.Registry},
		Dashboard: services.DashboardService{Catalog: a.catalog, Probe: services.SystemProbe{Path: "/"}},
		Catalog:   a.catalog,
		DB:        a.db,
	}, nil
}

func (a *app) Close() {
	if a.kv != nil {
		if err := a.kv.Close(); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}
	if a.db != nil {
		config.CloseDB()
	}
}
