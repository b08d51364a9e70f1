// Package serverapp is the composition root: it builds the repos for the
// configured storage backend, seeds the catalogs, and wires every handler
// onto one mux behind the middleware chain.
package serverapp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"disciplineforge/internal/achievement"
	"disciplineforge/internal/config"
	"disciplineforge/internal/engine"
	"disciplineforge/internal/httpmw"
	"disciplineforge/internal/player"
	"disciplineforge/internal/server"
	"disciplineforge/internal/shop"
	"disciplineforge/internal/storage/sqlite"
	"disciplineforge/internal/task"
	"disciplineforge/internal/telemetry"
)

type Options struct {
	Config *config.Config
	Logger *log.Logger

	// TaskRepo, when set, replaces the repo the backend would build.
	// The dev entry point uses it to serve a pre-seeded in-memory set.
	TaskRepo task.Repo
}

type repos struct {
	tasks        task.Repo
	players      player.Repo
	achievements achievement.Repo
	shop         shop.Repo

	// closer is non-nil for backends that own a resource to release.
	closer func() error
}

// NewHandler assembles the full HTTP API. The returned close func releases
// the storage backend and is safe to call on a nil error only.
func NewHandler(opts Options) (http.Handler, func() error, error) {
	if opts.Config == nil {
		return nil, nil, errors.New("config is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	rs, err := buildRepos(opts.Config)
	if err != nil {
		return nil, nil, err
	}
	if opts.TaskRepo != nil {
		rs.tasks = opts.TaskRepo
	}

	ledger := engine.NewLedger(opts.Config.Balance)
	events := telemetry.NewMemoryRepo()

	taskHandler := task.NewHandler(rs.tasks, rs.players, rs.achievements, ledger, events, opts.Config.Balance)
	playerHandler := player.NewHandler(rs.players)
	achievementHandler := achievement.NewHandler(rs.achievements)
	shopHandler := shop.NewHandler(rs.shop, rs.players, events)
	telemetryHandler := telemetry.NewHandler(events)

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}

	server.Handle(mux, rr, "GET /api/tasks", "List tasks", taskHandler.List)
	server.Handle(mux, rr, "POST /api/tasks", "Create a task", taskHandler.Create)
	server.Handle(mux, rr, "GET /api/tasks/{id}", "Get one task", taskHandler.Get)
	server.Handle(mux, rr, "PATCH /api/tasks/{id}", "Update a task definition", taskHandler.Update)
	server.Handle(mux, rr, "DELETE /api/tasks/{id}", "Delete a task", taskHandler.Delete)
	server.Handle(mux, rr, "POST /api/tasks/{id}/toggle", "Toggle today's completion", taskHandler.Toggle)
	server.Handle(mux, rr, "POST /api/tasks/{id}/revive", "Backfill a missed completion", taskHandler.Revive)
	server.Handle(mux, rr, "GET /api/heatmap", "Completion history window", taskHandler.Heatmap)

	server.Handle(mux, rr, "GET /api/player/stats", "Player progress record", playerHandler.Stats)
	server.Handle(mux, rr, "PATCH /api/player/prefs", "Update player preferences", playerHandler.UpdatePrefs)

	server.Handle(mux, rr, "GET /api/achievements", "Achievement catalog with unlock state", achievementHandler.List)

	server.Handle(mux, rr, "GET /api/shop", "Shop catalog with ownership state", shopHandler.List)
	server.Handle(mux, rr, "POST /api/shop/{id}/purchase", "Buy a shop item", shopHandler.Purchase)

	server.Handle(mux, rr, "GET /api/telemetry/stats", "Recent activity counters", telemetryHandler.Stats)

	server.Handle(mux, rr, "GET /api/routes", "This listing", rr.ListHandler)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "disciplineforge",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := rs.tasks.List(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "task storage unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "disciplineforge",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	handler := httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithCORS(opts.Config.Server.CORSOrigins),
		httpmw.WithRecover(opts.Logger),
	)

	closer := rs.closer
	if closer == nil {
		closer = func() error { return nil }
	}
	return handler, closer, nil
}

func buildRepos(cfg *config.Config) (repos, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		store, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return repos{}, err
		}
		if err := store.SeedCatalogs(achievement.Defaults(), shop.Defaults()); err != nil {
			_ = store.Close()
			return repos{}, err
		}
		return repos{
			tasks:        store.Tasks(),
			players:      store.Players(),
			achievements: store.Achievements(),
			shop:         store.Shop(),
			closer:       store.Close,
		}, nil

	case config.BackendMemory:
		return repos{
			tasks:        task.NewMemoryRepo(),
			players:      player.NewMemoryRepo(),
			achievements: achievement.NewMemoryRepo(),
			shop:         shop.NewMemoryRepo(),
		}, nil

	case config.BackendFile, "":
		dataDir := strings.TrimSpace(cfg.Storage.DataDir)
		if dataDir == "" {
			dataDir = "data"
		}
		taskRepo, err := task.NewFileRepo(dataDir)
		if err != nil {
			return repos{}, err
		}
		playerRepo, err := player.NewFileRepo(dataDir)
		if err != nil {
			return repos{}, err
		}
		achievementRepo, err := achievement.NewFileRepo(dataDir)
		if err != nil {
			return repos{}, err
		}
		shopRepo, err := shop.NewFileRepo(dataDir)
		if err != nil {
			return repos{}, err
		}
		return repos{
			tasks:        taskRepo,
			players:      playerRepo,
			achievements: achievementRepo,
			shop:         shopRepo,
		}, nil

	default:
		return repos{}, errors.New("unknown storage backend " + cfg.Storage.Backend)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
