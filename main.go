// Development entry point: an in-memory server with a few seeded tasks and
// no files on disk. The real deployment binary lives in cmd/server.
package main

import (
	"log"
	"net/http"

	"disciplineforge/internal/config"
	"disciplineforge/internal/ops"
	"disciplineforge/internal/serverapp"
	"disciplineforge/internal/task"
)

func main() {
	cfg := config.Default()
	cfg.Storage.Backend = config.BackendMemory

	taskRepo := task.NewMemoryRepo()
	if _, err := ops.SeedSampleTasks(taskRepo); err != nil {
		log.Fatalf("seed tasks: %v", err)
	}

	handler, closeStorage, err := serverapp.NewHandler(serverapp.Options{
		Config:   cfg,
		Logger:   log.Default(),
		TaskRepo: taskRepo,
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}
	defer func() { _ = closeStorage() }()

	log.Printf("dev server on %s (in-memory, state is not persisted)", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, handler))
}
