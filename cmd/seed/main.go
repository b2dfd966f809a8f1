package main

import (
	"context"
	"time"

	"github.com/gestion-erp/erp-api/internal/infrastructure/postgres"
	"github.com/gestion-erp/erp-api/migrations"
	"github.com/gestion-erp/erp-api/pkg/config"
	"github.com/gestion-erp/erp-api/pkg/logger"
)

// Aplica las migraciones y siembra el admin por defecto sin levantar el
// servidor. Útil para preparar un entorno nuevo o un pipeline de CI.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"}).Component("seed")

	if err := migrations.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Msg("migraciones aplicadas")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	seeded, err := postgres.EnsureDefaultAdmin(ctx, pool, cfg.Admin)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar admin por defecto")
	}
	if seeded {
		log.Info().Str("username", cfg.Admin.Username).Msg("admin por defecto creado")
	} else {
		log.Info().Msg("la tabla users ya tiene filas, no se siembra nada")
	}
}
