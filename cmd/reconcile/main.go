// reconcile elimina del backend las personas huérfanas registradas por altas fallidas.
//
// Uso: go run ./cmd/reconcile [-limit 100] [-dry-run]
// Requiere DATABASE_URL (o DB_*) apuntando al mismo registro que usa la API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/consola-admin/internal/application/usecase"
	"github.com/jhoicas/consola-admin/internal/infrastructure/backend"
	"github.com/jhoicas/consola-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/consola-admin/pkg/config"
	"github.com/jhoicas/consola-admin/pkg/logger"
)

func main() {
	os.Exit(run())
}

// run devuelve el código de salida: 0 ok, 1 error, 2 quedaron entradas fallidas.
func run() int {
	limit := flag.Int("limit", usecase.DefaultReconcileBatch, "máximo de entradas a procesar")
	dryRun := flag.Bool("dry-run", false, "solo listar las pendientes")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		return 1
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if !cfg.DB.Enabled() {
		fmt.Fprintln(os.Stderr, "DATABASE_URL o DB_HOST es requerido: el registro en memoria no sobrevive al proceso de la API")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := postgres.Migrate(cfg.DB.ConnectionString(), log.Component("migrate")); err != nil {
		fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
		return 1
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		return 1
	}
	defer pool.Close()

	ledger := postgres.NewOrphanPersonaRepository(pool)
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log.Component("backend"))
	personas := backend.NewPersonaGateway(client, ledger, log.Component("personas"))
	uc := usecase.NewReconcileUseCase(ledger, personas, log.Component("reconcile"))

	if *dryRun {
		pending, err := uc.Pending(ctx, *limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Listar pendientes: %v\n", err)
			return 1
		}
		for _, o := range pending {
			fmt.Printf("%s\t%s\t%s\tintentos=%d\t%s\n", o.PersonaID, o.Identificacion, o.Recurso, o.Intentos, o.UltimoError)
		}
		fmt.Printf("Pendientes: %d\n", len(pending))
		return 0
	}

	res, err := uc.Run(ctx, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conciliación: %v\n", err)
		return 1
	}
	fmt.Printf("Revisadas: %d  Resueltas: %d  Fallidas: %d  Pendientes: %d\n",
		res.Revisadas, res.Resueltas, res.Fallidas, len(res.Pendientes))
	if res.Fallidas > 0 {
		return 2
	}
	return 0
}
