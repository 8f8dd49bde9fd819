package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/consola-admin/internal/application/auth"
	"github.com/jhoicas/consola-admin/internal/application/console"
	"github.com/jhoicas/consola-admin/internal/application/usecase"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
	"github.com/jhoicas/consola-admin/internal/infrastructure/backend"
	"github.com/jhoicas/consola-admin/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/consola-admin/internal/infrastructure/pdf"
	"github.com/jhoicas/consola-admin/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/consola-admin/internal/interfaces/http"
	"github.com/jhoicas/consola-admin/pkg/config"
	"github.com/jhoicas/consola-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}
	if cfg.Console.AdminPasswordHash == "" {
		log.Warn().Msg("CONSOLE_ADMIN_PASSWORD_HASH vacío: nadie podrá iniciar sesión")
	}

	ctx := context.Background()

	// Registro de personas huérfanas: PostgreSQL si está configurado, si no en memoria.
	var ledger repository.OrphanPersonaRepository
	if cfg.DB.Enabled() {
		if err := postgres.Migrate(cfg.DB.ConnectionString(), log.Component("migrate")); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		ledger = postgres.NewOrphanPersonaRepository(pool)
	} else {
		log.Warn().Msg("sin base de datos: las personas huérfanas se registran solo en memoria")
		ledger = memory.NewOrphanPersonaLedger()
	}

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log.Component("backend"))
	personas := backend.NewPersonaGateway(client, ledger, log.Component("personas"))
	opts := backend.Options{
		Client:    client,
		Personas:  personas,
		AuditUser: cfg.Backend.AuditUser,
		Logger:    log.Component("backend"),
	}
	audit := cfg.Backend.AuditUser

	consoleHandler := httpRouter.NewConsoleHandler(httpRouter.ConsoleDeps{
		Empresas:      usecase.NewEmpresaUseCase(backend.NewEmpresaAdapter(opts), audit),
		Sucursales:    usecase.NewSucursalUseCase(backend.NewSucursalAdapter(opts), audit),
		PuntosEmision: usecase.NewPuntoEmisionUseCase(backend.NewPuntoEmisionAdapter(opts), audit),
		Roles:         usecase.NewRolUseCase(backend.NewRolAdapter(opts), audit),
		TiposCliente:  usecase.NewTipoClienteUseCase(backend.NewTipoClienteAdapter(opts), audit),
		Clientes:      usecase.NewClienteUseCase(backend.NewClienteAdapter(opts), audit),
		Empleados:     usecase.NewEmpleadoUseCase(backend.NewEmpleadoAdapter(opts), audit),
		Usuarios:      usecase.NewUsuarioUseCase(backend.NewUsuarioAdapter(opts), audit),
		Proveedores:   usecase.NewProveedorUseCase(backend.NewProveedorAdapter(opts), audit),
		Personas:      usecase.NewPersonaUseCase(personas),
		Reconcile:     usecase.NewReconcileUseCase(ledger, personas, log.Component("reconcile")),
		Guard:         console.NewWriteGuard(),
		PDF:           infrapdf.NewMarotoListGenerator(cfg.App.Name),
		AdminRole:     cfg.Console.AdminRole,
	})

	authUC := auth.NewAuthUseCase([]auth.Operator{{
		Username:     cfg.Console.AdminUser,
		PasswordHash: cfg.Console.AdminPasswordHash,
		Role:         cfg.Console.AdminRole,
	}}, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Backend.Timeout + 5*time.Second,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.DocsPath,
			Path:     "docs",
			Title:    "Consola administrativa",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		Console:   consoleHandler,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
