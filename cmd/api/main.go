package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Concesionaria-api/internal/application/auth"
	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
	"github.com/jhoicas/Concesionaria-api/internal/infrastructure/cassandra"
	httpRouter "github.com/jhoicas/Concesionaria-api/internal/interfaces/http"
	"github.com/jhoicas/Concesionaria-api/pkg/config"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
	"github.com/jhoicas/Concesionaria-api/pkg/metrics"
)

func main() {
	os.Exit(run())
}

// connectFunc abre la sesión con el almacén.
type connectFunc func(ctx context.Context, cfg config.CassandraConfig, log *logger.Logger) (*cassandra.Session, error)

// listenFunc abre el puerto HTTP y bloquea mientras el servidor atiende.
type listenFunc func(app *fiber.App, addr string) error

// run devuelve el código de salida: 0 si la sesión se cerró bien, 1 en otro caso.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	return serve(cfg, log, cassandra.Connect, (*fiber.App).Listen, quit)
}

// serve conecta, arma la app y atiende hasta recibir una señal o un error de escucha.
func serve(cfg *config.Config, log *logger.Logger, connect connectFunc, listen listenFunc, quit <-chan os.Signal) int {
	// Sin sesión no se abre el puerto HTTP.
	session, err := connect(context.Background(), cfg.Cassandra, log.Named("cassandra"))
	if err != nil {
		log.Error().Err(err).Msg("conexión a Cassandra")
		return 1
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	obs := usecase.NewObserver(log.Named("dispatcher"), metrics.NewQueryMetrics(reg))

	passwords, err := auth.NewPasswordVerifier(cfg.Auth.PasswordMode)
	if err != nil {
		log.Error().Err(err).Msg("modo de contraseña")
		return shutdownSession(session, cfg.App.ShutdownTimeout, log, 1)
	}

	saleRepo := cassandra.NewSaleRepository(session)
	employeeRepo := cassandra.NewEmployeeRepository(session)
	catalogRepo := cassandra.NewCatalogRepository(session)

	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		IdleTimeout: time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Concesionaria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		SaleUC:     usecase.NewSaleUseCase(saleRepo, obs),
		EmployeeUC: usecase.NewEmployeeUseCase(employeeRepo, obs),
		CatalogUC:  usecase.NewCatalogUseCase(catalogRepo, obs),
		AuthUC:     auth.NewAuthUseCase(employeeRepo, passwords, obs),
	})

	listenErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		listenErr <- listen(app, cfg.HTTP.Addr())
	}()

	code := 0
	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("señal de apagado recibida, cerrando servidor...")
	case err := <-listenErr:
		log.Error().Err(err).Msg("servidor HTTP finalizado")
		code = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	return shutdownSession(session, cfg.App.ShutdownTimeout, log, code)
}

// shutdownSession cierra la sesión y espera a que termine antes de devolver el código de salida.
func shutdownSession(session *cassandra.Session, timeout time.Duration, log *logger.Logger, code int) int {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := session.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error cerrando el cliente de Cassandra")
		return 1
	}
	log.Info().Msg("cliente de Cassandra cerrado")
	return code
}
