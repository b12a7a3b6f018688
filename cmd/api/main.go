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
	"github.com/robfig/cron/v3"

	"github.com/jhoicas/retailpilot-api/internal/application/analytics"
	"github.com/jhoicas/retailpilot-api/internal/application/inventory"
	"github.com/jhoicas/retailpilot-api/internal/application/ports"
	"github.com/jhoicas/retailpilot-api/internal/application/usecase"
	infraai "github.com/jhoicas/retailpilot-api/internal/infrastructure/ai"
	"github.com/jhoicas/retailpilot-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/retailpilot-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/retailpilot-api/internal/interfaces/http"
	"github.com/jhoicas/retailpilot-api/pkg/config"
	"github.com/jhoicas/retailpilot-api/pkg/logger"
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
		Msg("iniciando aplicación")

	// Estado en memoria con datos semilla: todo se pierde al reiniciar.
	store := memory.NewStore(memory.Seed(time.Now()))

	// Adaptador de IA según el proveedor configurado.
	var llm ports.LLMService
	switch cfg.AI.Provider {
	case "anthropic":
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	default:
		llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	productUC := usecase.NewProductUseCase(store)
	valuationUC := inventory.NewValuationUseCase(store, pdfGenerator)
	supplierUC := usecase.NewSupplierUseCase(store, log.WithComponent("suppliers"))
	financeUC := usecase.NewFinanceUseCase(store)
	aiUC := usecase.NewAIUseCase(store, llm, log.WithComponent("ai"))
	dashboardUC := analytics.NewDashboardUseCase(store)
	customerUC := usecase.NewCustomerUseCase(store)
	crmUC := usecase.NewCRMUseCase(store)
	documentUC := usecase.NewDocumentUseCase(store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RetailPilot API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		ValuationUC: valuationUC,
		SupplierUC:  supplierUC,
		FinanceUC:   financeUC,
		AIUC:        aiUC,
		DashboardUC: dashboardUC,
		CustomerUC:  customerUC,
		CRMUC:       crmUC,
		DocumentUC:  documentUC,
	})

	// Barrido diario de recordatorios de pago a proveedores.
	var scheduler *cron.Cron
	if cfg.Reminders.Enabled {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.Reminders.Cron, func() {
			out := supplierUC.SendReminders(time.Now())
			log.Info().Int("sent", out.Sent).Msg("barrido de recordatorios ejecutado")
		})
		if err != nil {
			log.Fatal().Err(err).Str("cron", cfg.Reminders.Cron).Msg("expresión cron inválida")
		}
		scheduler.Start()
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	if scheduler != nil {
		scheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
