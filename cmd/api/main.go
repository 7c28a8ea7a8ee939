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
	"github.com/jhoicas/CompraGlobal-api/internal/application/auth"
	appcart "github.com/jhoicas/CompraGlobal-api/internal/application/cart"
	appcatalog "github.com/jhoicas/CompraGlobal-api/internal/application/catalog"
	appwishlist "github.com/jhoicas/CompraGlobal-api/internal/application/wishlist"
	"github.com/jhoicas/CompraGlobal-api/internal/infrastructure/exchange"
	infrapdf "github.com/jhoicas/CompraGlobal-api/internal/infrastructure/pdf"
	"github.com/jhoicas/CompraGlobal-api/internal/infrastructure/postgres"
	"github.com/jhoicas/CompraGlobal-api/internal/infrastructure/translate"
	"github.com/jhoicas/CompraGlobal-api/internal/infrastructure/upstream"
	httpRouter "github.com/jhoicas/CompraGlobal-api/internal/interfaces/http"
	"github.com/jhoicas/CompraGlobal-api/pkg/config"
	"github.com/jhoicas/CompraGlobal-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	kvStore := postgres.NewKVStore(pool)

	// Cliente compartido hacia la pasarela (catálogos, carrito, wishlist).
	gateway := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, cfg.Upstream.RetryBackoff, log)
	catalogClient := upstream.NewCatalogClient(gateway)
	cartClient := upstream.NewCartClient(gateway)
	wishlistClient := upstream.NewWishlistClient(gateway)

	// Traducción: colaborador aparte con su propia raíz; apagado si no hay URL.
	var translator appcatalog.Translator = translate.Noop{}
	if cfg.Upstream.TranslateURL != "" {
		translateGateway := upstream.NewClient(cfg.Upstream.TranslateURL, cfg.Upstream.Timeout, cfg.Upstream.RetryBackoff, log)
		translator = translate.NewClient(translateGateway, "")
	}

	converter := exchange.NewStaticConverter(cfg.Rates.Base, cfg.Rates.Pairs)

	selectionStore := appcart.NewSelectionStore()
	composer := appcart.NewComposer(cartClient, selectionStore, log)
	selectionUC := appcart.NewSelectionUseCase(selectionStore)
	quoteUC := appcart.NewQuoteUseCase(composer, selectionStore, infrapdf.NewQuoteGenerator())

	reconciler := appwishlist.NewReconciler(wishlistClient, kvStore, cfg.Wishlist.TTL, log)

	catalogUC := appcatalog.NewUseCase(catalogClient, selectionStore, converter, translator, reconciler, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. El middleware hace
	// panic si el archivo no existe, así que solo se monta cuando está.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "CompraGlobal API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, UI de docs deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		SelectionUC: selectionUC,
		Composer:    composer,
		QuoteUC:     quoteUC,
		Reconciler:  reconciler,
		JWTSecret:   cfg.JWT.Secret,
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
