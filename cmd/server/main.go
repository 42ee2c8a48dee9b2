package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gookit/color"

	"github.com/oarkflow/zeit"
	"github.com/oarkflow/zeit/pkg/config"
	"github.com/oarkflow/zeit/pkg/http/handlers"
	"github.com/oarkflow/zeit/pkg/libs"
	"github.com/oarkflow/zeit/pkg/objects"
)

func main() {
	koanf, err := config.NewKoanf(".env", true, func() {
		color.Yellow.Println(".env changed, restart to apply server settings")
	})
	if err != nil {
		color.Red.Println("Error loading configuration: " + err.Error())
		os.Exit(1)
	}
	objects.Config = koanf
	appConfig := config.Config{}
	appConfig.Load()
	cfg := libs.LoadConfig()

	objects.Layout = "layouts/main"
	// Forwarded client IPs key the gate rate limit, so the proxy header is
	// honoured only when configured.
	app := fiber.New(fiber.Config{
		AppName:                 cfg.AppName,
		ReadTimeout:             cfg.ReadTimeout,
		WriteTimeout:            cfg.WriteTimeout,
		IdleTimeout:             cfg.IdleTimeout,
		ErrorHandler:            handlers.ErrorHandler,
		ProxyHeader:             cfg.ProxyHeader,
		EnableIPValidation:      cfg.ProxyHeader != "",
		EnableTrustedProxyCheck: len(cfg.TrustedProxies) > 0,
		TrustedProxies:          cfg.TrustedProxies,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(helmet.New(helmet.Config{
		CrossOriginEmbedderPolicy: "unsafe-none",
	}))

	plugin := zeit.NewPluginWithOptions(
		zeit.WithPrefix("/"),
		zeit.WithApp(app),
		zeit.WithConfig(cfg),
		zeit.WithTemplateReload(cfg.Env == "development"),
	)
	if err := plugin.Register(); err != nil {
		log.Fatalf("failed to register %s: %v", plugin.Name(), err)
	}
	app.Use(handlers.NotFound)

	go func() {
		color.Green.Printf("%s listening on %s\n", cfg.AppName, cfg.Addr)
		if err := app.Listen(cfg.Addr); err != nil {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	color.Yellow.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if err := plugin.Close(); err != nil {
		log.Printf("close: %v", err)
	}
}
