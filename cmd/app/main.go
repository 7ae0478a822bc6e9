package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	adapterhttp "github.com/reseahub/case-console/internal/adapters/in/http"
	"github.com/reseahub/case-console/internal/adapters/in/rabbitmq"
	"github.com/reseahub/case-console/internal/adapters/out/agency"
	"github.com/reseahub/case-console/internal/adapters/out/cache"
	"github.com/reseahub/case-console/internal/adapters/out/clock"
	"github.com/reseahub/case-console/internal/adapters/out/logger"
	"github.com/reseahub/case-console/internal/config"
	"github.com/reseahub/case-console/internal/core/ports/out"
	"github.com/reseahub/case-console/internal/core/services"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	systemClock, err := clock.NewSystemClock(cfg.App.Timezone)
	if err != nil {
		log.Error("app.clock.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	agencyAdapter := agency.NewAgencyAdapter(cfg, mainLogger)

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		adapter, err := cache.NewCacheAdapter(cfg, mainLogger)
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = adapter
	}

	schedulingService := services.NewSchedulingService(agencyAdapter, cacheAdapter, systemClock, cfg, mainLogger)
	detailsService := services.NewAppointmentDetailsService(agencyAdapter, systemClock, mainLogger)
	lookupService := services.NewLookupService(agencyAdapter, mainLogger)
	reassignmentService := services.NewReassignmentService(agencyAdapter, mainLogger)
	optionsService := services.NewOptionsService(agencyAdapter, cacheAdapter, cfg, mainLogger)

	router := gin.Default()
	controller := adapterhttp.NewConsoleController(
		schedulingService,
		detailsService,
		lookupService,
		reassignmentService,
		optionsService,
		cfg,
		mainLogger,
	)
	controller.RegisterRoutes(router)

	if cfg.RabbitMQ.Enabled {
		listener, err := rabbitmq.NewCacheHitListener(optionsService, cfg, mainLogger)
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})

	if cfg.IsLocal() {
		log.Debug("app.config.debug", out.LogFields{
			"config": map[string]interface{}{
				"http": map[string]string{
					"host": cfg.HTTP.Host,
					"port": cfg.HTTP.Port,
				},
				"agency": map[string]string{
					"url":      cfg.Agency.URL,
					"username": cfg.Agency.Username,
				},
				"rabbitmq": map[string]interface{}{
					"enabled": cfg.RabbitMQ.Enabled,
				},
				"cache": map[string]interface{}{
					"enabled":          cfg.Cache.Enabled,
					"options_size":     cfg.Cache.OptionsSize,
					"case_header_size": cfg.Cache.CaseHeaderSize,
				},
			},
		})
	}
}
