package main

import (
	"chama-service/src/internal/config"
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"chama-service/src/pkg/log"

	"github.com/hibiken/asynq"
)

func main() {

	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "CHAMA_SERVICE")
	viperConfig.SetDefault("web.port", 8080)
	viperConfig.SetDefault("fee.percent", 2.5)
	viperConfig.SetDefault("reconciler.stuck_after_minutes", 5)
	viperConfig.SetDefault("reconciler.sweep_interval_seconds", 30)
	log.InitLogger(viperConfig)
	config.NewKafkaConfig(viperConfig)
	logger := log.GetLogger()
	config.LoadRedisConfig(viperConfig)
	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis()
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)

	mux := asynq.NewServeMux()
	config.Bootstrap(&config.BootstrapConfig{
		DB:       db,
		App:      app,
		Log:      logger,
		Validate: validate,
		Config:   viperConfig,
		Producer: producer,
		Redis:    redisClient,
		Async:    mux,
	})

	asynqServer := config.NewAsynqServer(viperConfig)
	if err := asynqServer.Start(mux); err != nil {
		logger.Error("main", fmt.Sprintf("Failed to start worker: %v", err), "main", "")
		os.Exit(1)
	}
	scheduler := config.NewAsynqScheduler(viperConfig)
	if err := scheduler.Start(); err != nil {
		logger.Error("main", fmt.Sprintf("Failed to start scheduler: %v", err), "main", "")
		os.Exit(1)
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	go func() {
		<-quit
		logger.Info("main", "Server chama-service is shutting down...", "gracefull", "")

		_, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		scheduler.Shutdown()
		asynqServer.Shutdown()
		if err := app.Shutdown(); err != nil {
			logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
		}
		close(done)
	}()

	webPort := viperConfig.GetInt("web.port")
	err := app.Listen(fmt.Sprintf(":%d", webPort))
	if err != nil {
		logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
	}

	<-done
	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "gracefull", "")
}
