package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"fincopilot/internal/amqp"
	"fincopilot/internal/cli"
	apphttp "fincopilot/internal/http"
	"fincopilot/internal/ocr"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	st := cli.OpenStore(logger, cfg)
	defer st.Close()

	var opts []apphttp.Option

	if cfg.OpenAIAPIKey != "" {
		opts = append(opts, apphttp.WithOCR(
			ocr.NewVisionClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OCRModel)))
		logger.Info("Receipt OCR enabled", "model", cfg.OCRModel)
	} else {
		logger.Info("Receipt OCR disabled - no OPENAI_API_KEY provided")
	}

	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		var err error
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer amqpClient.Close()
		opts = append(opts, apphttp.WithSyncPublisher(amqpClient))
		logger.Info("Sheet sync publishing enabled", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	} else {
		logger.Info("Sheet sync publishing disabled - no AMQP_URL provided")
	}

	srv := apphttp.NewServer(":"+cfg.Port, st, opts...)

	// Server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	})

	logger.Info("Starting fincopilot server",
		"port", cfg.Port,
		"backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Server stopped gracefully")
}
