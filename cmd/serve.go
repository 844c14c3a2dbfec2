package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "pomoplanner.com/pomoplanner/internal/configs"
	httpapi "pomoplanner.com/pomoplanner/internal/http"
	"pomoplanner.com/pomoplanner/internal/llm"
	repository "pomoplanner.com/pomoplanner/internal/repositories"
	"pomoplanner.com/pomoplanner/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the PomoPlanner HTTP API backed by MongoDB and the Groq chat-completion API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		logger, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer logger.Sync()

		client := config.NewMongoClient(cfg.MongoURI())
		db := client.Database(cfg.MongoDatabase)

		accountRepo := repository.NewAccountRepository(db)
		taskRepo := repository.NewTaskRepository(db)

		{
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := accountRepo.EnsureIndexes(ctx); err != nil {
				logger.Fatal("failed to build account indexes", zap.Error(err))
			}
		}

		completionClient := llm.NewClient(cfg.GroqBaseURL, cfg.GroqAPIKey, logger)

		accountService := services.NewAccountService(accountRepo)
		taskService := services.NewTaskService(taskRepo)
		chatService := services.NewChatService(taskRepo, completionClient)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		e.HideBanner = true
		handler := httpapi.NewHandler(accountService, taskService, chatService)
		httpapi.Register(e, handler, logger)

		go func() {
			logger.Info("HTTP server listening", zap.String("addr", cfg.AppURL))
			if err := e.Start(cfg.AppURL); err != nil {
				logger.Info("server stopped", zap.Error(err))
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()

		_ = e.Shutdown(shutdownCtx)
		if err := client.Disconnect(shutdownCtx); err != nil {
			logger.Warn("mongo disconnect failed", zap.Error(err))
		}

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
