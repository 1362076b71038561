package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/codearena-2025.net/internal/adapter/postgres/problemrepository"
	"gitlab.com/codearena-2025.net/internal/adapter/postgres/reportrepository"
	"gitlab.com/codearena-2025.net/internal/adapter/redis/reportcache"
	"gitlab.com/codearena-2025.net/internal/adapter/sandbox"
	"gitlab.com/codearena-2025.net/internal/config"
	"gitlab.com/codearena-2025.net/internal/core/services/judge"
	"gitlab.com/codearena-2025.net/internal/core/services/submission"
	logger2 "gitlab.com/codearena-2025.net/internal/global/logger"
	http2 "gitlab.com/codearena-2025.net/internal/http"
)

func main() {
	InitReader()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting judge service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	problemRepo := problemrepository.NewProblemRepository(db, logger)
	reportRepo := reportrepository.NewReportRepository(db, logger)
	reportCache := reportcache.NewReportCache(redisClient, logger)
	processSandbox := sandbox.NewProcessSandbox(sysCfg.JudgeConfig.InterpreterPath, logger)

	// services
	judgeSvc := judge.NewJudgeService(processSandbox, logger)
	submissionSvc := submission.NewSubmissionService(
		judgeSvc,
		problemRepo,
		reportRepo,
		reportCache,
		sysCfg.JudgeConfig.TempDir,
		logger,
	)
	serviceProvider := http2.NewServiceProvider(submissionSvc)

	// server
	httpServer := http2.NewServer(8082, "judge", *serviceProvider, sysCfg, logger)
	if err := httpServer.Init(); err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httpServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httpServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.AppConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.PostgresConfig.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
