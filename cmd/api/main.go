package main

import (
	"log"

	"hrms/backend/foundation/web"
	"hrms/backend/internal/auth"
	"hrms/backend/internal/commands"
	"hrms/backend/internal/pkg/config"
	"hrms/backend/internal/pkg/repository/postgresql"
	"hrms/backend/internal/router"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// .env is optional, real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		if err == config.ErrHelp {
			return
		}
		log.Fatalf("loading config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer logger.Sync()

	postgresDB := postgresql.NewDB(
		cfg.DBUsername,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DisableTLS,
		cfg.DebugQueries,
	)

	if err := commands.MigrateUP(postgresDB); err != nil {
		logger.Fatal("running migrations", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	authenticator := auth.New(cfg.JWTKey, redisClient)

	app := web.NewApp()
	r := router.NewRouter(app, postgresDB, cfg.APIHost, authenticator, cfg.BaseURL, logger)

	logger.Info("starting api", zap.String("host", cfg.APIHost))
	if err := r.Init(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
