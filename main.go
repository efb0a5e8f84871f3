package main

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"unison/config"
	"unison/database"
	"unison/friends"
	"unison/handlers"
	"unison/store"
	"unison/websocket"
)

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if parsed, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(parsed)
	}
	return cfg.Build()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.MysqlDSN)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.CreateTables(db); err != nil {
		logger.Fatal("failed to create tables", zap.Error(err))
	}

	st := store.NewMySQL(db)
	tokens := store.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	hub := websocket.NewHub()
	go hub.Run()

	friendSvc := friends.NewService(st, hub, logger)
	h := handlers.New(st, tokens, friendSvc, logger)

	r := handlers.NewRouter(h, tokens, websocket.Serve(hub, tokens, logger), logger, cfg.CORSOrigins)

	logger.Info("server starting", zap.String("addr", cfg.ServerAddr))
	if err := r.Run(cfg.ServerAddr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
