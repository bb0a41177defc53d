package main

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/config"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/logger"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/server"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFile)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.WithError(err).Fatal("MongoDB connection failed")
	}

	app := server.New(cfg, client, log)
	if err := app.Run(); err != nil {
		log.WithError(err).Fatal("server failed")
	}
}
