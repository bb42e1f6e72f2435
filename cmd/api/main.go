package main

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/resort-crew/api/internal/config"
	mongodoc "github.com/sngm3741/resort-crew/api/internal/infrastructure/mongo"
	redisinfra "github.com/sngm3741/resort-crew/api/internal/infrastructure/redis"
	recruitingapp "github.com/sngm3741/resort-crew/api/internal/recruiting/application"
	"github.com/sngm3741/resort-crew/api/internal/server"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		cfg.ServerLog.Fatalf("MongoDB 接続に失敗しました: %v", err)
	}

	if err := mongodoc.EnsureIndexes(ctx, client.Database(cfg.MongoDatabase), mongodoc.Collections{
		Postings:            cfg.PostingCollection,
		EmployerProfiles:    cfg.EmployerProfileCollection,
		LodgingProfiles:     cfg.LodgingProfileCollection,
		Reviews:             cfg.ReviewCollection,
		Applications:        cfg.ApplicationCollection,
		Notifications:       cfg.NotificationCollection,
		FailedNotifications: cfg.FailedNotificationCollection,
	}); err != nil {
		cfg.ServerLog.Fatalf("インデックス作成に失敗しました: %v", err)
	}

	var publisher recruitingapp.EventPublisher
	if cfg.RedisURL != "" {
		redisClient, err := redisinfra.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			cfg.ServerLog.Printf("Redis 接続に失敗しました。イベント配信を無効化します: %v", err)
		} else {
			defer redisClient.Close()
			publisher = redisinfra.NewEventPublisher(redisClient)
		}
	}

	app := server.New(cfg, client, publisher)
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("サーバー起動に失敗: %v", err)
	}
}
