package main

import (
	"context"
	"fmt"
	"log"

	"tonotes/config"
	"tonotes/handler"
	"tonotes/repository"
	"tonotes/services"
	"tonotes/usecase"
	"tonotes/utils"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// app is the composition root shared by serve and the operator commands.
type app struct {
	cfg      *config.Config
	notes    *usecase.NotesService
	analysis *usecase.AnalysisService
	gate     *services.AccessGate
	mongo    *mongo.Client
	health   map[string]handler.Pinger
	closers  []func() error
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}
}

func connectMongo(ctx context.Context, db config.DatabaseConfig) (*mongo.Client, error) {
	return utils.NewMongoClient(ctx, utils.MongoClientOptions{
		URI:             db.URI,
		MaxPoolSize:     db.MaxPoolSize,
		MinPoolSize:     db.MinPoolSize,
		MaxConnIdleTime: db.MaxConnIdleTime,
		ConnectTimeout:  db.ConnectTimeout,
		RetryWrites:     db.RetryWrites,
	})
}

func connectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func loadLabels(language, file string) (services.LabelSet, error) {
	labels, err := services.LabelSetFor(language)
	if err != nil {
		return services.LabelSet{}, err
	}
	if file != "" {
		return services.LoadLabelSet(file, labels)
	}
	return labels, nil
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg, health: map[string]handler.Pinger{}}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		client, err := connectRedis(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		redisClient = client
		a.closers = append(a.closers, client.Close)
		a.health["redis"] = handler.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
	}

	var store repository.NoteStore
	switch cfg.Storage {
	case config.BackendMongo:
		client, err := connectMongo(ctx, cfg.Database)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.mongo = client
		a.closers = append(a.closers, func() error { return client.Disconnect(context.Background()) })
		a.health["mongo"] = handler.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		})
		store = repository.GetNotesRepo(client, cfg.Database.DatabaseName)
	case config.BackendRedis:
		store = repository.NewRedisNotesRepo(redisClient)
	default:
		log.Printf("using in-memory note store; notes are lost on restart")
		store = repository.NewMemoryNotesRepo()
	}

	var revocations services.TokenRevocations
	if redisClient != nil {
		revocations = &services.RedisTokenBlacklist{Client: redisClient}
	} else {
		revocations = services.NewMemoryTokenBlacklist(nil)
	}

	labels, err := loadLabels(cfg.Analysis.Language, cfg.Analysis.LabelsFile)
	if err != nil {
		a.Close()
		return nil, err
	}

	generator := services.NewGeminiClient(cfg.Analysis.BaseURL, cfg.Analysis.Model, cfg.Analysis.APIKey, cfg.Analysis.Timeout)
	if cfg.Analysis.APIKey == "" {
		log.Printf("GEMINI_API_KEY is not set; note analysis will fail")
	}

	a.notes = usecase.NewNotesService(store, utils.RealClock{})
	a.analysis = usecase.NewAnalysisService(a.notes, generator, labels)
	a.gate = services.NewAccessGate(services.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer, nil), revocations)
	return a, nil
}
