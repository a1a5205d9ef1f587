package container

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/visitpazar/api/internal/config"
	"github.com/visitpazar/api/internal/services"
	"github.com/visitpazar/api/internal/store"
	"github.com/visitpazar/api/internal/wiki"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	Config *config.Config

	MongoClient *mongo.Client
	Store       *store.Mongo
	Wiki        *wiki.Client

	PlaceService   *services.PlaceService
	CatalogService *services.CatalogService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	mongoClient *mongo.Client,
	cache *redis.Client,
) *Container {
	documentStore := store.NewMongo(mongoClient, cfg.DatabaseName)

	// A nil *redis.Client must stay a nil interface so the fetcher sees
	// cache-off rather than a typed nil.
	var summaryCache wiki.SummaryCache
	if cache != nil {
		summaryCache = cache
	}
	wikiClient := wiki.NewClient(cfg.WikiBaseURL, summaryCache, logger)

	return &Container{
		Logger:         logger,
		Config:         cfg,
		MongoClient:    mongoClient,
		Store:          documentStore,
		Wiki:           wikiClient,
		PlaceService:   services.NewPlaceService(documentStore, wikiClient, logger),
		CatalogService: services.NewCatalogService(documentStore),
	}
}
