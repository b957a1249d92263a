package server

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"

	"items-api/internal/config"
	"items-api/internal/repositories/dynamo"
	"items-api/internal/router"
	"items-api/internal/services"
)

// Container holds all application dependencies. It is built once per process
// and shared read-only across concurrent request handlers; the DynamoDB
// client it holds is safe for concurrent reuse.
type Container struct {
	Config      *config.Config
	Logger      *logrus.Logger
	ItemService services.ItemService
	Router      *router.Router
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger := newLogger(cfg)

	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.AWS.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.AWS.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWS.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.EndpointURL)
		}
	})

	itemRepo := dynamo.NewItemRepository(client, cfg.Table.Name, logger)
	itemService := services.NewItemService(itemRepo, logger)

	return &Container{
		Config:      cfg,
		Logger:      logger,
		ItemService: itemService,
		Router:      router.New(itemService, cfg.CORS, logger),
	}, nil
}

// newLogger builds the process logger: JSON output in Lambda and production,
// human-readable text everywhere else.
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if config.IsServerlessMode() || cfg.Environment == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}
