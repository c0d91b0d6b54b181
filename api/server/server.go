package server

import (
	"context"
	"log"
	"time"

	"github.com/CPU-commits/Intranet_BLearning/aws_s3"
	"github.com/CPU-commits/Intranet_BLearning/db"
	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/logger"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/repositories"
	"github.com/CPU-commits/Intranet_BLearning/services"
	"github.com/CPU-commits/Intranet_BLearning/settings"
	"github.com/CPU-commits/Intranet_BLearning/stack"
	"go.uber.org/zap"
)

var settingsData = settings.GetSettings()

// newDeps connects Mongo and every optional backend that is configured.
// A missing optional backend leaves the no-op implementation in place.
func newDeps(zapLogger *zap.Logger) (*services.Deps, *stack.NatsClient) {
	mongoConn, err := db.NewConnection(db.MongoOptions{
		Connection: settingsData.MONGO_CONNECTION,
		Host:       settingsData.MONGO_HOST,
		Username:   settingsData.MONGO_ROOT_USERNAME,
		Password:   settingsData.MONGO_ROOT_PASSWORD,
		Database:   settingsData.MONGO_DB,
	})
	if err != nil {
		zapLogger.Fatal("mongo connection", zap.Error(err))
	}
	ctx, cancel := context.WithTimeout(context.Background(), db.CONNECTION_TIMEOUT)
	defer cancel()
	if err := models.EnsureCollections(ctx, mongoConn); err != nil {
		zapLogger.Fatal("mongo collections", zap.Error(err))
	}

	deps := &services.Deps{
		Repositories: repositories.NewRepositories(mongoConn),
		Tokens: services.NewTokenManager(
			settingsData.JWT_SECRET_KEY,
			settingsData.JWT_EXPIRATION_HOURS,
		),
		Logger:  zapLogger,
		AppName: settingsData.APP_NAME,
	}
	// Elasticsearch
	if settingsData.ELS_HOST != "" {
		es, err := db.NewConnectionEs(db.ElasticOptions{
			Host:     settingsData.ELS_HOST,
			Port:     settingsData.ELS_PORT,
			Username: settingsData.ELS_USERNAME,
			Password: settingsData.ELS_PASSWORD,
			Secure:   settingsData.NODE_ENV == "prod",
		})
		if err != nil {
			zapLogger.Warn("elasticsearch disabled", zap.Error(err))
		} else {
			deps.Search = repositories.NewCourseSearchRepository(es)
		}
	}
	// Redis
	if settingsData.REDIS_HOST != "" {
		client, err := db.NewConnectionRedis(db.RedisOptions{
			Host:     settingsData.REDIS_HOST,
			Password: settingsData.REDIS_PASSWORD,
		})
		if err != nil {
			zapLogger.Warn("redis disabled", zap.Error(err))
		} else {
			deps.Cache = repositories.NewCacheRepository(
				client,
				settingsData.APP_NAME,
				time.Duration(settingsData.CACHE_TTL_SECONDS)*time.Second,
			)
		}
	}
	// S3
	if settingsData.AWS_BUCKET != "" {
		storage, err := aws_s3.NewAWSS3(settingsData.AWS_REGION, settingsData.AWS_BUCKET)
		if err != nil {
			zapLogger.Warn("s3 disabled", zap.Error(err))
		} else {
			deps.Storage = storage
		}
	}
	// Nats
	var nats *stack.NatsClient
	if settingsData.NATS_HOST != "" {
		nats, err = stack.NewNats(settingsData.NATS_HOST)
		if err != nil {
			zapLogger.Warn("nats disabled", zap.Error(err))
		} else {
			deps.Events = nats
		}
	}
	return deps, nats
}

func Init() {
	zapLogger := logger.GetLogger(settingsData.NODE_ENV)
	defer zapLogger.Sync()

	if settingsData.JWT_SECRET_KEY == "" {
		zapLogger.Fatal("JWT_SECRET_KEY is required")
	}
	forms.InitValidators()

	deps, nats := newDeps(zapLogger)
	s := services.NewServices(deps)
	if nats != nil {
		defer nats.Close()
		if err := s.Courses.ServeCourseLookup(nats); err != nil {
			zapLogger.Error("course lookup responder", zap.Error(err))
		}
	}

	router := NewRouter(s, RouterOptions{
		ClientURL: settingsData.CLIENT_URL,
		Logger:    zapLogger,
		Tokens:    deps.Tokens,
	})
	// Init server
	if err := router.Run(":" + settingsData.PORT); err != nil {
		log.Fatalf("Error init server")
	}
}
