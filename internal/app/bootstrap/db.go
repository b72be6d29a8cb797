// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/younifirst/younifirst/internal/app/system/indexes"
	"github.com/younifirst/younifirst/internal/app/system/validators"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the process-wide MongoDB connection.
//
// A failed connect or ping is logged and returns empty DBDeps rather than
// an error: the service stays up with reads degraded to empty results and
// writes answering 503, and the /test endpoint reports the condition.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	connectCtx, cancel := context.WithTimeout(ctx, appCfg.MongoConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		logger.Warn("mongo connect failed; continuing without a database",
			zap.Error(err))
		return DBDeps{}, nil
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		logger.Warn("mongo ping failed; continuing without a database",
			zap.Error(err))
		_ = client.Disconnect(ctx)
		return DBDeps{}, nil
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the collections and lookup indexes the API relies
// on. Skipped entirely when no database is available.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		logger.Warn("schema setup skipped: no database available")
		return nil
	}
	if err := validators.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		return err
	}
	return indexes.EnsureAll(ctx, deps.MongoDatabase, logger)
}
