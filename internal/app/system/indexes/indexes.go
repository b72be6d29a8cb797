// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates the lookup indexes the API's query paths rely on.
//
// The index on user.email is deliberately NOT unique: registration enforces
// email uniqueness with a best-effort pre-check, and converting that to a
// unique index would change the documented write behavior. The index only
// keeps the pre-check and login lookups from scanning the collection.
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	specs := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{"user", mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}}},
		{"comment", mongo.IndexModel{Keys: bson.D{{Key: "post_id", Value: 1}}}},
	}

	for _, spec := range specs {
		name, err := db.Collection(spec.collection).Indexes().CreateOne(ctx, spec.model)
		if err != nil {
			logger.Error("index create failed",
				zap.String("collection", spec.collection),
				zap.Error(err))
			return err
		}
		logger.Debug("index ensured",
			zap.String("collection", spec.collection),
			zap.String("index", name))
	}
	return nil
}
