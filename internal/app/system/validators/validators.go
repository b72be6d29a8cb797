// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Collections lists every collection this service reads or writes.
// Names are exact lowercase singular nouns; the API depends on them.
var Collections = []string{
	"user",
	"competition",
	"lostitem",
	"event",
	"forumpost",
	"comment",
}

// EnsureAll creates any missing collections so first reads and the
// diagnostics listing behave the same on a fresh database as on an
// established one. Failures are collected rather than aborting on the
// first problem.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string
	for _, coll := range Collections {
		if err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// ensureCollection creates <name> if it does not already exist.
// Uses ListCollectionNames first to avoid logging a create when it didn't happen.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) error {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if len(names) > 0 {
		return nil
	}
	if err := db.CreateCollection(ctx, name); err != nil {
		// Another process may have created it between the check and here.
		if isNamespaceExists(err) {
			return nil
		}
		return err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return nil
}

func isNamespaceExists(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 48 // NamespaceExists
	}
	return false
}
