// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database dependencies for the app.
//
// Both fields are nil when the database was unreachable at startup; every
// handler receiving them checks for that and degrades (empty reads,
// explicit 503 writes) instead of assuming a live connection.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
}
