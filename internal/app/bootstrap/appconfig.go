// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig covers framework-level settings (HTTP ports, TLS,
// logging level, CORS, request limits). AppConfig carries everything
// specific to this service, which for Younifirst is just the MongoDB
// connection. Absence of a reachable database degrades the service
// (empty reads, 503 writes) instead of aborting startup.
type AppConfig struct {
	MongoURI            string        // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase       string        // Database name within MongoDB
	MongoConnectTimeout time.Duration // Deadline for the startup connect + ping
	MongoMaxPoolSize    uint64        // Max connection pool size
}
