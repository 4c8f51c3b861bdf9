package infra

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.uber.org/zap"
)

// Database used when the connection string carries no path, as mongoose does.
const defaultMongoDatabase = "test"

// SetupMongo creates the client and returns the database named in the URI.
// A failed ping is only logged: requests fail later until the server is reachable.
func SetupMongo(ctx context.Context, uri string) (*mongo.Client, *mongo.Database, error) {
	dbName := defaultMongoDatabase
	if cs, err := connstring.ParseAndValidate(uri); err == nil && cs.Database != "" {
		dbName = cs.Database
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		zap.S().Errorf("MongoDB ping failed: %v", err)
	} else {
		zap.S().Infof("MongoDB Connected: database=%s", dbName)
	}

	return client, client.Database(dbName), nil
}

func CloseMongo(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		zap.S().Warnf("Failed to disconnect MongoDB: %v", err)
	}
}
