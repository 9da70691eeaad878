package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB connection instance
var MongoClient *mongo.Client

var dbName string

// ConnectMongoDB initializes the database connection and ensures the
// unique indexes the duplicate pre-checks rely on.
func ConnectMongoDB(uri, database string) *mongo.Database {
	clientOptions := options.Client().ApplyURI(uri)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}

	// Ping the database to verify connection
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatalf("MongoDB ping failed: %v", err)
	}

	fmt.Println("✅ Connected to MongoDB")
	MongoClient = client
	dbName = database

	ensureIndexes(ctx, client.Database(database))
	return client.Database(database)
}

// ensureIndexes creates the unique indexes on users and groups. Handlers
// pre-check for duplicates, but two near-simultaneous writes can both pass
// the pre-check; the index is the actual backstop.
func ensureIndexes(ctx context.Context, database *mongo.Database) {
	userIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := database.Collection("users").Indexes().CreateMany(ctx, userIndexes); err != nil {
		log.Printf("Warning: failed to create user indexes: %v", err)
	}

	groupIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := database.Collection("groups").Indexes().CreateOne(ctx, groupIndex); err != nil {
		log.Printf("Warning: failed to create group index: %v", err)
	}
}

// GetCollection returns a MongoDB collection from the connected database
func GetCollection(collectionName string) *mongo.Collection {
	return MongoClient.Database(dbName).Collection(collectionName)
}
