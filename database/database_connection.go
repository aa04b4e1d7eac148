package database

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

var dbClient *mongo.Client

// Connect dials MongoDB once and keeps the client for the whole process.
// Transactions require every collection handle to come from this client.
func Connect() *mongo.Client {
	if dbClient != nil {
		return dbClient
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	uri := os.Getenv("MONGODB_URI")
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)
	client, err := mongo.Connect(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Ping(context.TODO(), readpref.Primary()); err != nil {
		panic(err)
	}

	dbClient = client
	return dbClient
}

// Client returns the shared client, connecting on first use.
func Client() *mongo.Client {
	return Connect()
}

// Database returns the configured application database.
func Database() *mongo.Database {
	return Connect().Database(os.Getenv("DATABASE_NAME"))
}

// OpenCollection returns a handle in the application database.
func OpenCollection(collectionName string) *mongo.Collection {
	return Database().Collection(collectionName)
}
