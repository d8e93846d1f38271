package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ConnectDB(cfg *Config) (*mongo.Client, *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Unable to create Mongo client: %v", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		log.Fatalf("Unable to ping database: %v", err)
	}

	db := client.Database(cfg.DBName)
	ensureIndexes(ctx, db)

	log.Println("Database connected successfully")
	return client, db
}

// ensureIndexes creates the unique indexes the stores rely on: one user per
// email, one cart document per user.
func ensureIndexes(ctx context.Context, db *mongo.Database) {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("Failed to create users.email index: %v", err)
	}

	_, err = db.Collection("carts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("Failed to create carts.user_id index: %v", err)
	}
}

func CloseDB(client *mongo.Client) {
	if client != nil {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error closing database connection: %v", err)
			return
		}
		log.Println("Database connection closed")
	}
}
