package database

import (
	"context"
	"log"

	"samfit/config"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// FirestoreClient is the global Firestore client instance.
var FirestoreClient *firestore.Client

// InitDB initializes the Firestore connection.
func InitDB() {
	ctx := context.Background()

	client, err := firestore.NewClient(ctx, config.AppConfig.FirebaseProjectID,
		option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsKey))
	if err != nil {
		log.Fatalf("failed to connect to Firestore: %v", err)
	}
	FirestoreClient = client
	log.Println("Connected to Firestore successfully!")
}

// Collection returns the prefixed collection name, e.g. "samfit__bookings".
func Collection(name string) string {
	return config.AppConfig.CollectionPrefix + name
}
