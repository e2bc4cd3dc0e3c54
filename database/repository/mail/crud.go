package mailRepo

import (
	"context"

	"samfit/database"
	"samfit/models"

	"cloud.google.com/go/firestore"
)

type firestoreMailRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreMailRepo returns a MailRepository backed by the "mail"
// trigger collection.
func NewFirestoreMailRepo() MailRepository {
	return &firestoreMailRepo{
		coll: database.FirestoreClient.Collection(database.Collection("mail")),
	}
}

// Enqueue writes a mail intent and returns its document ID.
func (r *firestoreMailRepo) Enqueue(ctx context.Context, intent models.MailIntent) (string, error) {
	ref := r.coll.NewDoc()
	if _, err := ref.Create(ctx, intent); err != nil {
		return "", err
	}
	return ref.ID, nil
}
