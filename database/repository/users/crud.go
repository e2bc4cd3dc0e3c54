package usersRepo

import (
	"context"

	"samfit/database"
	"samfit/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type firestoreUserRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreUserRepo returns a UserRepository backed by the "user"
// collection (singular, matching the deployed web client).
func NewFirestoreUserRepo() UserRepository {
	return &firestoreUserRepo{
		coll: database.FirestoreClient.Collection(database.Collection("user")),
	}
}

// GetByUID returns a profile by auth UID, or nil when absent.
func (r *firestoreUserRepo) GetByUID(ctx context.Context, uid string) (*models.UserProfile, error) {
	snap, err := r.coll.Doc(uid).Get(ctx)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return decodeProfile(snap)
}

// CreateIfAbsent creates the profile document only when none exists.
func (r *firestoreUserRepo) CreateIfAbsent(ctx context.Context, uid string, profile models.UserProfile) (bool, error) {
	_, err := r.coll.Doc(uid).Create(ctx, profile)
	if err != nil {
		if database.IsAlreadyExists(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Update merges the given fields into the profile document.
func (r *firestoreUserRepo) Update(ctx context.Context, uid string, fields map[string]interface{}) error {
	_, err := r.coll.Doc(uid).Set(ctx, fields, firestore.MergeAll)
	return err
}

// ListAll returns every member profile.
func (r *firestoreUserRepo) ListAll(ctx context.Context) ([]models.UserProfile, error) {
	iter := r.coll.Documents(ctx)
	defer iter.Stop()
	return collectProfiles(iter)
}

// Delete removes the profile document. The auth record is the caller's
// responsibility.
func (r *firestoreUserRepo) Delete(ctx context.Context, uid string) error {
	_, err := r.coll.Doc(uid).Delete(ctx)
	return err
}

// Watch streams collection snapshots until ctx is cancelled.
func (r *firestoreUserRepo) Watch(ctx context.Context) (<-chan []models.UserProfile, <-chan error) {
	snapshots := r.coll.Snapshots(ctx)
	out := make(chan []models.UserProfile)
	errc := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errc)
		defer snapshots.Stop()
		for {
			snap, err := snapshots.Next()
			if err != nil {
				if ctx.Err() == nil {
					errc <- err
				}
				return
			}
			profiles, err := collectProfiles(snap.Documents)
			if err != nil {
				errc <- err
				return
			}
			select {
			case out <- profiles:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, errc
}

func collectProfiles(iter *firestore.DocumentIterator) ([]models.UserProfile, error) {
	profiles := []models.UserProfile{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		p, err := decodeProfile(snap)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

func decodeProfile(snap *firestore.DocumentSnapshot) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := snap.DataTo(&p); err != nil {
		return nil, &database.DecodeError{Collection: "user", DocID: snap.Ref.ID, Err: err}
	}
	p.UID = snap.Ref.ID
	return &p, nil
}
