package user

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// firebaseIdentity adapts the Firebase Auth admin client to the Identity
// interface.
type firebaseIdentity struct {
	client *auth.Client
}

// NewFirebaseIdentity wraps a Firebase Auth client.
func NewFirebaseIdentity(client *auth.Client) Identity {
	return &firebaseIdentity{client: client}
}

func (f *firebaseIdentity) UpdateDisplayProfile(ctx context.Context, uid, name, photoURL string) error {
	update := &auth.UserToUpdate{}
	if name != "" {
		update = update.DisplayName(name)
	}
	if photoURL != "" {
		update = update.PhotoURL(photoURL)
	}
	_, err := f.client.UpdateUser(ctx, uid, update)
	return err
}

func (f *firebaseIdentity) DeleteUser(ctx context.Context, uid string) error {
	return f.client.DeleteUser(ctx, uid)
}

func (f *firebaseIdentity) GetUserEmail(ctx context.Context, uid string) (string, error) {
	rec, err := f.client.GetUser(ctx, uid)
	if err != nil {
		return "", err
	}
	return rec.Email, nil
}
