package bookingsRepo

import (
	"context"
	"sort"

	"samfit/database"
	"samfit/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type firestoreBookingRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreBookingRepo returns a BookingRepository backed by the
// "bookings" collection.
func NewFirestoreBookingRepo() BookingRepository {
	return &firestoreBookingRepo{
		coll: database.FirestoreClient.Collection(database.Collection("bookings")),
	}
}

// Create inserts a new booking record and returns its generated ID. The
// creation timestamp is assigned by the server via the serverTimestamp tag.
func (r *firestoreBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	ref := r.coll.NewDoc()
	if _, err := ref.Create(ctx, booking); err != nil {
		return "", err
	}
	return ref.ID, nil
}

// GetByID returns a booking by its document ID, or nil when absent.
func (r *firestoreBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	snap, err := r.coll.Doc(id).Get(ctx)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return decodeBooking(snap)
}

// ListAll returns every booking ordered by creation time, newest first.
func (r *firestoreBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	iter := r.coll.OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()
	return collectBookings(iter)
}

// ListByOwner returns the bookings submitted by one member. Sorted in memory
// to avoid requiring a composite index on (ownerId, createdAt).
func (r *firestoreBookingRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	iter := r.coll.Where("ownerId", "==", ownerID).Documents(ctx)
	defer iter.Stop()
	bookings, err := collectBookings(iter)
	if err != nil {
		return nil, err
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

// UpdateStatus transitions a booking's status and touches nothing else.
func (r *firestoreBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.coll.Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
	})
	return err
}

// Delete removes a booking record.
func (r *firestoreBookingRepo) Delete(ctx context.Context, id string) error {
	_, err := r.coll.Doc(id).Delete(ctx)
	return err
}

// Watch streams collection snapshots until ctx is cancelled.
func (r *firestoreBookingRepo) Watch(ctx context.Context) (<-chan []models.Booking, <-chan error) {
	snapshots := r.coll.OrderBy("createdAt", firestore.Desc).Snapshots(ctx)
	out := make(chan []models.Booking)
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
			bookings, err := collectBookings(snap.Documents)
			if err != nil {
				errc <- err
				return
			}
			select {
			case out <- bookings:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, errc
}

func collectBookings(iter *firestore.DocumentIterator) ([]models.Booking, error) {
	bookings := []models.Booking{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		b, err := decodeBooking(snap)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, nil
}

func decodeBooking(snap *firestore.DocumentSnapshot) (*models.Booking, error) {
	var b models.Booking
	if err := snap.DataTo(&b); err != nil {
		return nil, &database.DecodeError{Collection: "bookings", DocID: snap.Ref.ID, Err: err}
	}
	b.ID = snap.Ref.ID
	return &b, nil
}
