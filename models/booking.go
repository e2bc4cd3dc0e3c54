package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// OwnerAnonymous is recorded when a booking is submitted without a session.
const OwnerAnonymous = "anonymous"

// BookingRequest is the client-submitted booking form.
type BookingRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Service string `json:"service" binding:"required"`
	Trainer string `json:"trainer"`
	Date    string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Time    string `json:"time" binding:"required"` // fixed slot, e.g. "08:00"
}

// Booking is the persisted booking record.
type Booking struct {
	ID        string    `firestore:"-" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	Email     string    `firestore:"email" json:"email"`
	Phone     string    `firestore:"phone" json:"phone"`
	Service   string    `firestore:"service" json:"service"`
	Trainer   string    `firestore:"trainer" json:"trainer"`
	Date      string    `firestore:"date" json:"date"`
	Time      string    `firestore:"time" json:"time"`
	OwnerID   string    `firestore:"ownerId" json:"ownerId"`
	Status    string    `firestore:"status" json:"status"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}

// BookingConfirmation is returned to the client once the primary write has
// succeeded. It mirrors the submitted request rather than a read-back of the
// stored record.
type BookingConfirmation struct {
	BookingID    string `json:"bookingId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Service      string `json:"service"`
	Trainer      string `json:"trainer,omitempty"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Status       string `json:"status"`
	EmailPreview string `json:"emailPreview"`
}
