// models/user.go
package models

import "time"

// User roles.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// UserProfile is the member profile document, keyed by the Firebase Auth UID.
type UserProfile struct {
	UID       string    `firestore:"-" json:"uid"`
	Name      string    `firestore:"name" json:"name"`
	Email     string    `firestore:"email" json:"email"`
	Phone     string    `firestore:"phone" json:"phone"`
	Program   string    `firestore:"program" json:"program"`
	PhotoURL  string    `firestore:"photoURL" json:"photoURL"`
	Role      string    `firestore:"role" json:"role"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}

// UserProfileUpdate carries the fields a member may change about themselves.
type UserProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Program  *string `json:"program,omitempty"`
	PhotoURL *string `json:"photoURL,omitempty"`
}
