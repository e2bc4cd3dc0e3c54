package models

// MailMessage is the subject/body pair of a mail intent.
type MailMessage struct {
	Subject string `firestore:"subject" json:"subject"`
	HTML    string `firestore:"html" json:"html"`
}

// MailIntent is a write-only trigger document consumed by the external
// mail-dispatch integration. The service never reads it back.
type MailIntent struct {
	To      []string    `firestore:"to" json:"to"`
	Message MailMessage `firestore:"message" json:"message"`
}
