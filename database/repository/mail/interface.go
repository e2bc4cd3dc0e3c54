package mailRepo

import (
	"context"

	"samfit/models"
)

// MailRepository enqueues outbound-mail trigger documents. Write-only: the
// external mail-dispatch integration consumes the collection, and the service
// never reads an intent back.
type MailRepository interface {
	Enqueue(ctx context.Context, intent models.MailIntent) (string, error)
}
