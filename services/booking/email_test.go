package booking

import (
	"testing"

	"samfit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMailBody(t *testing.T) {
	req := models.BookingRequest{
		Name:    "Jane Doe",
		Service: "Crossfit",
		Trainer: "Mike Thompson",
		Date:    "2026-09-12",
		Time:    "18:00",
	}
	html, err := renderMailBody(req)
	require.NoError(t, err)
	assert.Contains(t, html, "Hi Jane Doe,")
	assert.Contains(t, html, "Service: Crossfit")
	assert.Contains(t, html, "Trainer: Mike Thompson")
	assert.Contains(t, html, "The Samfit Team")
}

func TestRenderMailBodyDefaultsTrainer(t *testing.T) {
	req := models.BookingRequest{Name: "Jane", Service: "Yoga Classes", Date: "2026-09-12", Time: "06:00"}
	html, err := renderMailBody(req)
	require.NoError(t, err)
	assert.Contains(t, html, "Trainer: Expert Staff")
}

func TestRenderMailBodyEscapesInput(t *testing.T) {
	req := models.BookingRequest{Name: "<script>alert(1)</script>", Service: "Crossfit", Date: "2026-09-12", Time: "18:00"}
	html, err := renderMailBody(req)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestFallbackEmailPreviewWithTrainer(t *testing.T) {
	req := models.BookingRequest{
		Name:    "Jane Doe",
		Service: "Personal Training",
		Trainer: "Sarah Jenkins",
		Date:    "2026-09-12",
		Time:    "08:00",
	}
	preview := fallbackEmailPreview(req)
	assert.Contains(t, preview, "Subject: Booking Confirmation - Personal Training")
	assert.Contains(t, preview, "Dear Jane Doe,")
	assert.Contains(t, preview, "Your booking for Personal Training on 2026-09-12 at 08:00 is confirmed!")
	assert.Contains(t, preview, "Trainer: Sarah Jenkins")
}

func TestFallbackEmailPreviewWithoutTrainer(t *testing.T) {
	req := models.BookingRequest{Name: "Jane", Service: "Crossfit", Date: "2026-09-12", Time: "18:00"}
	preview := fallbackEmailPreview(req)
	assert.NotContains(t, preview, "Trainer:")
}

func TestGenerationPrompt(t *testing.T) {
	req := models.BookingRequest{Name: "Jane", Service: "Crossfit", Date: "2026-09-12", Time: "18:00"}
	prompt := generationPrompt(req)
	assert.Contains(t, prompt, "Client Name: Jane")
	assert.Contains(t, prompt, "Trainer: Our Expert Staff")
	assert.Contains(t, prompt, "towel and water bottle")
}
