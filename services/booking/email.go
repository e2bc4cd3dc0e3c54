package booking

import (
	"fmt"
	"html/template"
	"strings"

	"samfit/models"
)

// mailTemplate renders the HTML body of the confirmation mail intent. This is
// what actually reaches the member's inbox; the generated preview is
// display-only.
var mailTemplate = template.Must(template.New("confirmation").Parse(`<p>Hi {{.Name}},</p>
<p>Your booking is confirmed!</p>
<p>Here are your session details:<br>
Service: {{.Service}}<br>
Trainer: {{.TrainerOrStaff}}<br>
Date: {{.Date}}<br>
Time: {{.Time}}</p>
<p>Please arrive 10 minutes early.</p>
<p>Best regards,<br>The Samfit Team</p>`))

type mailData struct {
	Name           string
	Service        string
	TrainerOrStaff string
	Date           string
	Time           string
}

func renderMailBody(req models.BookingRequest) (string, error) {
	trainer := req.Trainer
	if trainer == "" {
		trainer = "Expert Staff"
	}
	var sb strings.Builder
	err := mailTemplate.Execute(&sb, mailData{
		Name:           req.Name,
		Service:        req.Service,
		TrainerOrStaff: trainer,
		Date:           req.Date,
		Time:           req.Time,
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

func mailSubject(req models.BookingRequest) string {
	return fmt.Sprintf("Booking Confirmation: %s", req.Service)
}

// fallbackEmailPreview is the statically templated confirmation text shown
// when no generated copy is available.
func fallbackEmailPreview(req models.BookingRequest) string {
	trainerLine := ""
	if req.Trainer != "" {
		trainerLine = fmt.Sprintf("Trainer: %s", req.Trainer)
	}
	return fmt.Sprintf(`Subject: Booking Confirmation - %s

Dear %s,

Your booking for %s on %s at %s is confirmed!
%s

Please arrive 10 minutes early with your gear.

Best,
Samfit Team`, req.Service, req.Name, req.Service, req.Date, req.Time, trainerLine)
}

// generationPrompt builds the text-generation prompt for the confirmation
// email copy.
func generationPrompt(req models.BookingRequest) string {
	trainer := req.Trainer
	if trainer == "" {
		trainer = "Our Expert Staff"
	}
	return fmt.Sprintf(`Write a friendly, high-energy confirmation email for a gym session booking.
Do not include placeholders. Use the provided data below.

Booking Details:
- Client Name: %s
- Service: %s
- Trainer: %s
- Date: %s
- Time: %s

The email should be professional but motivating. Mention bringing a towel and water bottle.
Format it clearly with a Subject line.`, req.Name, req.Service, trainer, req.Date, req.Time)
}
