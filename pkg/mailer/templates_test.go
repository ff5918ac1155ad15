package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPassthrough(t *testing.T) {
	subject, text := Render(&EmailJob{Subject: "Hi", Text: "Body"})
	assert.Equal(t, "Hi", subject)
	assert.Equal(t, "Body", text)
}

func TestRenderContactMessage(t *testing.T) {
	subject, text := Render(&EmailJob{
		Template: TemplateContactMessage,
		Data: map[string]any{
			"Name":    "Made",
			"Email":   "made@example.com",
			"Message": "Love the site",
		},
	})
	assert.Equal(t, "New contact message from Made", subject)
	assert.Contains(t, text, "made@example.com")
	assert.Contains(t, text, "Love the site")
}

func TestRenderPromotionStatus(t *testing.T) {
	subject, text := Render(&EmailJob{
		Template: TemplatePromotionStatus,
		Data:     map[string]any{"Title": "Dive Week", "Status": "approved"},
	})
	assert.Contains(t, subject, "Dive Week")
	assert.Contains(t, subject, "approved")
	assert.Contains(t, text, "approved")

	_, denied := Render(&EmailJob{
		Template: TemplatePromotionStatus,
		Data:     map[string]any{"Title": "Dive Week", "Status": "denied"},
	})
	assert.Contains(t, denied, "denied")
}
