package mailer

import (
	"fmt"
	"strings"
)

// Template names understood by the email worker.
const (
	TemplateContactMessage  = "contact_message"
	TemplatePromotionStatus = "promotion_status"
)

func str(data map[string]any, key string) string {
	if v, ok := data[key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// Render resolves a job's template into subject and text body. Jobs with an
// explicit Subject/Text pass through untouched.
func Render(job *EmailJob) (subject, text string) {
	if job.Template == "" {
		return job.Subject, job.Text
	}
	switch job.Template {
	case TemplateContactMessage:
		subject = "New contact message from " + str(job.Data, "Name")
		var b strings.Builder
		fmt.Fprintf(&b, "From: %s <%s>\n\n", str(job.Data, "Name"), str(job.Data, "Email"))
		b.WriteString(str(job.Data, "Message"))
		text = b.String()
	case TemplatePromotionStatus:
		status := str(job.Data, "Status")
		title := str(job.Data, "Title")
		subject = fmt.Sprintf("Your promotion %q is now %s", title, status)
		switch status {
		case "approved":
			text = fmt.Sprintf("Good news! Your promotion %q has been approved and is now visible to travelers.", title)
		case "denied":
			text = fmt.Sprintf("Your promotion %q was reviewed and denied. Reply to this email if you believe this is a mistake.", title)
		default:
			text = fmt.Sprintf("Your promotion %q has been moved back to review (status: %s).", title, status)
		}
	default:
		subject = job.Subject
		if subject == "" {
			subject = "Notification"
		}
		text = job.Text
	}
	return subject, text
}
