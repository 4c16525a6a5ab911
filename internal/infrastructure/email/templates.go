package email

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// Inline HTML, no template engine. The two messages are short enough
// that string building keeps them readable.

func escapeMultiline(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}

func renderOwnerNotification(msg ContactMessage) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333; border-bottom: 2px solid #007bff; padding-bottom: 10px;">
    New message from your portfolio
  </h2>

  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #495057; margin-top: 0;">Contact details:</h3>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Subject:</strong> %s</p>
  </div>

  <div style="background-color: #ffffff; padding: 20px; border: 1px solid #dee2e6; border-radius: 8px;">
    <h3 style="color: #495057; margin-top: 0;">Message:</h3>
    <p style="line-height: 1.6; color: #333;">%s</p>
  </div>

  <div style="margin-top: 20px; padding: 15px; background-color: #e9ecef; border-radius: 8px; font-size: 14px; color: #6c757d;">
    <p><strong>Date:</strong> %s</p>
  </div>
</div>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Subject),
		escapeMultiline(msg.Message),
		time.Now().Format("2006-01-02 15:04:05 MST"),
	)
}

func renderSubmitterConfirmation(msg ContactMessage, ownerName string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Hi %s!</h2>

  <p>Thanks for contacting me through my portfolio. I have received your message:</p>

  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Subject:</strong> %s</p>
    <p><strong>Message:</strong> %s</p>
  </div>

  <p>I will get back to you within 24 hours.</p>
  <p><strong>%s</strong></p>

  <hr style="margin: 30px 0; border: none; border-top: 1px solid #dee2e6;">
  <p style="font-size: 12px; color: #6c757d;">
    This is an automated email. Please do not reply to this message.
  </p>
</div>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Subject),
		escapeMultiline(msg.Message),
		html.EscapeString(ownerName),
	)
}
