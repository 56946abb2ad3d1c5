package notify

import (
	"context"
	"fmt"
	"html"

	"jobboard-backend/internal/shared/metrics"
	"jobboard-backend/internal/shared/telemetry"
)

// FireAndForget sends in the background and logs failure. The caller's
// success never depends on delivery.
func FireAndForget(n Notifier, to, subject, htmlBody string) {
	if n == nil {
		return
	}
	go func() {
		if err := n.Send(context.Background(), to, subject, htmlBody); err != nil {
			metrics.IncNotifyFailed()
			telemetry.Error("notify.send_failed", map[string]any{
				"to":      to,
				"subject": subject,
				"error":   err.Error(),
			})
		}
	}()
}

// Welcome returns the registration email.
func Welcome(name string) (string, string) {
	return "Welcome to the job board",
		fmt.Sprintf("<p>Hi %s,</p><p>Your account is ready. Browse open roles and start applying.</p>", html.EscapeString(name))
}

// ApplicationReceived returns the email sent to a job poster on a new application.
func ApplicationReceived(jobTitle, applicantName string) (string, string) {
	return fmt.Sprintf("New application for %s", jobTitle),
		fmt.Sprintf("<p>%s applied to <strong>%s</strong>.</p>", html.EscapeString(applicantName), html.EscapeString(jobTitle))
}

// ApplicationStatusChanged returns the email sent to an applicant on a status change.
func ApplicationStatusChanged(jobTitle, status string) (string, string) {
	return fmt.Sprintf("Update on your application for %s", jobTitle),
		fmt.Sprintf("<p>Your application for <strong>%s</strong> is now <strong>%s</strong>.</p>", html.EscapeString(jobTitle), html.EscapeString(status))
}

// PasswordReset returns the reset-token email.
func PasswordReset(token string) (string, string) {
	return "Password reset requested",
		fmt.Sprintf("<p>Use this token to reset your password: <code>%s</code></p><p>If you did not ask for this, ignore this email.</p>", html.EscapeString(token))
}
