package service

import (
	"fmt"
	"time"

	"github.com/getplanner/backend/internal/domain"
)

// formatTripDate renders a timestamp the way trip emails display dates,
// e.g. "January 10, 2024".
func formatTripDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// ownerConfirmationEmail builds the message sent to the trip owner after
// creation, asking them to confirm the trip via the embedded link.
func ownerConfirmationEmail(trip domain.Trip, confirmationLink string) (subject, body string) {
	starts := formatTripDate(trip.StartsAt)
	ends := formatTripDate(trip.EndsAt)

	subject = fmt.Sprintf("Confirm your trip to %s on %s", trip.Destination, starts)
	body = fmt.Sprintf(`
		<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
			<p>You requested the creation of a trip to <strong>%s</strong> from <strong>%s</strong> to <strong>%s</strong>.</p>
			<p></p>
			<p>To confirm the trip, click the link below:</p>
			<p></p>
			<p>
				<a href="%s">Confirm trip</a>
			</p>
			<p></p>
			<p>If you don't know what this email is about, just ignore it.</p>
		</div>
	`, trip.Destination, starts, ends, confirmationLink)
	return subject, body
}

// participantConfirmationEmail builds the message sent to an invitee, either
// when they are invited or as a reminder when the trip itself is confirmed.
// The body only varies per participant in its confirmation link.
func participantConfirmationEmail(trip domain.Trip, confirmationLink string) (subject, body string) {
	starts := formatTripDate(trip.StartsAt)
	ends := formatTripDate(trip.EndsAt)

	subject = fmt.Sprintf("Confirm your spot on the trip to %s on %s", trip.Destination, starts)
	body = fmt.Sprintf(`
		<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
			<p>You have been invited to join a trip to <strong>%s</strong> from <strong>%s</strong> to <strong>%s</strong>.</p>
			<p></p>
			<p>To confirm your spot, click the link below:</p>
			<p></p>
			<p>
				<a href="%s">Confirm trip</a>
			</p>
			<p></p>
			<p>If you don't know what this email is about, just ignore it.</p>
		</div>
	`, trip.Destination, starts, ends, confirmationLink)
	return subject, body
}
