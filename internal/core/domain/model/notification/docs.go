// Package notification contains the Notification aggregate: outbound SMS
// records with delivery status and a retry budget consumed by the
// notification retry job.
package notification
