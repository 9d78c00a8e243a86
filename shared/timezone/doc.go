// Package timezone provides timezone utilities for the application.
//
// Timestamps (created_at) are produced in the application timezone:
//
//	now := timezone.Now()
//	formatted := timezone.Format(now, "02/01/2006 15:04")
//
// Calendar dates (due_date) carry no timezone and are kept at midnight UTC:
//
//	due, err := timezone.ParseDate("02/01/2006", "05/10/2025")
//	text := timezone.FormatDate(due, "02/01/2006")
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
package timezone
