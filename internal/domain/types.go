package domain

import "strings"

type (
	Email    = string
	Password = string

	CourseId     = string
	AssignmentId = string
)

// NormalizeEmail is applied before any ledger lookup or write so that
// casing and stray whitespace never create a second identity.
func NormalizeEmail(email Email) Email {
	return strings.ToLower(strings.TrimSpace(email))
}
