package errors

import "net/http"

// Kind tags the rejection taxonomy. Every failure the portal core can
// produce is one of these; none of them is fatal and none of them
// leaves a ledger partially mutated.
type Kind string

const (
	IncompleteFields    Kind = "incomplete_fields"
	PasswordMismatch    Kind = "password_mismatch"
	DuplicateAccount    Kind = "duplicate_account"
	InvalidAdminKey     Kind = "invalid_admin_key"
	WeakAdminCredential Kind = "weak_admin_credential"
	AccountNotFound     Kind = "account_not_found"
	RoleMismatch        Kind = "role_mismatch"
	IncorrectPassword   Kind = "incorrect_password"
)

// Rejection is the structured non-fatal outcome returned instead of a
// state mutation. Default handler treatment of any other error is 500;
// rejections carry their own status code.
type Rejection struct {
	Kind    Kind
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

func (r *Rejection) StatusCode() int {
	switch r.Kind {
	case DuplicateAccount:
		return http.StatusConflict
	case AccountNotFound:
		return http.StatusNotFound
	case IncorrectPassword, RoleMismatch:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

// StatusCoder is implemented by errors that carry their own HTTP
// status; anything else is treated as an internal server error.
type StatusCoder interface {
	error
	StatusCode() int
}

// IsRejection reports whether err is a portal rejection, optionally of
// specific kinds.
func IsRejection(err error, kinds ...Kind) bool {
	r, ok := err.(*Rejection)
	if !ok {
		return false
	}
	if len(kinds) == 0 {
		return true
	}
	for _, k := range kinds {
		if r.Kind == k {
			return true
		}
	}
	return false
}
