package validate

import (
	"regexp"

	"github.com/portfolio/backend/internal/model"
)

const (
	maxNameLength    = 100
	maxMessageLength = 5000
)

// emailPattern accepts local@domain with no whitespace and at least one
// dot-delimited label after the @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Kind identifies which class of validation check failed.
type Kind string

const (
	KindMissingField          Kind = "missing_field"
	KindInvalidEmailFormat    Kind = "invalid_email_format"
	KindFieldLengthOutOfRange Kind = "field_length_out_of_range"
)

// Error describes a single failed validation check.
type Error struct {
	Kind    Kind
	Details string
}

func (e *Error) Error() string { return e.Details }

// Submission checks a contact form submission and returns the first failing
// check, or nil if all checks pass. Checks run in a fixed order and
// short-circuit: presence, email format, name length, message length.
// Fields are checked as-is — no trimming or case normalization.
func Submission(sub model.Submission) *Error {
	if sub.FullName == "" || sub.Email == "" || sub.Message == "" {
		return &Error{
			Kind:    KindMissingField,
			Details: "All fields (fullName, email, message) are required",
		}
	}

	if !emailPattern.MatchString(sub.Email) {
		return &Error{
			Kind:    KindInvalidEmailFormat,
			Details: "Please provide a valid email address",
		}
	}

	if n := len([]rune(sub.FullName)); n < 1 || n > maxNameLength {
		return &Error{
			Kind:    KindFieldLengthOutOfRange,
			Details: "Name must be between 1 and 100 characters",
		}
	}

	if n := len([]rune(sub.Message)); n < 1 || n > maxMessageLength {
		return &Error{
			Kind:    KindFieldLengthOutOfRange,
			Details: "Message must be between 1 and 5000 characters",
		}
	}

	return nil
}
