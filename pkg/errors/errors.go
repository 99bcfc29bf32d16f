package errors

import "fmt"

// Machine-readable error kinds returned in API responses.
const (
	KindNotFound          = "not_found"
	KindReference         = "reference"
	KindInvalidState      = "invalid_state"
	KindInvalidTransition = "invalid_transition"
	KindPartialCommit     = "partial_commit"
	KindConflict          = "conflict"
	KindUnauthorized      = "unauthorized"
	KindBadRequest        = "bad_request"
	KindInternal          = "internal"
)

var (
	// JWT and tokens
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenIsNotAccess     = fmt.Errorf("token is not an access token")

	// Authorization
	ErrEmptyAuthHeader    = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader  = fmt.Errorf("invalid authorization header format")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrUserExists         = fmt.Errorf("user already exists")

	// Entities
	ErrNotFound          = fmt.Errorf("record not found")
	ErrRequestNotFound   = fmt.Errorf("request not found")
	ErrEquipmentNotFound = fmt.Errorf("equipment not found")
	ErrTeamNotFound      = fmt.Errorf("team not found")
	ErrConflict          = fmt.Errorf("record already exists")
	ErrBadRequest        = fmt.Errorf("bad request")

	// Lifecycle engine
	ErrEquipmentReference = fmt.Errorf("referenced equipment not found")
	ErrEquipmentScrapped  = fmt.Errorf("equipment is scrapped")
)

// InvalidTransitionError is returned when a request status change does not
// follow the transition table. It carries both endpoints for diagnostics.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

func NewInvalidTransitionError(from, to string) error {
	return &InvalidTransitionError{From: from, To: to}
}

// PartialCommitError reports that a request was persisted but the dependent
// equipment counter write failed. The request stays persisted; the operator
// has to reconcile the counter of the named equipment.
type PartialCommitError struct {
	RequestID   string
	EquipmentID string
	Err         error
}

func (e *PartialCommitError) Error() string {
	return fmt.Sprintf("request %s persisted but maintenance counter of equipment %s was not incremented: %v",
		e.RequestID, e.EquipmentID, e.Err)
}

func (e *PartialCommitError) Unwrap() error { return e.Err }

// HttpError carries an explicit HTTP status together with a user-facing
// message. Controllers build these for request parsing problems.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
