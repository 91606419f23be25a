// Package errors defines the domain failure taxonomy shared by services and
// HTTP handlers. Handlers map DomainError codes to HTTP statuses and
// localized message keys; services return these values across module
// boundaries instead of ad-hoc strings.
package errors

// Kind buckets a DomainError for HTTP status mapping.
type Kind int

const (
	KindNotFound Kind = iota
	KindInvalidState
	KindInsufficientFunds
	KindValidation
	KindUpstream
)

type DomainError struct {
	Code    string
	Message string
	Kind    Kind
}

func (e *DomainError) Error() string {
	return e.Message
}
