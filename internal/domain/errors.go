package domain

import "errors"

type ErrorKind string

const (
	KindMissingFilePart     ErrorKind = "MissingFilePart"
	KindEmptyFilename       ErrorKind = "EmptyFilename"
	KindDisallowedExtension ErrorKind = "DisallowedExtension"
	KindStorageUnavailable  ErrorKind = "StorageUnavailable"
	KindUnexpectedIOFailure ErrorKind = "UnexpectedIOFailure"
)

// UploadError is returned by upload operations. Message is safe to show to
// the client; Cause keeps the underlying error for logs.
type UploadError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *UploadError) Error() string {
	if e.Cause != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.Cause.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *UploadError) Unwrap() error {
	return e.Cause
}

func NewUploadError(kind ErrorKind, message string) *UploadError {
	return &UploadError{Kind: kind, Message: message}
}

func NewUploadErrorWithCause(kind ErrorKind, message string, cause error) *UploadError {
	return &UploadError{Kind: kind, Message: message, Cause: cause}
}

// KindOf returns the kind of an UploadError anywhere in err's chain, or
// KindUnexpectedIOFailure for any other non-nil error.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var uploadErr *UploadError
	if errors.As(err, &uploadErr) {
		return uploadErr.Kind
	}
	return KindUnexpectedIOFailure
}
