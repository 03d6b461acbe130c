package fork

import (
	"errors"
	"fmt"
)

// Domain errors

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	CodeAuthFailed           = "AUTH_FAILED"
	CodeRepositoryNotFound   = "REPOSITORY_NOT_FOUND"
	CodeTransientFailure     = "TRANSIENT_FAILURE"
	CodeInvalidRepositoryRef = "INVALID_REPOSITORY_REF"
)

// Predefined domain errors

func ErrAuth(err error) *DomainError {
	return &DomainError{
		Code:    CodeAuthFailed,
		Message: "authentication failed, check the GitHub token in the extension settings",
		Err:     err,
	}
}

func ErrNotFound(ref string, err error) *DomainError {
	return &DomainError{
		Code:    CodeRepositoryNotFound,
		Message: fmt.Sprintf("repository %s not found", ref),
		Err:     err,
	}
}

func ErrTransient(op string, err error) *DomainError {
	return &DomainError{
		Code:    CodeTransientFailure,
		Message: fmt.Sprintf("%s failed", op),
		Err:     err,
	}
}

func ErrInvalidRepositoryRef(field string, err error) *DomainError {
	return &DomainError{
		Code:    CodeInvalidRepositoryRef,
		Message: fmt.Sprintf("invalid %s", field),
		Err:     err,
	}
}

func hasCode(err error, code string) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == code
}

// IsAuthError reports whether err is a rejected-credential failure
func IsAuthError(err error) bool {
	return hasCode(err, CodeAuthFailed)
}

// IsNotFound reports whether err is a soft repository-lookup failure
func IsNotFound(err error) bool {
	return hasCode(err, CodeRepositoryNotFound)
}

// IsTransient reports whether err is a degradable failure
func IsTransient(err error) bool {
	return hasCode(err, CodeTransientFailure)
}
