package apierr

import (
	"encoding/json"
	"fmt"

	"github.com/go-faster/errors"
)

// Code classifies a failed API call. The set is closed: every error surfaced
// by this module carries exactly one of these values.
type Code string

const (
	Unauthorized     Code = "UNAUTHORIZED"
	Forbidden        Code = "FORBIDDEN"
	NotFound         Code = "NOT_FOUND"
	PurchaseRequired Code = "PURCHASE_REQUIRED"
	Expired          Code = "EXPIRED"
	ValidationError  Code = "VALIDATION_ERROR"
	ServerError      Code = "SERVER_ERROR"
	NetworkError     Code = "NETWORK_ERROR"
	UnknownError     Code = "UNKNOWN_ERROR"
)

const (
	genericMessage = "Something went wrong"
	networkMessage = "Network error. Please check your connection."
)

// Error is the single failure shape surfaced to callers. Status is the
// original HTTP status when a response was obtained, 0 otherwise. Details
// holds the raw response body or the transport cause, opaque to this package.
type Error struct {
	Code    Code
	Message string
	Status  int
	Details any
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// As extracts *Error from an error chain.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// HasCode reports whether err is an *Error carrying the given code.
func HasCode(err error, c Code) bool {
	ae, ok := As(err)
	return ok && ae.Code == c
}

// wireError mirrors the server's error envelope {"error":{"code","message"}}.
type wireError struct {
	Error *wireErrorBody `json:"error"`
}

type wireErrorBody struct {
	Code    *string `json:"code"`
	Message string  `json:"message"`
}

// Classify maps a status, a decoded (or raw) response body and a fallback
// message into one Error. Precedence: a code carried in the structured body
// wins over the status table, the status table wins over UNKNOWN_ERROR, and
// status 0 (no response obtained) always yields NETWORK_ERROR.
func Classify(status int, body any, fallback string) *Error {
	if status == 0 {
		return &Error{
			Code:    NetworkError,
			Message: firstNonEmpty(fallback, networkMessage),
			Details: body,
		}
	}

	if code, msg, ok := structuredBody(body); ok {
		c := fromStatus(status)
		if code != "" {
			c = Code(code)
		}
		return &Error{
			Code:    c,
			Message: firstNonEmpty(msg, fallback, genericMessage),
			Status:  status,
			Details: body,
		}
	}

	return &Error{
		Code:    fromStatus(status),
		Message: firstNonEmpty(fallback, genericMessage),
		Status:  status,
		Details: body,
	}
}

// structuredBody attempts a typed decode of the error envelope. It accepts
// raw JSON bytes as well as a body already decoded into map[string]any.
// ok is true only when body carries an error object with a string code field.
func structuredBody(body any) (code, message string, ok bool) {
	switch b := body.(type) {
	case []byte:
		return unmarshalEnvelope(b)
	case json.RawMessage:
		return unmarshalEnvelope(b)
	case map[string]any:
		inner, isMap := b["error"].(map[string]any)
		if !isMap {
			return "", "", false
		}
		c, isStr := inner["code"].(string)
		if !isStr {
			return "", "", false
		}
		m, _ := inner["message"].(string)
		return c, m, true
	default:
		return "", "", false
	}
}

func unmarshalEnvelope(raw []byte) (code, message string, ok bool) {
	var we wireError
	if err := json.Unmarshal(raw, &we); err != nil {
		return "", "", false
	}
	if we.Error == nil || we.Error.Code == nil {
		return "", "", false
	}
	return *we.Error.Code, we.Error.Message, true
}

func fromStatus(status int) Code {
	switch {
	case status == 400:
		return ValidationError
	case status == 401:
		return Unauthorized
	case status == 403:
		return Forbidden
	case status == 404:
		return NotFound
	case status == 410:
		return Expired
	case status >= 500:
		return ServerError
	default:
		return UnknownError
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
