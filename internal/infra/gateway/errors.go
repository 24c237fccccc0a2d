package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"hotel-console/internal/infra/gateway/wire"
	"hotel-console/internal/pkg/errs"
)

type Category string

// Status code categories of the remote API
const (
	CategoryValidation      Category = "VALIDATION"
	CategoryUnauthenticated Category = "UNAUTHENTICATED"
	CategoryForbidden       Category = "FORBIDDEN"
	CategoryNotFound        Category = "NOT_FOUND"
	CategoryConflict        Category = "CONFLICT"
	CategoryUnreachable     Category = "UNREACHABLE"
	CategoryServer          Category = "SERVER"
)

func CategoryOf(status int) Category {
	switch status {
	case 0:
		return CategoryUnreachable
	case http.StatusBadRequest:
		return CategoryValidation
	case http.StatusUnauthorized:
		return CategoryUnauthenticated
	case http.StatusForbidden:
		return CategoryForbidden
	case http.StatusNotFound:
		return CategoryNotFound
	case http.StatusConflict:
		return CategoryConflict
	default:
		return CategoryServer
	}
}

// Error is a failed call: a transport failure (Status 0) or a non-2xx response.
type Error struct {
	Status   int
	Category Category
	// Message is the API's own explanation, empty when the body carried none.
	Message string
	Method  string
	URL     string
	err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %s", e.Method, e.URL, e.Category)
	if e.Status != 0 {
		fmt.Fprintf(&b, " (%d)", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	if e.err != nil {
		b.WriteString(": " + e.err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Is(target error) bool {
	return target == errs.ErrGatewayFailed
}

func newTransportError(req *http.Request, err error) *Error {
	return &Error{
		Status:   0,
		Category: CategoryUnreachable,
		Method:   req.Method,
		URL:      req.URL.String(),
		err:      errs.Wrap(err, "transport"),
	}
}

func newStatusError(req *http.Request, status int, body []byte) *Error {
	return &Error{
		Status:   status,
		Category: CategoryOf(status),
		Message:  extractMessage(body),
		Method:   req.Method,
		URL:      req.URL.String(),
	}
}

func extractMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var eb wire.ErrorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if eb.Message != "" {
		return eb.Message
	}
	return eb.Mensaje
}

// AsError extracts the gateway error from err's chain.
func AsError(err error) (*Error, bool) {
	var ge *Error
	if errs.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

func IsCategory(err error, category Category) bool {
	ge, ok := AsError(err)
	return ok && ge.Category == category
}
