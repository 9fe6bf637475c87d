package fare

import "fmt"

type QuoteError struct {
	Code    string
	Message string
}

func (e *QuoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewUnknownRouteError(pickup, dropoff string) error {
	return &QuoteError{
		Code:    "unknownRoute",
		Message: fmt.Sprintf("no route between %s and %s", pickup, dropoff),
	}
}
