package catalog

import "fmt"

// DataSourceError indicates the fuel price table is missing, unreadable or
// malformed. It is fatal: planning cannot proceed without price data.
type DataSourceError struct {
	Message string
	Err     error
}

func (e *DataSourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fuel price data error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("fuel price data error: %s", e.Message)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

func NewDataSourceError(message string, err error) *DataSourceError {
	return &DataSourceError{
		Message: message,
		Err:     err,
	}
}
