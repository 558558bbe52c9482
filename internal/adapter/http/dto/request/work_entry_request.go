package request

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidDateFormat = errors.New("date must be formatted YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// CreateEntryRequest is the payload for a manual work entry.
type CreateEntryRequest struct {
	TechnicianID string  `json:"technician_id" binding:"required"`
	CustomerID   string  `json:"customer_id"`
	Date         string  `json:"date" binding:"required"`
	HoursWorked  float64 `json:"hours_worked" binding:"required"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Description  string  `json:"description"`
}

func (r CreateEntryRequest) ResolveDate() (time.Time, error) {
	return parseDate(r.Date)
}

// UpdateEntryRequest carries the mutable entry fields; omitted fields keep
// their stored value.
type UpdateEntryRequest struct {
	Date        *string  `json:"date"`
	HoursWorked *float64 `json:"hours_worked"`
	Description *string  `json:"description"`
}

func (r UpdateEntryRequest) ResolveDate() (*time.Time, error) {
	if r.Date == nil {
		return nil, nil
	}
	t, err := parseDate(*r.Date)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ImportedEntryRequest is one row of the webhook import payload.
type ImportedEntryRequest struct {
	TechnicianID string  `json:"technician_id" binding:"required"`
	CustomerID   string  `json:"customer_id"`
	Date         string  `json:"date" binding:"required"`
	HoursWorked  float64 `json:"hours_worked" binding:"required"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Description  string  `json:"description"`
}

func (r ImportedEntryRequest) ResolveDate() (time.Time, error) {
	return parseDate(r.Date)
}

// ImportRequest is the batch payload posted by the time-capture integration.
type ImportRequest struct {
	Entries []ImportedEntryRequest `json:"entries" binding:"required"`
}
