package request

import "time"

// AgreeRequest is the manual agree action: a human force-verifies the
// imported records of one (technician, date) slot.
type AgreeRequest struct {
	TechnicianID string `json:"technician_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
}

func (r AgreeRequest) ResolveDate() (time.Time, error) {
	return parseDate(r.Date)
}
