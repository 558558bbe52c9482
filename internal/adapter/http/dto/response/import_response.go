package response

import "fieldhours/internal/usecase"

// ImportResponse reports a webhook import batch: stored rows plus the rows
// dropped for bad data (one bad row never fails the batch).
type ImportResponse struct {
	Created []WorkEntryResponse `json:"created"`
	Skipped []string            `json:"skipped,omitempty"`
}

func FromImportResult(r usecase.ImportResult) ImportResponse {
	out := ImportResponse{Created: FromWorkEntries(r.Created)}
	for _, skip := range r.Skipped {
		out.Skipped = append(out.Skipped, skip.Err.Error())
	}
	return out
}
