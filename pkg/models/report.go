package models

// ReportRequest carries the free-text instruction for report generation.
type ReportRequest struct {
	Text string `json:"text"`
}
