package audit

import "encoding/json"

type ListLogsQuery struct {
	Action    string `form:"action"`
	User      string `form:"user"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Search    string `form:"search"`
}

type LogResponse struct {
	ID         string          `json:"id"`
	Action     string          `json:"action"`
	Details    string          `json:"details"`
	Actor      string          `json:"actor"`
	OccurredAt string          `json:"occurred_at"`
	Attributes json.RawMessage `json:"attributes,omitempty"`
}
