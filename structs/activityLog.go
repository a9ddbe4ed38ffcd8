package structs

type ActivityLogJsonModel struct {
	Type      string `json:"type"`
	UserID    uint   `json:"user_id,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Result    bool   `json:"result"`
	Created   int    `json:"created,omitempty"`
	Message   string `json:"message"`
}

// EventModel is the payload published to the message queue.
type EventModel struct {
	Event     string `json:"event"`
	UserID    uint   `json:"user_id,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Created   int    `json:"created,omitempty"`
	Output    string `json:"output,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
