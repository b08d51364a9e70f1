package model

// CompletionRecord is one heatmap cell: how much of the scheduled work for a
// single calendar day got done. A day with nothing scheduled is 0%, not
// "no data".
type CompletionRecord struct {
	Date           string `json:"date"`
	CompletedCount int    `json:"completedCount"`
	TotalCount     int    `json:"totalCount"`
	Percentage     int    `json:"percentage"`
}
