package memory

import (
	"time"
)

// DefaultType tags a memory when no type is supplied.
const DefaultType = "milestone"

// Memory is one timeline entry. Date is a free-text label ("March
// 2023"), not a parsed date; Type is a display tag such as "milestone",
// "adventure" or "event".
type Memory struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
}
