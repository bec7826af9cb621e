package timesheet

import "time"

// Entry is one line of a timesheet. Hours is kept as typed so that any of
// the accepted hour syntaxes can be used in the file.
type Entry struct {
	ID          string `yaml:"id,omitempty" json:"id"`
	Date        string `yaml:"date" json:"date"`
	Project     string `yaml:"project" json:"project"`
	Hours       string `yaml:"hours" json:"hours"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Sheet is a decoded timesheet file.
type Sheet struct {
	Owner   string  `yaml:"owner,omitempty" json:"owner,omitempty"`
	Entries []Entry `yaml:"entries" json:"entries"`
}

// Problem describes why an entry cannot be counted.
type Problem struct {
	EntryID string `json:"entry_id"`
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	return p.Field + ": " + p.Message
}

// Filter restricts which entries are summarized. Zero values match all.
type Filter struct {
	Project   string
	StartDate time.Time
	EndDate   time.Time
}

// Summary holds aggregated hours for a set of entries.
type Summary struct {
	TotalHours float64            `json:"total_hours"`
	EntryCount int                `json:"entry_count"`
	Skipped    int                `json:"skipped"`
	ByProject  map[string]float64 `json:"by_project,omitempty"`
	ByDay      map[string]float64 `json:"by_day,omitempty"`
}
