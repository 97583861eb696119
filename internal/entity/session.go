package entity

import "time"

const (
	SessionStatusScheduled = "scheduled"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

func ValidSessionStatus(s string) bool {
	return s == SessionStatusScheduled || s == SessionStatusCompleted || s == SessionStatusCancelled
}

var SessionTypes = []string{
	"1-on-1 Coaching",
	"Group Session",
	"Online Session",
	"Assessment",
	"Follow-up",
	"Consultation",
}

func ValidSessionType(t string) bool {
	for _, known := range SessionTypes {
		if t == known {
			return true
		}
	}
	return false
}

type Session struct {
	ID        int64     `json:"id"`
	ClientID  int64     `json:"client_id"`
	Type      string    `json:"type"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Duration  int       `json:"duration_minutes"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
