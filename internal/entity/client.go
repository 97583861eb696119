package entity

import "time"

const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
)

// Programs offered by the practice. Client.Program and Lead.Program are
// either empty or one of these.
var Programs = []string{
	"Personal Training",
	"Lifestyle Coaching",
	"Business Mentoring",
	"Nutrition Guidance",
	"Wellness Coaching",
	"Group Fitness",
	"Corporate Training",
}

func ValidProgram(p string) bool {
	if p == "" {
		return true
	}
	for _, known := range Programs {
		if p == known {
			return true
		}
	}
	return false
}

type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Age       int       `json:"age,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	Program   string    `json:"program,omitempty"`
	StartDate string    `json:"start_date,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// UnknownClient is the sentinel returned when a payment or session
// references a client that no longer exists. Reads through the resolver
// never fail; they land here instead.
func UnknownClient(id int64) *Client {
	return &Client{
		ID:     id,
		Name:   "Unknown Client",
		Status: ClientStatusInactive,
	}
}

func (c *Client) IsUnknown() bool {
	return c.Name == "Unknown Client" && c.Email == ""
}
