package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stage is the pipeline classification of a lead. A lead is always in
// exactly one stage; transitions happen only through the move operation.
type Stage string

const (
	StageNew       Stage = "new"
	StageQualified Stage = "qualified"
	StageProposal  Stage = "proposal"
	StageWon       Stage = "won"
	StageLost      Stage = "lost"
)

func (s Stage) Valid() bool {
	switch s {
	case StageNew, StageQualified, StageProposal, StageWon, StageLost:
		return true
	}
	return false
}

// Terminal stages have no outgoing transitions. Reopening a lost deal
// means capturing a new lead.
func (s Stage) Terminal() bool {
	return s == StageWon || s == StageLost
}

var LeadSources = []string{
	"Website",
	"Social Media",
	"Referral",
	"Walk-in",
	"Advertisement",
	"Event",
}

func ValidLeadSource(src string) bool {
	for _, known := range LeadSources {
		if src == known {
			return true
		}
	}
	return false
}

type Lead struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Source    string          `json:"source"`
	Program   string          `json:"program,omitempty"`
	Value     decimal.Decimal `json:"value"`
	Notes     string          `json:"notes,omitempty"`
	Stage     Stage           `json:"stage"`
	CreatedAt time.Time       `json:"created_at"`
}

// Active reports whether the lead still counts toward the pipeline.
func (l *Lead) Active() bool {
	return !l.Stage.Terminal()
}
