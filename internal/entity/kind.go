package entity

// Kind identifies one of the canonical collections owned by the store.
type Kind string

const (
	KindClient  Kind = "client"
	KindLead    Kind = "lead"
	KindPayment Kind = "payment"
	KindSession Kind = "session"
)

func (k Kind) Valid() bool {
	switch k {
	case KindClient, KindLead, KindPayment, KindSession:
		return true
	}
	return false
}
