package lead

import "fmt"

// BrokerProfile is the brokerage contact channel quoted in qualification
// replies.
type BrokerProfile struct {
	Name  string
	Phone string
	Email string
}

// Qualifier drives the progressive collection of lead fields. It keeps no
// state of its own: the next prompt is always derived from the merged record.
type Qualifier struct {
	broker BrokerProfile
}

// NewQualifier creates a qualifier for the given brokerage.
func NewQualifier(broker BrokerProfile) *Qualifier {
	return &Qualifier{broker: broker}
}

// Advance merges the freshly extracted fields into the stored record and
// returns the merged record with exactly one reply: the prompt for the
// highest-priority missing field, or the confirmation once all three are
// present. A message carrying several fields at once advances past all of
// them in a single turn, since the prompt is chosen from the merged result.
// Calling Advance on an already complete record re-emits the confirmation.
func (q *Qualifier) Advance(stored, extracted Record) (Record, string) {
	merged := stored.Merge(extracted)

	switch merged.State() {
	case AwaitingName:
		return merged, "Parfait ! Quel est votre prénom ?"
	case AwaitingPhone:
		return merged, fmt.Sprintf("Merci %s ! Quel est votre numéro de téléphone pour que %s vous rappelle ?", merged.Name, q.broker.Name)
	case AwaitingEmail:
		return merged, "Super. Et votre adresse email ?"
	}

	return merged, fmt.Sprintf("Parfait, merci %s ! Je transmets votre demande à %s. Vous pouvez aussi le joindre directement au %s ou à %s.",
		merged.Name, q.broker.Name, q.broker.Phone, q.broker.Email)
}
