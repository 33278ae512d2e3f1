package lead

// Record is the contact triple progressively collected from a visitor.
// An empty string means the field has not been captured yet.
type Record struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// State identifies which field the qualification flow needs next.
// It is always derived from the record, never stored.
type State int

const (
	AwaitingName State = iota
	AwaitingPhone
	AwaitingEmail
	Complete
)

func (s State) String() string {
	switch s {
	case AwaitingName:
		return "awaiting_name"
	case AwaitingPhone:
		return "awaiting_phone"
	case AwaitingEmail:
		return "awaiting_email"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// Merge combines r with extracted, field by field. A field already set on r
// is never overwritten; extracted only fills gaps.
func (r Record) Merge(extracted Record) Record {
	merged := r
	if merged.Name == "" {
		merged.Name = extracted.Name
	}
	if merged.Phone == "" {
		merged.Phone = extracted.Phone
	}
	if merged.Email == "" {
		merged.Email = extracted.Email
	}
	return merged
}

// Empty reports whether no field has been captured.
func (r Record) Empty() bool {
	return r.Name == "" && r.Phone == "" && r.Email == ""
}

// Complete reports whether all three fields have been captured.
func (r Record) Complete() bool {
	return r.State() == Complete
}

// State derives the qualification state from which fields are still missing,
// in strict name -> phone -> email priority.
func (r Record) State() State {
	switch {
	case r.Name == "":
		return AwaitingName
	case r.Phone == "":
		return AwaitingPhone
	case r.Email == "":
		return AwaitingEmail
	}
	return Complete
}
