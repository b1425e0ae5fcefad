package domain

// Active is the boolean-backed duty status attached to a roster identity.
type Active string

const (
	StatusActive   Active = "ACTIVE"
	StatusInactive Active = "INACTIVE"
)

func (a Active) Valid() bool {
	return a == StatusActive || a == StatusInactive
}

func (a Active) Bool() bool {
	return a == StatusActive
}

func ActiveFromBool(b bool) Active {
	if b {
		return StatusActive
	}
	return StatusInactive
}
