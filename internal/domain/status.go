package domain

// Status represents the lifecycle state of a catalog entity. Inactive
// entities remain readable but are excluded from new associations by
// the service layer.
type Status string

// Known lifecycle states.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	}
	return false
}

// String returns the status as a plain string.
func (s Status) String() string {
	return string(s)
}
