package model

// Priority is one of a closed set of codes stored verbatim in the tasks table.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MED"
	PriorityHigh   Priority = "HIGH"

	DefaultPriority = PriorityLow
)

var priorityLabels = []struct {
	code  Priority
	label string
}{
	{code: PriorityLow, label: "Low"},
	{code: PriorityMedium, label: "Medium"},
	{code: PriorityHigh, label: "High"},
}

// Priorities lists every code from lowest to highest.
func Priorities() []Priority {
	codes := make([]Priority, 0, len(priorityLabels))

	for _, entry := range priorityLabels {
		codes = append(codes, entry.code)
	}

	return codes
}

// ParsePriority accepts an exact code only.
func ParsePriority(value string) (Priority, bool) {
	priority := Priority(value)

	return priority, priority.Valid()
}

func (p Priority) Valid() bool {
	return p.Rank() >= 0
}

// Rank orders priorities from 0 (LOW) upwards. Unknown codes rank -1.
func (p Priority) Rank() int {
	for rank, entry := range priorityLabels {
		if entry.code == p {
			return rank
		}
	}

	return -1
}

// Label returns the display name, or the raw code when unknown.
func (p Priority) Label() string {
	for _, entry := range priorityLabels {
		if entry.code == p {
			return entry.label
		}
	}

	return string(p)
}

func (p Priority) String() string {
	return string(p)
}
