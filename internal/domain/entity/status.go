package entity

// Status is a card's workflow stage. Lower values are further along,
// so ordering by Status puts finished work first.
type Status int

const (
	StatusDone Status = iota
	StatusTestingOnProd
	StatusTestingOnStaging
	StatusWaitingForReview
	StatusDoing
	// StatusUnknown covers list names outside the workflow, sentinel
	// error texts and PRs without a card. It always sorts last.
	StatusUnknown
)

var statusNames = map[Status]string{ //nolint:gochecknoglobals
	StatusDone:             "Done",
	StatusTestingOnProd:    "Testing on Prod",
	StatusTestingOnStaging: "Testing on Staging",
	StatusWaitingForReview: "Waiting for Review",
	StatusDoing:            "Doing",
}

func ParseStatus(name string) Status {
	for status, statusName := range statusNames {
		if statusName == name {
			return status
		}
	}
	return StatusUnknown
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}
