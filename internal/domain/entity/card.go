package entity

const (
	SentinelMalformedLink = "Error: card URL does not match pattern"
	SentinelLookupFailed  = "Error: unable to retrieve card details"
)

type Card struct {
	ID    string
	Title string
	// StatusName is the name of the list holding the card.
	StatusName string
	URL        string
}

func (c Card) Status() Status {
	return ParseStatus(c.StatusName)
}

// SentinelCard stands in for a card that could not be resolved.
func SentinelCard(id, sentinel string) *Card {
	return &Card{
		ID:         id,
		Title:      sentinel,
		StatusName: sentinel,
	}
}

type LinkState int

const (
	LinkNone LinkState = iota
	LinkMalformed
	LinkOK
)

func (s LinkState) String() string {
	switch s {
	case LinkMalformed:
		return "malformed"
	case LinkOK:
		return "ok"
	default:
		return "none"
	}
}

// CardLink is the raw comment that mentions the card host and the card ID
// parsed out of it, if any.
type CardLink struct {
	Raw    string
	CardID string
	State  LinkState
}
