package errcodes

// Code classifies domain errors so callers can branch without string matching.
type Code string

const (
	InvalidDateRange         Code = "InvalidDateRange"
	SourceTrackerUnavailable Code = "SourceTrackerUnavailable"
	CardLookupFailed         Code = "CardLookupFailed"
	MalformedCardLink        Code = "MalformedCardLink"
	InvalidConfig            Code = "InvalidConfig"
	InternalError            Code = "InternalError"
)
