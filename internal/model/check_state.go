package model

// CheckState represents the state of the startup update check
type CheckState string

const (
	// CheckStateIdle means the check has not been started
	CheckStateIdle CheckState = "idle"

	// CheckStateRequesting means the release request is in flight
	CheckStateRequesting CheckState = "requesting"

	// CheckStateParsed means the release was fetched and compared
	CheckStateParsed CheckState = "parsed"

	// CheckStateFailed means the request, decoding or field extraction failed
	CheckStateFailed CheckState = "failed"
)

// String returns the string representation of CheckState
func (cs CheckState) String() string {
	return string(cs)
}

// IsFinished returns true if the check reached a terminal state
func (cs CheckState) IsFinished() bool {
	return cs == CheckStateParsed || cs == CheckStateFailed
}
