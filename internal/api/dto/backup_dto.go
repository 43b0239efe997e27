package dto

// ResetRequest guards the destructive reset: the caller must confirm
// explicitly, the API rendering of the legacy confirmation prompt.
type ResetRequest struct {
	Confirm bool `json:"confirm"`
}
