package dto

// SessionRequest describes operator access-key payload.
type SessionRequest struct {
	AccessKey string `json:"access_key"`
}
