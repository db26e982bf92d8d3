package api

// MessageResponse is the wire shape of every successful mutation:
// {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}
