package competitions

// createRequest is the JSON body for POST /competitions.
// Deadline, if present, must be an RFC 3339 timestamp.
type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
	Link        string `json:"link,omitempty"`
}

// createResponse carries the store-generated identifier back to the client.
type createResponse struct {
	ID string `json:"id"`
}
