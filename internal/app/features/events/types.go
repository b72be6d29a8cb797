package events

// createRequest is the JSON body for POST /events.
// Date, if present, must be an RFC 3339 timestamp.
type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Location    string `json:"location,omitempty"`
	Link        string `json:"link,omitempty"`
}

// createResponse carries the store-generated identifier back to the client.
type createResponse struct {
	ID string `json:"id"`
}
