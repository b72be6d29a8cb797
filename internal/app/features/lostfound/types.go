package lostfound

// createRequest is the JSON body for POST /lostfound.
// Status defaults to "lost" when omitted; only "lost" and "found" are valid.
type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Status      string `json:"status,omitempty"`
	Contact     string `json:"contact,omitempty"`
}

// createResponse carries the store-generated identifier back to the client.
type createResponse struct {
	ID string `json:"id"`
}
