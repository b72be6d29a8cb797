package forum

// createPostRequest is the JSON body for POST /forum/posts.
type createPostRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Author  string   `json:"author,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// createCommentRequest is the JSON body for POST /forum/comments.
// PostID is the hex identifier of the post being commented on, kept opaque.
type createCommentRequest struct {
	PostID  string `json:"post_id"`
	Content string `json:"content"`
	Author  string `json:"author,omitempty"`
}

// createResponse carries the store-generated identifier back to the client.
type createResponse struct {
	ID string `json:"id"`
}
