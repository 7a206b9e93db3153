package post

// Work is the slice of an uploaded work that the artist registry reads:
// the raw multi-line source field and the flat tag string. The full post
// record (media, scoring, favorites) belongs to the upload pipeline.
type Work struct {
	ID        int    `json:"id"`
	Source    string `json:"source"`
	TagString string `json:"tag_string"`
}
