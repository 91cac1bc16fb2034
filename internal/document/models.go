package document

import "time"

// Author identifies who wrote a document.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Document is the stored record. An empty ID means "not saved yet"; the
// repository assigns one on first save.
type Document struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Author  Author    `json:"author"`
	Created time.Time `json:"created"`
}

// Equal reports whether d and o carry the same field values. Created is
// compared as an instant, ignoring location and monotonic clock readings.
func (d Document) Equal(o Document) bool {
	return d.ID == o.ID &&
		d.Title == o.Title &&
		d.Content == o.Content &&
		d.Author == o.Author &&
		d.Created.Equal(o.Created)
}

// WithID returns a copy of d carrying id.
func (d Document) WithID(id string) Document {
	d.ID = id
	return d
}
