package document

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDocument is wrapped by every error Validate returns.
	ErrInvalidDocument = errors.New("invalid document")
)

// Validate checks the fields a document must carry before it is stored.
// Title and content may be empty; author id and creation time may not.
func Validate(d Document) error {
	if d.Author.ID == "" {
		return fmt.Errorf("%w: author id is required", ErrInvalidDocument)
	}
	if d.Created.IsZero() {
		return fmt.Errorf("%w: created timestamp is required", ErrInvalidDocument)
	}
	return nil
}
