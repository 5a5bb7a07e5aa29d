package detectionformats

import (
	"context"

	"github.com/goccy/go-json"
)

// MarshalJSON renders the canonical document.
func (d *Detection) MarshalJSON() ([]byte, error) { return json.Marshal(d.ToDocument()) }

// UnmarshalJSON parses a JSON Detection document. It does not validate.
func (d *Detection) UnmarshalJSON(b []byte) error {
	parsed, err := ParseFrom(context.Background(), JSONBytes(b))
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}
