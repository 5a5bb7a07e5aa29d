package detectionformats

import "context"

// Codec performs bidirectional transformation between the wire
// representation A and the domain representation B.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error) // wire -> domain
	Encode(ctx context.Context, b B) (A, error) // domain -> wire
}

// DetectionCodec returns a Codec between the untyped document form and
// *Detection. Neither direction validates: decoding fails only on values
// that cannot be coerced, and encoding never fails for a non-nil Detection.
func DetectionCodec() Codec[Document, *Detection] { return detectionCodec{} }

type detectionCodec struct{}

func (detectionCodec) Decode(ctx context.Context, doc Document) (*Detection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(doc)
}

func (detectionCodec) Encode(ctx context.Context, d *Detection) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d == nil {
		return nil, Issues{Root().Issue(CodeRequired, "field", "Detection", "class", "Codec")}
	}
	return d.ToDocument(), nil
}
