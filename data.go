package detectionformats

import "strconv"

// Type tags.
const (
	TypeDetection   = "Detection"
	TypePick        = "Pick"
	TypeBeam        = "Beam"
	TypeCorrelation = "Correlation"
)

// DataItem is one element of a Detection's Data array after dispatch on its
// "Type" tag. The concrete type is one of PickItem, BeamItem,
// CorrelationItem or UnrecognizedItem.
type DataItem interface {
	dataItem()
}

type PickItem struct{ Pick Pick }

type BeamItem struct{ Beam Beam }

type CorrelationItem struct{ Correlation Correlation }

// UnrecognizedItem is an element whose tag is missing (Tag == "") or names
// no known variant. Parsing drops it.
type UnrecognizedItem struct {
	Tag    string
	Reason string
}

func (PickItem) dataItem()         {}
func (BeamItem) dataItem()         {}
func (CorrelationItem) dataItem()  {}
func (UnrecognizedItem) dataItem() {}

// DecodeDataItem dispatches a single Data element on its "Type" tag. It
// fails only when the element is not an object, the tag is not a string, or
// the selected variant cannot be decoded.
func DecodeDataItem(v any) (DataItem, error) { return decodeDataItem(v, Root()) }

func decodeDataItem(v any, p PathRef) (DataItem, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, Issues{p.Issue(CodeInvalidType, "field", "Data", "class", TypeDetection, "expected", "object")}
	}
	r := newFieldReader(m, p, "Data")
	tag := r.str("Type")
	if r.err != nil {
		return nil, r.err
	}
	if tag == nil {
		return UnrecognizedItem{Reason: "missing Type"}, nil
	}
	switch *tag {
	case TypePick:
		pk, err := parsePick(m, p)
		if err != nil {
			return nil, err
		}
		return PickItem{Pick: *pk}, nil
	case TypeBeam:
		b, err := parseBeam(m, p)
		if err != nil {
			return nil, err
		}
		return BeamItem{Beam: *b}, nil
	case TypeCorrelation:
		c, err := parseCorrelation(m, p)
		if err != nil {
			return nil, err
		}
		return CorrelationItem{Correlation: *c}, nil
	default:
		return UnrecognizedItem{Tag: *tag, Reason: "unknown Type " + strconv.Quote(*tag)}, nil
	}
}

// demuxData splits a Data array into its three typed sequences. The result
// slices are non-nil even when items is empty. Dropped elements are reported
// to sink when it is set.
func demuxData(items []any, p PathRef, sink func(Issue)) ([]Pick, []Beam, []Correlation, error) {
	picks, beams, corrs := []Pick{}, []Beam{}, []Correlation{}
	for i, raw := range items {
		item, err := decodeDataItem(raw, p.Index(i))
		if err != nil {
			return nil, nil, nil, err
		}
		switch it := item.(type) {
		case PickItem:
			picks = append(picks, it.Pick)
		case BeamItem:
			beams = append(beams, it.Beam)
		case CorrelationItem:
			corrs = append(corrs, it.Correlation)
		case UnrecognizedItem:
			if sink != nil {
				sink(p.Index(i).Issue(CodeDataDropped, "class", TypeDetection, "tag", it.Tag, "reason", it.Reason))
			}
		}
	}
	return picks, beams, corrs, nil
}

// muxData merges the typed sequences into one array ordered picks, beams,
// correlations. It returns nil when there is nothing to emit.
func muxData(picks []Pick, beams []Beam, corrs []Correlation) []any {
	n := len(picks) + len(beams) + len(corrs)
	if n == 0 {
		return nil
	}
	out := make([]any, 0, n)
	for i := range picks {
		out = append(out, picks[i].ToDocument())
	}
	for i := range beams {
		out = append(out, beams[i].ToDocument())
	}
	for i := range corrs {
		out = append(out, corrs[i].ToDocument())
	}
	return out
}
