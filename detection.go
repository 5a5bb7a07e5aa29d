package detectionformats

import "time"

// Detection enumerations.
var (
	DetectionTypes = []string{"New", "Update", "Final", "Retract"}
	EventTypes     = []string{"earthquake", "blast"}
)

// Detection is a candidate seismic event: an origin estimate plus the picks,
// beams and correlations that support it.
//
// A Detection is immutable. Constructors copy their arguments and accessors
// return copies. Validity is not enforced at construction; call Errors,
// IsValid or Validate.
type Detection struct {
	typ           *string
	id            *string
	source        *Source
	hypocenter    *Hypocenter
	detectionType *string
	eventType     *string

	bayes           *float64
	minimumDistance *float64
	rms             *float64
	gap             *float64

	// nil: no Data key. Non-nil: Data key was present.
	pickData        []Pick
	beamData        []Beam
	correlationData []Correlation
}

// Option sets an optional field of a Detection under construction.
type Option func(*Detection)

func WithDetectionType(v string) Option { return func(d *Detection) { d.detectionType = &v } }

func WithEventType(v string) Option { return func(d *Detection) { d.eventType = &v } }

func WithBayes(v float64) Option { return func(d *Detection) { d.bayes = &v } }

func WithMinimumDistance(v float64) Option { return func(d *Detection) { d.minimumDistance = &v } }

func WithRMS(v float64) Option { return func(d *Detection) { d.rms = &v } }

func WithGap(v float64) Option { return func(d *Detection) { d.gap = &v } }

// WithPickData sets the picks. Passing no picks still marks Data as present.
func WithPickData(picks ...Pick) Option {
	return func(d *Detection) { d.pickData = clonePicks(picks, true) }
}

func WithBeamData(beams ...Beam) Option {
	return func(d *Detection) { d.beamData = cloneBeams(beams, true) }
}

func WithCorrelationData(corrs ...Correlation) Option {
	return func(d *Detection) { d.correlationData = cloneCorrelations(corrs, true) }
}

// NewDetection builds a Detection from typed parts. The type tag is always
// "Detection".
func NewDetection(id string, source *Source, hypocenter *Hypocenter, opts ...Option) *Detection {
	typ := TypeDetection
	d := &Detection{
		typ:        &typ,
		id:         &id,
		source:     source.clone(),
		hypocenter: hypocenter.clone(),
	}
	for _, o := range opts {
		if o != nil {
			o(d)
		}
	}
	return d
}

// NewDetectionFromScalars builds the Source and Hypocenter from primitive
// values. The error arguments may be nil.
func NewDetectionFromScalars(id, agencyID, author string,
	latitude, longitude float64, t time.Time, depth float64,
	latitudeError, longitudeError, timeError, depthError *float64,
	opts ...Option,
) *Detection {
	return NewDetection(id,
		&Source{AgencyID: agencyID, Author: author},
		&Hypocenter{
			Latitude:       &latitude,
			Longitude:      &longitude,
			Time:           &t,
			Depth:          &depth,
			LatitudeError:  clonePtr(latitudeError),
			LongitudeError: clonePtr(longitudeError),
			TimeError:      clonePtr(timeError),
			DepthError:     clonePtr(depthError),
		},
		opts...)
}

// Parse builds a Detection from a decoded document. Missing fields stay
// absent; only a present value of the wrong shape is an error.
func Parse(doc Document) (*Detection, error) { return parseDetection(doc, nil) }

func parseDetection(doc Document, sink func(Issue)) (*Detection, error) {
	r := newFieldReader(doc, Root(), TypeDetection)
	d := &Detection{
		typ:             r.stringish("Type"),
		id:              r.stringish("ID"),
		source:          nested(r, "Source", parseSource),
		hypocenter:      nested(r, "Hypocenter", parseHypocenter),
		detectionType:   r.str("DetectionType"),
		eventType:       r.str("EventType"),
		bayes:           r.num("Bayes"),
		minimumDistance: r.num("MinimumDistance"),
		rms:             r.num("RMS"),
		gap:             r.num("Gap"),
	}
	if items, ok := r.array("Data"); ok {
		var err error
		d.pickData, d.beamData, d.correlationData, err = demuxData(items, Root().Field("Data"), sink)
		if err != nil {
			return nil, err
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return d, nil
}

// ToDocument renders d. Absent fields are omitted, never written as null,
// and Data is omitted when it would be empty.
func (d *Detection) ToDocument() Document {
	w := fieldWriter{}
	w.str("Type", d.typ)
	w.str("ID", d.id)
	w.doc("Source", d.source, d.source != nil)
	w.doc("Hypocenter", d.hypocenter, d.hypocenter != nil)
	w.str("DetectionType", d.detectionType)
	w.str("EventType", d.eventType)
	w.num("Bayes", d.bayes)
	w.num("MinimumDistance", d.minimumDistance)
	w.num("RMS", d.rms)
	w.num("Gap", d.gap)
	if data := muxData(d.pickData, d.beamData, d.correlationData); data != nil {
		w["Data"] = data
	}
	return Document(w)
}

func (d *Detection) Type() *string { return clonePtr(d.typ) }
func (d *Detection) ID() *string { return clonePtr(d.id) }
func (d *Detection) Source() *Source { return d.source.clone() }
func (d *Detection) Hypocenter() *Hypocenter { return d.hypocenter.clone() }
func (d *Detection) DetectionType() *string { return clonePtr(d.detectionType) }
func (d *Detection) EventType() *string { return clonePtr(d.eventType) }
func (d *Detection) Bayes() *float64 { return clonePtr(d.bayes) }
func (d *Detection) MinimumDistance() *float64 { return clonePtr(d.minimumDistance) }
func (d *Detection) RMS() *float64 { return clonePtr(d.rms) }
func (d *Detection) Gap() *float64 { return clonePtr(d.gap) }

// PickData returns a copy of the picks; nil when the Data key was absent.
func (d *Detection) PickData() []Pick { return clonePicks(d.pickData, d.pickData != nil) }

func (d *Detection) BeamData() []Beam { return cloneBeams(d.beamData, d.beamData != nil) }

func (d *Detection) CorrelationData() []Correlation {
	return cloneCorrelations(d.correlationData, d.correlationData != nil)
}

func clonePicks(in []Pick, keep bool) []Pick {
	if !keep {
		return nil
	}
	out := make([]Pick, len(in))
	for i := range in {
		out[i] = in[i].clone()
	}
	return out
}

func cloneBeams(in []Beam, keep bool) []Beam {
	if !keep {
		return nil
	}
	out := make([]Beam, len(in))
	for i := range in {
		out[i] = in[i].clone()
	}
	return out
}

func cloneCorrelations(in []Correlation, keep bool) []Correlation {
	if !keep {
		return nil
	}
	out := make([]Correlation, len(in))
	for i := range in {
		out[i] = in[i].clone()
	}
	return out
}
