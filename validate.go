package detectionformats

// Errors returns every semantic violation of d in rule order. It never
// fails; an empty result means d is valid.
//
// Within each of the pick, beam and correlation sequences only the first
// invalid element is reported.
func (d *Detection) Errors() Issues {
	c := newChecker(TypeDetection)

	switch {
	case d.typ == nil:
		c.add("Type", CodeRequired)
	case *d.typ == "":
		c.add("Type", CodeEmpty)
	case *d.typ != TypeDetection:
		c.add("Type", CodeWrongType, "expected", TypeDetection)
	}
	c.requiredString("ID", d.id)
	c.entity("Source", d.source != nil, d.source != nil && d.source.IsValid())
	c.entity("Hypocenter", d.hypocenter != nil, d.hypocenter != nil && d.hypocenter.IsValid())
	c.enum("DetectionType", d.detectionType, DetectionTypes...)
	c.enum("EventType", d.eventType, EventTypes...)
	c.atLeast("Bayes", d.bayes, 0)
	c.atLeast("MinimumDistance", d.minimumDistance, 0)
	c.between("Gap", d.gap, 0, 360)
	// RMS is unconstrained.

	// Data indexes follow the serialized order: picks, beams, correlations.
	offset := 0
	if i := firstInvalid(d.pickData); i >= 0 {
		c.element("PickData", TypePick, offset+i)
	}
	offset += len(d.pickData)
	if i := firstInvalid(d.beamData); i >= 0 {
		c.element("BeamData", TypeBeam, offset+i)
	}
	offset += len(d.beamData)
	if i := firstInvalid(d.correlationData); i >= 0 {
		c.element("CorrelationData", TypeCorrelation, offset+i)
	}
	return c.result()
}

// IsValid reports whether Errors is empty.
func (d *Detection) IsValid() bool { return len(d.Errors()) == 0 }

// Validate runs every rule against d. A nil Detection is invalid.
func Validate(d *Detection) (bool, Issues) {
	if d == nil {
		return false, Issues{Root().Issue(CodeRequired, "field", TypeDetection, "class", TypeDetection)}
	}
	iss := d.Errors()
	return len(iss) == 0, iss
}

// firstInvalid returns the index of the first invalid element, or -1.
func firstInvalid[T any, P interface {
	*T
	IsValid() bool
}](items []T) int {
	for i := range items {
		if !P(&items[i]).IsValid() {
			return i
		}
	}
	return -1
}
