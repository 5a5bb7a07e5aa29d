package detectionformats

// Associated describes how a pick, beam or correlation was associated with
// an origin. Every field is optional.
type Associated struct {
	Phase    string
	Distance *float64
	Azimuth  *float64
	Residual *float64
	Sigma    *float64
}

func ParseAssociated(doc Document) (*Associated, error) { return parseAssociated(doc, Root()) }

func parseAssociated(doc Document, p PathRef) (*Associated, error) {
	r := newFieldReader(doc, p, "Associated")
	a := &Associated{
		Phase:    r.text("Phase"),
		Distance: r.num("Distance"),
		Azimuth:  r.num("Azimuth"),
		Residual: r.num("Residual"),
		Sigma:    r.num("Sigma"),
	}
	if r.err != nil {
		return nil, r.err
	}
	return a, nil
}

func (a *Associated) ToDocument() Document {
	w := fieldWriter{}
	w.text("Phase", a.Phase)
	w.num("Distance", a.Distance)
	w.num("Azimuth", a.Azimuth)
	w.num("Residual", a.Residual)
	w.num("Sigma", a.Sigma)
	return Document(w)
}

func (a *Associated) Errors() Issues {
	c := newChecker("Associated")
	c.between("Distance", a.Distance, 0, 180)
	c.between("Azimuth", a.Azimuth, 0, 360)
	return c.result()
}

func (a *Associated) IsValid() bool { return len(a.Errors()) == 0 }

func (a *Associated) clone() *Associated {
	if a == nil {
		return nil
	}
	return &Associated{
		Phase:    a.Phase,
		Distance: clonePtr(a.Distance),
		Azimuth:  clonePtr(a.Azimuth),
		Residual: clonePtr(a.Residual),
		Sigma:    clonePtr(a.Sigma),
	}
}
