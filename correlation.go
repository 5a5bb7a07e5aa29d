package detectionformats

import "time"

// Correlation is a waveform cross-correlation match against a template
// event. It travels in the Data array tagged "Type": "Correlation".
type Correlation struct {
	ID                 string
	Site               *Site
	Source             *Source
	Phase              string
	Time               *time.Time
	Correlation        *float64
	Hypocenter         *Hypocenter
	EventType          string
	Magnitude          *float64
	SNR                *float64
	ZScore             *float64
	DetectionThreshold *float64
	ThresholdType      string
	AssociationInfo    *Associated
}

func ParseCorrelation(doc Document) (*Correlation, error) { return parseCorrelation(doc, Root()) }

func parseCorrelation(doc Document, p PathRef) (*Correlation, error) {
	r := newFieldReader(doc, p, "Correlation")
	c := &Correlation{
		ID:                 r.text("ID"),
		Site:               nested(r, "Site", parseSite),
		Source:             nested(r, "Source", parseSource),
		Phase:              r.text("Phase"),
		Time:               r.time("Time"),
		Correlation:        r.num("Correlation"),
		Hypocenter:         nested(r, "Hypocenter", parseHypocenter),
		EventType:          r.text("EventType"),
		Magnitude:          r.num("Magnitude"),
		SNR:                r.num("SNR"),
		ZScore:             r.num("ZScore"),
		DetectionThreshold: r.num("DetectionThreshold"),
		ThresholdType:      r.text("ThresholdType"),
		AssociationInfo:    nested(r, "AssociationInfo", parseAssociated),
	}
	if r.err != nil {
		return nil, r.err
	}
	return c, nil
}

func (c *Correlation) ToDocument() Document {
	w := fieldWriter{"Type": TypeCorrelation}
	w.text("ID", c.ID)
	w.doc("Site", c.Site, c.Site != nil)
	w.doc("Source", c.Source, c.Source != nil)
	w.text("Phase", c.Phase)
	w.time("Time", c.Time)
	w.num("Correlation", c.Correlation)
	w.doc("Hypocenter", c.Hypocenter, c.Hypocenter != nil)
	w.text("EventType", c.EventType)
	w.num("Magnitude", c.Magnitude)
	w.num("SNR", c.SNR)
	w.num("ZScore", c.ZScore)
	w.num("DetectionThreshold", c.DetectionThreshold)
	w.text("ThresholdType", c.ThresholdType)
	w.doc("AssociationInfo", c.AssociationInfo, c.AssociationInfo != nil)
	return Document(w)
}

func (c *Correlation) Errors() Issues {
	ck := newChecker("Correlation")
	ck.requiredText("ID", c.ID)
	ck.entity("Site", c.Site != nil, c.Site != nil && c.Site.IsValid())
	ck.entity("Source", c.Source != nil, c.Source != nil && c.Source.IsValid())
	ck.requiredText("Phase", c.Phase)
	ck.required("Time", c.Time != nil)
	ck.required("Correlation", c.Correlation != nil)
	ck.entity("Hypocenter", c.Hypocenter != nil, c.Hypocenter != nil && c.Hypocenter.IsValid())
	ck.oneOf("EventType", c.EventType, EventTypes...)
	ck.optionalEntity("AssociationInfo", c.AssociationInfo != nil, c.AssociationInfo != nil && c.AssociationInfo.IsValid())
	return ck.result()
}

func (c *Correlation) IsValid() bool { return len(c.Errors()) == 0 }

func (c *Correlation) clone() Correlation {
	out := *c
	out.Site = c.Site.clone()
	out.Source = c.Source.clone()
	out.Time = clonePtr(c.Time)
	out.Correlation = clonePtr(c.Correlation)
	out.Hypocenter = c.Hypocenter.clone()
	out.Magnitude = clonePtr(c.Magnitude)
	out.SNR = clonePtr(c.SNR)
	out.ZScore = clonePtr(c.ZScore)
	out.DetectionThreshold = clonePtr(c.DetectionThreshold)
	out.AssociationInfo = c.AssociationInfo.clone()
	return out
}
