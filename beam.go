package detectionformats

import "time"

// Beam is an array beam measurement: a back azimuth and slowness over a
// time window. It travels in the Data array tagged "Type": "Beam".
type Beam struct {
	ID               string
	Site             *Site
	Source           *Source
	StartTime        *time.Time
	EndTime          *time.Time
	BackAzimuth      *float64
	BackAzimuthError *float64
	Slowness         *float64
	SlownessError    *float64
	PowerRatio       *float64
	PowerRatioError  *float64
	AssociationInfo  *Associated
}

func ParseBeam(doc Document) (*Beam, error) { return parseBeam(doc, Root()) }

func parseBeam(doc Document, p PathRef) (*Beam, error) {
	r := newFieldReader(doc, p, "Beam")
	b := &Beam{
		ID:               r.text("ID"),
		Site:             nested(r, "Site", parseSite),
		Source:           nested(r, "Source", parseSource),
		StartTime:        r.time("StartTime"),
		EndTime:          r.time("EndTime"),
		BackAzimuth:      r.num("BackAzimuth"),
		BackAzimuthError: r.num("BackAzimuthError"),
		Slowness:         r.num("Slowness"),
		SlownessError:    r.num("SlownessError"),
		PowerRatio:       r.num("PowerRatio"),
		PowerRatioError:  r.num("PowerRatioError"),
		AssociationInfo:  nested(r, "AssociationInfo", parseAssociated),
	}
	if r.err != nil {
		return nil, r.err
	}
	return b, nil
}

func (b *Beam) ToDocument() Document {
	w := fieldWriter{"Type": TypeBeam}
	w.text("ID", b.ID)
	w.doc("Site", b.Site, b.Site != nil)
	w.doc("Source", b.Source, b.Source != nil)
	w.time("StartTime", b.StartTime)
	w.time("EndTime", b.EndTime)
	w.num("BackAzimuth", b.BackAzimuth)
	w.num("BackAzimuthError", b.BackAzimuthError)
	w.num("Slowness", b.Slowness)
	w.num("SlownessError", b.SlownessError)
	w.num("PowerRatio", b.PowerRatio)
	w.num("PowerRatioError", b.PowerRatioError)
	w.doc("AssociationInfo", b.AssociationInfo, b.AssociationInfo != nil)
	return Document(w)
}

func (b *Beam) Errors() Issues {
	c := newChecker("Beam")
	c.requiredText("ID", b.ID)
	c.entity("Site", b.Site != nil, b.Site != nil && b.Site.IsValid())
	c.entity("Source", b.Source != nil, b.Source != nil && b.Source.IsValid())
	c.required("StartTime", b.StartTime != nil)
	c.required("EndTime", b.EndTime != nil)
	c.requiredBetween("BackAzimuth", b.BackAzimuth, 0, 360)
	c.required("Slowness", b.Slowness != nil)
	c.atLeast("Slowness", b.Slowness, 0)
	c.optionalEntity("AssociationInfo", b.AssociationInfo != nil, b.AssociationInfo != nil && b.AssociationInfo.IsValid())
	return c.result()
}

func (b *Beam) IsValid() bool { return len(b.Errors()) == 0 }

func (b *Beam) clone() Beam {
	out := *b
	out.Site = b.Site.clone()
	out.Source = b.Source.clone()
	out.StartTime = clonePtr(b.StartTime)
	out.EndTime = clonePtr(b.EndTime)
	out.BackAzimuth = clonePtr(b.BackAzimuth)
	out.BackAzimuthError = clonePtr(b.BackAzimuthError)
	out.Slowness = clonePtr(b.Slowness)
	out.SlownessError = clonePtr(b.SlownessError)
	out.PowerRatio = clonePtr(b.PowerRatio)
	out.PowerRatioError = clonePtr(b.PowerRatioError)
	out.AssociationInfo = b.AssociationInfo.clone()
	return out
}
