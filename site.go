package detectionformats

// Site identifies the station a pick, beam or correlation was measured at.
type Site struct {
	Station  string
	Channel  string
	Network  string
	Location string
}

func ParseSite(doc Document) (*Site, error) { return parseSite(doc, Root()) }

func parseSite(doc Document, p PathRef) (*Site, error) {
	r := newFieldReader(doc, p, "Site")
	s := &Site{
		Station:  r.text("Station"),
		Channel:  r.text("Channel"),
		Network:  r.text("Network"),
		Location: r.text("Location"),
	}
	if r.err != nil {
		return nil, r.err
	}
	return s, nil
}

func (s *Site) ToDocument() Document {
	w := fieldWriter{}
	w.text("Station", s.Station)
	w.text("Channel", s.Channel)
	w.text("Network", s.Network)
	w.text("Location", s.Location)
	return Document(w)
}

// Errors reports a missing Station or Network. Channel and Location are
// optional.
func (s *Site) Errors() Issues {
	c := newChecker("Site")
	c.requiredText("Station", s.Station)
	c.requiredText("Network", s.Network)
	return c.result()
}

func (s *Site) IsValid() bool { return len(s.Errors()) == 0 }

func (s *Site) clone() *Site { return clonePtr(s) }
