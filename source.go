package detectionformats

// Source identifies the agency and author that produced a record.
type Source struct {
	AgencyID string
	Author   string
}

// ParseSource builds a Source from a document. Missing keys leave the
// corresponding field empty.
func ParseSource(doc Document) (*Source, error) { return parseSource(doc, Root()) }

func parseSource(doc Document, p PathRef) (*Source, error) {
	r := newFieldReader(doc, p, "Source")
	s := &Source{AgencyID: r.text("AgencyID"), Author: r.text("Author")}
	if r.err != nil {
		return nil, r.err
	}
	return s, nil
}

func (s *Source) ToDocument() Document {
	w := fieldWriter{}
	w.text("AgencyID", s.AgencyID)
	w.text("Author", s.Author)
	return Document(w)
}

func (s *Source) Errors() Issues {
	c := newChecker("Source")
	c.requiredText("AgencyID", s.AgencyID)
	c.requiredText("Author", s.Author)
	return c.result()
}

func (s *Source) IsValid() bool { return len(s.Errors()) == 0 }

func (s *Source) clone() *Source { return clonePtr(s) }
