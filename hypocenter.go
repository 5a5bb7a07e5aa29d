package detectionformats

import "time"

// Hypocenter is an origin estimate in space and time. Depth is in
// kilometers; the error fields are optional.
type Hypocenter struct {
	Latitude  *float64
	Longitude *float64
	Time      *time.Time
	Depth     *float64

	LatitudeError  *float64
	LongitudeError *float64
	TimeError      *float64
	DepthError     *float64
}

// Hypocenter bounds.
const (
	MinLatitude        = -90.0
	MaxLatitude        = 90.0
	MinLongitude       = -180.0
	MaxLongitude       = 180.0
	MinHypocenterDepth = -100.0
	MaxHypocenterDepth = 1500.0
)

func ParseHypocenter(doc Document) (*Hypocenter, error) { return parseHypocenter(doc, Root()) }

func parseHypocenter(doc Document, p PathRef) (*Hypocenter, error) {
	r := newFieldReader(doc, p, "Hypocenter")
	h := &Hypocenter{
		Latitude:       r.num("Latitude"),
		Longitude:      r.num("Longitude"),
		Time:           r.time("Time"),
		Depth:          r.num("Depth"),
		LatitudeError:  r.num("LatitudeError"),
		LongitudeError: r.num("LongitudeError"),
		TimeError:      r.num("TimeError"),
		DepthError:     r.num("DepthError"),
	}
	if r.err != nil {
		return nil, r.err
	}
	return h, nil
}

func (h *Hypocenter) ToDocument() Document {
	w := fieldWriter{}
	w.num("Latitude", h.Latitude)
	w.num("Longitude", h.Longitude)
	w.time("Time", h.Time)
	w.num("Depth", h.Depth)
	w.num("LatitudeError", h.LatitudeError)
	w.num("LongitudeError", h.LongitudeError)
	w.num("TimeError", h.TimeError)
	w.num("DepthError", h.DepthError)
	return Document(w)
}

func (h *Hypocenter) Errors() Issues {
	c := newChecker("Hypocenter")
	c.requiredBetween("Latitude", h.Latitude, MinLatitude, MaxLatitude)
	c.requiredBetween("Longitude", h.Longitude, MinLongitude, MaxLongitude)
	c.required("Time", h.Time != nil)
	c.requiredBetween("Depth", h.Depth, MinHypocenterDepth, MaxHypocenterDepth)
	return c.result()
}

func (h *Hypocenter) IsValid() bool { return len(h.Errors()) == 0 }

func (h *Hypocenter) clone() *Hypocenter {
	if h == nil {
		return nil
	}
	return &Hypocenter{
		Latitude:       clonePtr(h.Latitude),
		Longitude:      clonePtr(h.Longitude),
		Time:           clonePtr(h.Time),
		Depth:          clonePtr(h.Depth),
		LatitudeError:  clonePtr(h.LatitudeError),
		LongitudeError: clonePtr(h.LongitudeError),
		TimeError:      clonePtr(h.TimeError),
		DepthError:     clonePtr(h.DepthError),
	}
}
