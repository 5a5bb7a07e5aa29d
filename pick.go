package detectionformats

import "time"

// Pick enumerations.
var (
	PickPolarities = []string{"up", "down"}
	PickOnsets     = []string{"impulsive", "emergent", "questionable"}
	PickPickers    = []string{"manual", "raypicker", "filterpicker", "earthworm", "other"}
)

// Filter is one frequency band applied before picking.
type Filter struct {
	HighPass *float64
	LowPass  *float64
}

// Amplitude is the amplitude measurement attached to a pick.
type Amplitude struct {
	Amplitude *float64
	Period    *float64
	SNR       *float64
}

// Pick is a phase arrival time measured at one site. It travels in the Data
// array tagged "Type": "Pick".
type Pick struct {
	ID              string
	Site            *Site
	Source          *Source
	Time            *time.Time
	Phase           string
	Polarity        string
	Onset           string
	Picker          string
	Filter          []Filter
	Amplitude       *Amplitude
	AssociationInfo *Associated
}

func ParsePick(doc Document) (*Pick, error) { return parsePick(doc, Root()) }

func parsePick(doc Document, p PathRef) (*Pick, error) {
	r := newFieldReader(doc, p, "Pick")
	pk := &Pick{
		ID:       r.text("ID"),
		Site:     nested(r, "Site", parseSite),
		Source:   nested(r, "Source", parseSource),
		Time:     r.time("Time"),
		Phase:    r.text("Phase"),
		Polarity: r.text("Polarity"),
		Onset:    r.text("Onset"),
		Picker:   r.text("Picker"),
		Filter: objects(r, "Filter", "Filter", func(fr *fieldReader) Filter {
			return Filter{HighPass: fr.num("HighPass"), LowPass: fr.num("LowPass")}
		}),
		Amplitude: nested(r, "Amplitude", func(m Document, p PathRef) (*Amplitude, error) {
			ar := newFieldReader(m, p, "Amplitude")
			a := &Amplitude{Amplitude: ar.num("Amplitude"), Period: ar.num("Period"), SNR: ar.num("SNR")}
			return a, ar.err
		}),
		AssociationInfo: nested(r, "AssociationInfo", parseAssociated),
	}
	if r.err != nil {
		return nil, r.err
	}
	return pk, nil
}

func (pk *Pick) ToDocument() Document {
	w := fieldWriter{"Type": TypePick}
	w.text("ID", pk.ID)
	w.doc("Site", pk.Site, pk.Site != nil)
	w.doc("Source", pk.Source, pk.Source != nil)
	w.time("Time", pk.Time)
	w.text("Phase", pk.Phase)
	w.text("Polarity", pk.Polarity)
	w.text("Onset", pk.Onset)
	w.text("Picker", pk.Picker)
	if len(pk.Filter) > 0 {
		fs := make([]any, 0, len(pk.Filter))
		for _, f := range pk.Filter {
			fw := fieldWriter{}
			fw.num("HighPass", f.HighPass)
			fw.num("LowPass", f.LowPass)
			fs = append(fs, Document(fw))
		}
		w["Filter"] = fs
	}
	if a := pk.Amplitude; a != nil {
		aw := fieldWriter{}
		aw.num("Amplitude", a.Amplitude)
		aw.num("Period", a.Period)
		aw.num("SNR", a.SNR)
		w["Amplitude"] = Document(aw)
	}
	w.doc("AssociationInfo", pk.AssociationInfo, pk.AssociationInfo != nil)
	return Document(w)
}

func (pk *Pick) Errors() Issues {
	c := newChecker("Pick")
	c.requiredText("ID", pk.ID)
	c.entity("Site", pk.Site != nil, pk.Site != nil && pk.Site.IsValid())
	c.entity("Source", pk.Source != nil, pk.Source != nil && pk.Source.IsValid())
	c.required("Time", pk.Time != nil)
	c.oneOf("Polarity", pk.Polarity, PickPolarities...)
	c.oneOf("Onset", pk.Onset, PickOnsets...)
	c.oneOf("Picker", pk.Picker, PickPickers...)
	c.optionalEntity("AssociationInfo", pk.AssociationInfo != nil, pk.AssociationInfo != nil && pk.AssociationInfo.IsValid())
	return c.result()
}

func (pk *Pick) IsValid() bool { return len(pk.Errors()) == 0 }

func (pk *Pick) clone() Pick {
	out := *pk
	out.Site = pk.Site.clone()
	out.Source = pk.Source.clone()
	out.Time = clonePtr(pk.Time)
	if pk.Filter != nil {
		out.Filter = make([]Filter, len(pk.Filter))
		for i, f := range pk.Filter {
			out.Filter[i] = Filter{HighPass: clonePtr(f.HighPass), LowPass: clonePtr(f.LowPass)}
		}
	}
	if pk.Amplitude != nil {
		out.Amplitude = &Amplitude{
			Amplitude: clonePtr(pk.Amplitude.Amplitude),
			Period:    clonePtr(pk.Amplitude.Period),
			SNR:       clonePtr(pk.Amplitude.SNR),
		}
	}
	out.AssociationInfo = pk.AssociationInfo.clone()
	return out
}
