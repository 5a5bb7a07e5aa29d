package detectionformats

import js "github.com/seismo/detectionformats/jsonschema"

// DocumentSchema describes the Detection document. Data elements are a oneOf
// keyed by their "Type" const.
func DocumentSchema() *js.Schema {
	s := js.Object(map[string]*js.Schema{
		"Type":            js.Const(TypeDetection),
		"ID":              js.NonEmptyString(),
		"Source":          sourceSchema(),
		"Hypocenter":      hypocenterSchema(),
		"DetectionType":   js.Enum(DetectionTypes...),
		"EventType":       js.Enum(EventTypes...),
		"Bayes":           js.Number(bound(0), nil),
		"MinimumDistance": js.Number(bound(0), nil),
		"RMS":             js.Number(nil, nil),
		"Gap":             js.Number(bound(0), bound(360)),
		"Data": js.Array(&js.Schema{OneOf: []*js.Schema{
			pickSchema(), beamSchema(), correlationSchema(),
		}}),
	}, "Type", "ID", "Source", "Hypocenter")
	s.Schema = js.Draft
	s.Title = TypeDetection
	return s
}

func bound(v float64) *float64 { return &v }

func sourceSchema() *js.Schema {
	return js.Object(map[string]*js.Schema{
		"AgencyID": js.NonEmptyString(),
		"Author":   js.NonEmptyString(),
	}, "AgencyID", "Author")
}

func siteSchema() *js.Schema {
	return js.Object(map[string]*js.Schema{
		"Station":  js.NonEmptyString(),
		"Channel":  js.String(),
		"Network":  js.NonEmptyString(),
		"Location": js.String(),
	}, "Station", "Network")
}

func hypocenterSchema() *js.Schema {
	return js.Object(map[string]*js.Schema{
		"Latitude":       js.Number(bound(MinLatitude), bound(MaxLatitude)),
		"Longitude":      js.Number(bound(MinLongitude), bound(MaxLongitude)),
		"Time":           js.DateTime(),
		"Depth":          js.Number(bound(MinHypocenterDepth), bound(MaxHypocenterDepth)),
		"LatitudeError":  js.Number(nil, nil),
		"LongitudeError": js.Number(nil, nil),
		"TimeError":      js.Number(nil, nil),
		"DepthError":     js.Number(nil, nil),
	}, "Latitude", "Longitude", "Time", "Depth")
}

func associatedSchema() *js.Schema {
	return js.Object(map[string]*js.Schema{
		"Phase":    js.String(),
		"Distance": js.Number(bound(0), bound(180)),
		"Azimuth":  js.Number(bound(0), bound(360)),
		"Residual": js.Number(nil, nil),
		"Sigma":    js.Number(nil, nil),
	})
}

func pickSchema() *js.Schema {
	return js.Object(map[string]*js.Schema{
		"Type":     js.Const(TypePick),
		"ID":       js.NonEmptyString(),
		"Site":     siteSchema(),
		"Source":   sourceSchema(),
		"Time":     js.DateTime(),
		"Phase":    js.String(),
		"Polarity": js.Enum(PickPolarities...),
		"Onset":    js.Enum(PickOnsets...),
		"Picker":   js.Enum(PickPickers...),
		"Filter": js.Array(js.Object(map[string]*js.Schema{
			"HighPass": js.Number(nil, nil),
			"LowPass":  js.Number(nil, nil),
		})),
		"Amplitude": js.Object(map[string]*js.Schema{
			"Amplitude": js.Number(nil, nil),
			"Period":    js.Number(nil, nil),
			"SNR":       js.Number(nil, nil),
		}),
		"AssociationInfo": associatedSchema(),
	}, "Type", "ID", "Site", "Source", "Time")
}

func beamSchema() *js.Schema {
	return js.Object(map[string]*js.Schema{
		"Type":             js.Const(TypeBeam),
		"ID":               js.NonEmptyString(),
		"Site":             siteSchema(),
		"Source":           sourceSchema(),
		"StartTime":        js.DateTime(),
		"EndTime":          js.DateTime(),
		"BackAzimuth":      js.Number(bound(0), bound(360)),
		"BackAzimuthError": js.Number(nil, nil),
		"Slowness":         js.Number(bound(0), nil),
		"SlownessError":    js.Number(nil, nil),
		"PowerRatio":       js.Number(nil, nil),
		"PowerRatioError":  js.Number(nil, nil),
		"AssociationInfo":  associatedSchema(),
	}, "Type", "ID", "Site", "Source", "StartTime", "EndTime", "BackAzimuth", "Slowness")
}

func correlationSchema() *js.Schema {
	return js.Object(map[string]*js.Schema{
		"Type":               js.Const(TypeCorrelation),
		"ID":                 js.NonEmptyString(),
		"Site":               siteSchema(),
		"Source":             sourceSchema(),
		"Phase":              js.NonEmptyString(),
		"Time":               js.DateTime(),
		"Correlation":        js.Number(nil, nil),
		"Hypocenter":         hypocenterSchema(),
		"EventType":          js.Enum(EventTypes...),
		"Magnitude":          js.Number(nil, nil),
		"SNR":                js.Number(nil, nil),
		"ZScore":             js.Number(nil, nil),
		"DetectionThreshold": js.Number(nil, nil),
		"ThresholdType":      js.String(),
		"AssociationInfo":    associatedSchema(),
	}, "Type", "ID", "Site", "Source", "Phase", "Time", "Correlation", "Hypocenter")
}
