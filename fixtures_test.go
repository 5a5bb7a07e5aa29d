package detectionformats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	df "github.com/seismo/detectionformats"
)

const detectionJSON = `{
  "Type": "Detection",
  "ID": "12GFH48776857",
  "Source": {"AgencyID": "US", "Author": "TestAuthor"},
  "Hypocenter": {
    "Latitude": 40.3344, "Longitude": -121.44, "Time": "2015-12-28T21:32:24.017Z", "Depth": 32.44,
    "LatitudeError": 12.5, "LongitudeError": 22.64, "TimeError": 2.44, "DepthError": 16.7
  },
  "DetectionType": "New",
  "EventType": "earthquake",
  "Bayes": 2.65,
  "MinimumDistance": 2.14,
  "RMS": 3.8,
  "Gap": 33.67,
  "Data": [
    {"Type": "Correlation", "ID": "12GFH48776857", "Site": {"Station": "BMN", "Network": "LB", "Channel": "HHZ", "Location": "01"},
     "Source": {"AgencyID": "US", "Author": "TestAuthor"}, "Phase": "P", "Time": "2015-12-28T21:32:24.017Z", "Correlation": 2.65,
     "Hypocenter": {"Latitude": 40.3344, "Longitude": -121.44, "Time": "2015-12-28T21:30:44.039Z", "Depth": 32.44},
     "EventType": "earthquake", "Magnitude": 2.14, "SNR": 3.8, "ZScore": 33.67, "DetectionThreshold": 1.5, "ThresholdType": "minimum"},
    {"Type": "Pick", "ID": "12GFH48776857", "Site": {"Station": "BMN", "Network": "LB", "Channel": "HHZ", "Location": "01"},
     "Source": {"AgencyID": "US", "Author": "TestAuthor"}, "Time": "2015-12-28T21:32:24.017Z", "Phase": "P",
     "Polarity": "up", "Onset": "impulsive", "Picker": "manual", "Filter": [{"HighPass": 1.05, "LowPass": 2.65}],
     "Amplitude": {"Amplitude": 21.5, "Period": 2.65, "SNR": 3.8},
     "AssociationInfo": {"Phase": "P", "Distance": 0.442559, "Azimuth": 0.418479, "Residual": -0.025393, "Sigma": 0.086333}},
    {"Type": "Beam", "ID": "12GFH48776857", "Site": {"Station": "BMN", "Network": "LB", "Channel": "HHZ", "Location": "01"},
     "Source": {"AgencyID": "US", "Author": "TestAuthor"}, "StartTime": "2015-12-28T21:32:24.017Z", "EndTime": "2015-12-28T21:32:30.017Z",
     "BackAzimuth": 2.65, "BackAzimuthError": 3.8, "Slowness": 1.44, "SlownessError": 4.5, "PowerRatio": 12.18, "PowerRatioError": 1.2}
  ]
}`

var originTime = time.Date(2015, 12, 28, 21, 32, 24, 17_000_000, time.UTC)

func validSource() *df.Source { return &df.Source{AgencyID: "US", Author: "TestAuthor"} }

func validSite() *df.Site { return &df.Site{Station: "BMN", Network: "LB", Channel: "HHZ", Location: "01"} }

func validHypocenter() *df.Hypocenter {
	return &df.Hypocenter{
		Latitude:  df.Float(40.3344),
		Longitude: df.Float(-121.44),
		Time:      df.Time(originTime),
		Depth:     df.Float(32.44),
	}
}

func validPick(id string) df.Pick {
	return df.Pick{ID: id, Site: validSite(), Source: validSource(), Time: df.Time(originTime), Phase: "P"}
}

func validBeam(id string) df.Beam {
	return df.Beam{
		ID: id, Site: validSite(), Source: validSource(),
		StartTime: df.Time(originTime), EndTime: df.Time(originTime.Add(6 * time.Second)),
		BackAzimuth: df.Float(2.65), Slowness: df.Float(1.44),
	}
}

func validCorrelation(id string) df.Correlation {
	return df.Correlation{
		ID: id, Site: validSite(), Source: validSource(), Phase: "P",
		Time: df.Time(originTime), Correlation: df.Float(2.65), Hypocenter: validHypocenter(),
	}
}

func parseJSON(t *testing.T, s string) *df.Detection {
	t.Helper()
	doc, err := df.DecodeDocument(t.Context(), df.JSONBytes([]byte(s)))
	require.NoError(t, err)
	d, err := df.Parse(doc)
	require.NoError(t, err)
	return d
}

func codes(iss df.Issues) []string {
	out := make([]string, 0, len(iss))
	for _, it := range iss {
		out = append(out, it.Code)
	}
	return out
}
