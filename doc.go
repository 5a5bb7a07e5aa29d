// Package detectionformats reads, writes and validates seismic Detection
// messages.
//
// A Detection is a candidate event: a Hypocenter, the Source that reported
// it, and the picks, beams and correlations that support it. In a document
// those three kinds share one "Data" array, each element tagged by "Type".
//
// The package keeps three concerns apart:
//
//   - Parsing (Parse, ParseFrom, StreamParse, ParseYAML) is lenient. Missing
//     fields stay absent and Data elements with an unknown tag are dropped.
//     It fails only when a present value has the wrong shape, and then
//     returns Issues carrying a JSON Pointer.
//   - Rendering (ToDocument, MarshalJSON, MarshalYAML) is total. Absent
//     fields are omitted and Data is written as picks, then beams, then
//     correlations.
//   - Validation (Errors, IsValid, Validate) never fails. It returns every
//     violation in a fixed rule order.
//
// Typical usage:
//
//	d, err := detectionformats.ParseFrom(ctx, detectionformats.JSONBytes(data),
//	    detectionformats.ParseOpt{Strictness: detectionformats.Strictness{OnDuplicateKey: detectionformats.Error}})
//	if err != nil {
//	    return err
//	}
//	if ok, iss := detectionformats.Validate(d); !ok {
//	    for _, m := range iss.Messages() {
//	        log.Println(m)
//	    }
//	}
package detectionformats
