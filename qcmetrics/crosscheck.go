package qcmetrics

import (
	"github.com/grailbio/bioqc/util"
)

// MaxNameDistance is the largest edit distance at which a sample present in
// only one source is paired with a suggestion from the other source.
const MaxNameDistance = 2

// Unpaired describes a sample that was reported by only one source.
type Unpaired struct {
	Sample string
	// Source is the name of the source that reported the sample.
	Source string
	// Suggestion is the closest sample name from the other source, or ""
	// if none is within MaxNameDistance.
	Suggestion string
	Distance   int
}

// CrossCheck returns the samples found in exactly one of a and b, in input
// order, a's before b's. Sample IDs are merged only on exact string match,
// so a near-miss suggestion usually means a naming problem upstream.
func CrossCheck(aName string, a []SampleMetrics, bName string, b []SampleMetrics) []Unpaired {
	aIDs, bIDs := sampleIDs(a), sampleIDs(b)
	var unpaired []Unpaired
	check := func(source string, ids, others []string) {
		otherSet := map[string]bool{}
		for _, id := range others {
			otherSet[id] = true
		}
		for _, id := range ids {
			if otherSet[id] {
				continue
			}
			u := Unpaired{Sample: id, Source: source, Distance: -1}
			if s, d := util.Nearest(id, others); d >= 0 && d <= MaxNameDistance {
				u.Suggestion, u.Distance = s, d
			}
			unpaired = append(unpaired, u)
		}
	}
	check(aName, aIDs, bIDs)
	check(bName, bIDs, aIDs)
	return unpaired
}

// sampleIDs returns the distinct sample IDs of metrics in input order.
func sampleIDs(metrics []SampleMetrics) []string {
	seen := map[string]bool{}
	var ids []string
	for _, m := range metrics {
		if !seen[m.Sample] {
			seen[m.Sample] = true
			ids = append(ids, m.Sample)
		}
	}
	return ids
}
