package qcmetrics

import (
	"context"
	"encoding/json"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// FastpSuffix is the file name suffix of a fastp JSON report. It is
// stripped from the base name to obtain the sample ID.
const FastpSuffix = "_fastp.json"

// Fields reported from a fastp JSON report.
const (
	TotalReads      = "total_reads"
	FilteredReads   = "filtered_reads"
	FilteringRate   = "filtering_rate"
	DuplicationRate = "duplication_rate"
)

// fastpReport is the subset of the fastp JSON schema that is summarized.
// Pointers distinguish missing keys from zeros.
type fastpReport struct {
	Summary *struct {
		BeforeFiltering *fastpReadStats `json:"before_filtering"`
		AfterFiltering  *fastpReadStats `json:"after_filtering"`
	} `json:"summary"`
	Duplication *struct {
		Rate *float64 `json:"rate"`
	} `json:"duplication"`
}

type fastpReadStats struct {
	// TotalReads counts both mates of a pair.
	TotalReads *float64 `json:"total_reads"`
}

// ParseFastpReport extracts metrics for one sample from the contents of a
// fastp JSON report. Read counts are halved to give read pairs. The
// filtering rate is computed from the unhalved totals. The duplication rate
// is NA when the report has no "duplication" section.
//
// The returned error has kind errors.Invalid if data is not valid JSON or
// lacks a required key.
func ParseFastpReport(sample string, data []byte) (SampleMetrics, error) {
	var report fastpReport
	if err := json.Unmarshal(data, &report); err != nil {
		return SampleMetrics{}, errors.E(errors.Invalid, "fastp report for", sample, err)
	}
	if report.Summary == nil {
		return SampleMetrics{}, errors.E(errors.Invalid, "fastp report for", sample, `missing "summary"`)
	}
	before, after := report.Summary.BeforeFiltering, report.Summary.AfterFiltering
	switch {
	case before == nil || before.TotalReads == nil:
		return SampleMetrics{}, errors.E(errors.Invalid, "fastp report for", sample, `missing "summary.before_filtering.total_reads"`)
	case after == nil || after.TotalReads == nil:
		return SampleMetrics{}, errors.E(errors.Invalid, "fastp report for", sample, `missing "summary.after_filtering.total_reads"`)
	case *before.TotalReads == 0:
		return SampleMetrics{}, errors.E(errors.Invalid, "fastp report for", sample, "has zero reads before filtering")
	}

	fields := Fields{
		TotalReads:      FloatValue(*before.TotalReads / 2),
		FilteredReads:   FloatValue(*after.TotalReads / 2),
		FilteringRate:   FloatValue(round2((1 - *after.TotalReads / *before.TotalReads) * 100)),
		DuplicationRate: NAValue(),
	}
	if dup := report.Duplication; dup != nil {
		if dup.Rate == nil {
			return SampleMetrics{}, errors.E(errors.Invalid, "fastp report for", sample, `missing "duplication.rate"`)
		}
		fields[DuplicationRate] = FloatValue(round2(*dup.Rate * 100))
	}
	return SampleMetrics{Sample: sample, Fields: fields}, nil
}

// ReadFastpReport reads the fastp report at path. The sample ID is derived
// from the file name.
func ReadFastpReport(ctx context.Context, path string) (SampleMetrics, error) {
	data, err := readInput(ctx, path)
	if err != nil {
		return SampleMetrics{}, err
	}
	m, err := ParseFastpReport(SampleID(path, FastpSuffix), data)
	if err != nil {
		return SampleMetrics{}, errors.E(err, path)
	}
	log.Debug.Printf("%s: sample %s, %d fields", path, m.Sample, len(m.Fields))
	return m, nil
}

// ReadFastpReports reads each path in order. It stops at the first error.
func ReadFastpReports(ctx context.Context, paths []string) ([]SampleMetrics, error) {
	metrics := make([]SampleMetrics, 0, len(paths))
	for _, path := range paths {
		m, err := ReadFastpReport(ctx, path)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, nil
}
