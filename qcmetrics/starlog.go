package qcmetrics

import (
	"context"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// StarLogSuffix is the file name suffix of a STAR final log.
const StarLogSuffix = "_Log.final.out"

// Fields reported from a STAR final log.
const (
	InputReads         = "input_reads"
	UniquelyMappedRate = "uniquely_mapped_rate"
	MultiMappedRate    = "multi_mapped_rate"
	TooManyLociRate    = "too_many_loci_rate"
	// TotalMappingRate is computed but is not one of the summary columns.
	TotalMappingRate = "total_mapping_rate"
)

// LogParser extracts metrics from one kind of free-text log.
type LogParser struct {
	// Suffix is stripped from the file base name to give the sample ID.
	Suffix string
	// Extractors are applied in order to the whole log.
	Extractors []Extractor
	// Derive, if set, adds computed fields after extraction.
	Derive func(Fields)
}

// StarLogParser parses STAR Log.final.out files.
var StarLogParser = LogParser{
	Suffix: StarLogSuffix,
	Extractors: []Extractor{
		IntExtractor(InputReads, `Number of input reads \|\s+(\d+)`),
		FloatExtractor(UniquelyMappedRate, `Uniquely mapped reads % \|\s+([\d\.]+)%`),
		FloatExtractor(MultiMappedRate, `% of reads mapped to multiple loci \|\s+([\d\.]+)%`),
		FloatExtractor(TooManyLociRate, `% of reads mapped to too many loci \|\s+([\d\.]+)%`),
	},
	Derive: deriveTotalMappingRate,
}

// deriveTotalMappingRate sums the unique, multi and too-many-loci rates.
// It only runs if the too-many-loci rate was reported; a missing unique or
// multi rate counts as 0, so the total under-reports in that case.
func deriveTotalMappingRate(fields Fields) {
	tooMany, ok := fields[TooManyLociRate]
	if !ok {
		return
	}
	fields[TotalMappingRate] = FloatValue(fields[UniquelyMappedRate].Float + fields[MultiMappedRate].Float + tooMany.Float)
}

// Parse extracts metrics for one sample from the contents of a log. A log
// that matches no extractor yields a record without fields. The returned
// error has kind errors.Invalid if a matched value cannot be converted.
func (p LogParser) Parse(sample string, data []byte) (SampleMetrics, error) {
	fields := Fields{}
	for _, e := range p.Extractors {
		v, ok, err := e.Extract(data)
		if err != nil {
			return SampleMetrics{}, errors.E(errors.Invalid, "log for", sample, err)
		}
		if ok {
			fields[e.Field] = v
		}
	}
	if p.Derive != nil {
		p.Derive(fields)
	}
	return SampleMetrics{Sample: sample, Fields: fields}, nil
}

// Read reads and parses the log at path.
func (p LogParser) Read(ctx context.Context, path string) (SampleMetrics, error) {
	data, err := readInput(ctx, path)
	if err != nil {
		return SampleMetrics{}, err
	}
	m, err := p.Parse(SampleID(path, p.Suffix), data)
	if err != nil {
		return SampleMetrics{}, errors.E(err, path)
	}
	log.Debug.Printf("%s: sample %s, %d fields", path, m.Sample, len(m.Fields))
	return m, nil
}

// ReadAll reads each path in order. It stops at the first error.
func (p LogParser) ReadAll(ctx context.Context, paths []string) ([]SampleMetrics, error) {
	metrics := make([]SampleMetrics, 0, len(paths))
	for _, path := range paths {
		m, err := p.Read(ctx, path)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, nil
}
