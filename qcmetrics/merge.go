package qcmetrics

// SampleColumn is the name of the first summary column.
const SampleColumn = "Sample"

// Columns lists the summary columns in output order. A column is emitted
// only if at least one record has the field, except SampleColumn, which is
// always first. TotalMappingRate is deliberately not listed.
var Columns = []string{
	SampleColumn,
	TotalReads,
	FilteredReads,
	FilteringRate,
	DuplicationRate,
	InputReads,
	UniquelyMappedRate,
	MultiMappedRate,
	TooManyLociRate,
}

// Record holds the merged metrics of one sample.
type Record struct {
	Sample string
	Fields Fields
}

// Cell returns the value of a column; SampleColumn is not a field and
// reads as Absent.
func (r *Record) Cell(column string) Value {
	return r.Fields[column]
}

// Table is the merged summary: one record per sample, in first-seen order.
type Table struct {
	Columns []string
	Records []*Record
}

// Merger accumulates per-sample fields from any number of sources.
type Merger struct {
	bySample map[string]*Record
	records  []*Record
}

// NewMerger returns an empty Merger.
func NewMerger() *Merger {
	return &Merger{bySample: map[string]*Record{}}
}

// Add merges the fields of each entry into the record of its sample,
// creating the record the first time the sample is seen.
func (m *Merger) Add(metrics []SampleMetrics) {
	for _, sm := range metrics {
		r, ok := m.bySample[sm.Sample]
		if !ok {
			r = &Record{Sample: sm.Sample, Fields: Fields{}}
			m.bySample[sm.Sample] = r
			m.records = append(m.records, r)
		}
		for name, v := range sm.Fields {
			r.Fields[name] = v
		}
	}
}

// Table returns the merged records and the columns present in them.
func (m *Merger) Table() *Table {
	present := map[string]bool{}
	for _, r := range m.records {
		for name := range r.Fields {
			present[name] = true
		}
	}
	cols := []string{SampleColumn}
	for _, c := range Columns[1:] {
		if present[c] {
			cols = append(cols, c)
		}
	}
	return &Table{Columns: cols, Records: m.records}
}

// Merge merges the given sources, in order, into a Table.
func Merge(sources ...[]SampleMetrics) *Table {
	m := NewMerger()
	for _, s := range sources {
		m.Add(s)
	}
	return m.Table()
}
