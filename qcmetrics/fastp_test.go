package qcmetrics_test

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bioqc/qcmetrics"
	"github.com/grailbio/testutil"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastpJSON returns a minimal fastp report. A negative dupRate omits the
// duplication section.
func fastpJSON(before, after int, dupRate float64) string {
	s := fmt.Sprintf(`{
  "summary": {
    "fastp_version": "0.23.2",
    "before_filtering": {"total_reads": %d, "total_bases": 3000000},
    "after_filtering": {"total_reads": %d, "total_bases": 2700000}
  }`, before, after)
	if dupRate >= 0 {
		s += fmt.Sprintf(`,
  "duplication": {"rate": %v}`, dupRate)
	}
	return s + "\n}\n"
}

func writeFile(t *testing.T, dir, name, data string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(path, []byte(data), 0644))
	return path
}

func writeGzipFile(t *testing.T, dir, name, data string) string {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return writeFile(t, dir, name, buf.String())
}

func TestParseFastpReportWithoutDuplication(t *testing.T) {
	m, err := qcmetrics.ParseFastpReport("S1", []byte(fastpJSON(200, 180, -1)))
	require.NoError(t, err)
	assert.Equal(t, "S1", m.Sample)
	assert.Equal(t, qcmetrics.Fields{
		qcmetrics.TotalReads:      qcmetrics.FloatValue(100),
		qcmetrics.FilteredReads:   qcmetrics.FloatValue(90),
		qcmetrics.FilteringRate:   qcmetrics.FloatValue(10),
		qcmetrics.DuplicationRate: qcmetrics.NAValue(),
	}, m.Fields)
	assert.Equal(t, "100.0", m.Fields[qcmetrics.TotalReads].String())
	assert.Equal(t, "10.0", m.Fields[qcmetrics.FilteringRate].String())
	assert.Equal(t, "NA", m.Fields[qcmetrics.DuplicationRate].String())
}

func TestParseFastpReportRounding(t *testing.T) {
	for _, test := range []struct {
		name          string
		before, after int
		dupRate       float64
		wantFiltering float64
		wantDup       float64
	}{
		{"thirds", 3, 2, 0.123456, 33.33, 12.35},
		{"odd total", 2000001, 1999999, 0.5, 0, 50},
		{"nothing kept", 10, 0, 0, 100, 0},
		{"everything kept", 1000, 1000, 0.0001, 0, 0.01},
	} {
		t.Run(test.name, func(t *testing.T) {
			m, err := qcmetrics.ParseFastpReport("S", []byte(fastpJSON(test.before, test.after, test.dupRate)))
			require.NoError(t, err)
			assert.Equal(t, qcmetrics.FloatValue(test.wantFiltering), m.Fields[qcmetrics.FilteringRate])
			assert.Equal(t, qcmetrics.FloatValue(test.wantDup), m.Fields[qcmetrics.DuplicationRate])
			assert.Equal(t, qcmetrics.FloatValue(float64(test.before)/2), m.Fields[qcmetrics.TotalReads])
		})
	}
}

func TestFilteringRateInRange(t *testing.T) {
	for before := 1; before <= 200; before += 7 {
		for after := 0; after <= before; after += 3 {
			m, err := qcmetrics.ParseFastpReport("S", []byte(fastpJSON(before, after, -1)))
			require.NoError(t, err)
			rate := m.Fields[qcmetrics.FilteringRate].Float
			assert.Truef(t, rate >= 0 && rate <= 100, "before=%d after=%d rate=%v", before, after, rate)
		}
	}
}

func TestParseFastpReportErrors(t *testing.T) {
	for _, test := range []struct {
		name, data string
	}{
		{"not json", "fastp crashed\n"},
		{"truncated", `{"summary": {"before_filtering": {"total_reads": 10}`},
		{"no summary", `{"duplication": {"rate": 0.1}}`},
		{"no before", `{"summary": {"after_filtering": {"total_reads": 10}}}`},
		{"no after", `{"summary": {"before_filtering": {"total_reads": 10}}}`},
		{"no total", `{"summary": {"before_filtering": {"total_bases": 10}, "after_filtering": {"total_reads": 10}}}`},
		{"zero before", `{"summary": {"before_filtering": {"total_reads": 0}, "after_filtering": {"total_reads": 0}}}`},
		{"no rate", `{"summary": {"before_filtering": {"total_reads": 10}, "after_filtering": {"total_reads": 8}}, "duplication": {}}`},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := qcmetrics.ParseFastpReport("S", []byte(test.data))
			require.Error(t, err)
			assert.True(t, errors.Is(errors.Invalid, err), "%v", err)
		})
	}
}

func TestReadFastpReports(t *testing.T) {
	ctx := vcontext.Background()
	dir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	paths := []string{
		writeFile(t, dir, "B2_fastp.json", fastpJSON(400, 300, 0.25)),
		writeGzipFile(t, dir, "A1_fastp.json.gz", fastpJSON(200, 180, -1)),
	}
	metrics, err := qcmetrics.ReadFastpReports(ctx, paths)
	require.NoError(t, err)
	require.Len(t, metrics, 2)
	assert.Equal(t, "B2", metrics[0].Sample)
	assert.Equal(t, qcmetrics.FloatValue(25), metrics[0].Fields[qcmetrics.DuplicationRate])
	assert.Equal(t, "A1", metrics[1].Sample)
	assert.Equal(t, qcmetrics.FloatValue(90), metrics[1].Fields[qcmetrics.FilteredReads])

	// The first bad file aborts the whole batch.
	bad := writeFile(t, dir, "C3_fastp.json", "{")
	_, err = qcmetrics.ReadFastpReports(ctx, append(paths, bad))
	require.Error(t, err)
	assert.True(t, errors.Is(errors.Invalid, err), "%v", err)
	assert.Contains(t, err.Error(), bad)

	_, err = qcmetrics.ReadFastpReports(ctx, []string{filepath.Join(dir, "missing_fastp.json")})
	require.Error(t, err)
	assert.False(t, qcmetrics.IsParseError(err), "%v", err)
}

func TestSampleID(t *testing.T) {
	for _, test := range []struct {
		path, suffix, want string
	}{
		{"/data/S1_fastp.json", qcmetrics.FastpSuffix, "S1"},
		{"S1_fastp.json.gz", qcmetrics.FastpSuffix, "S1"},
		{"run_fastp.json/x/S1_fastp.json", qcmetrics.FastpSuffix, "S1"},
		{"/logs/S_1_Log.final.out", qcmetrics.StarLogSuffix, "S_1"},
		{"/logs/S1.log", qcmetrics.StarLogSuffix, "S1.log"},
	} {
		assert.Equal(t, test.want, qcmetrics.SampleID(test.path, test.suffix), test.path)
	}
}

func TestSplitPaths(t *testing.T) {
	assert.Nil(t, qcmetrics.SplitPaths(""))
	assert.Equal(t, []string{"a", "b"}, qcmetrics.SplitPaths("a,,b,"))
	assert.Equal(t, []string{"a b"}, qcmetrics.SplitPaths(" a b "))
}
