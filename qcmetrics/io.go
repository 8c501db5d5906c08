package qcmetrics

import (
	"context"
	"io"
	"io/ioutil"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/klauspost/compress/gzip"
)

// readInput returns the whole contents of path, decompressing it if the
// path names a gzip file.
func readInput(ctx context.Context, path string) (data []byte, err error) {
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return nil, errors.E(err, "open", path)
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = errors.E(cerr, "close", path)
		}
	}()
	reader := io.Reader(in.Reader(ctx))
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, gerr := gzip.NewReader(reader)
		if gerr != nil {
			return nil, errors.E(gerr, "gunzip", path)
		}
		defer gz.Close() // nolint: errcheck
		reader = gz
	}
	if data, err = ioutil.ReadAll(reader); err != nil {
		return nil, errors.E(err, "read", path)
	}
	return data, nil
}

// writeOutput creates path and passes a writer for it to write. The output
// is gzip-compressed if the path names a gzip file.
func writeOutput(ctx context.Context, path string, write func(io.Writer) error) (err error) {
	var out file.File
	if out, err = file.Create(ctx, path); err != nil {
		return errors.E(err, "create", path)
	}
	defer file.CloseAndReport(ctx, out, &err)
	w := out.Writer(ctx)
	if fileio.DetermineType(path) != fileio.Gzip {
		return write(w)
	}
	gz := gzip.NewWriter(w)
	if err = write(gz); err != nil {
		return err
	}
	return gz.Close()
}

// SampleID derives a sample identifier from an input path: the base name
// with any ".gz" extension dropped and then suffix removed.
func SampleID(path, suffix string) string {
	name := file.Base(path)
	if fileio.DetermineType(path) == fileio.Gzip {
		name = strings.TrimSuffix(name, ".gz")
	}
	return strings.TrimSuffix(name, suffix)
}

// SplitPaths splits a comma-separated path list, skipping empty entries.
func SplitPaths(list string) []string {
	var paths []string
	for _, p := range strings.Split(list, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// IsParseError reports whether err was caused by malformed input content,
// as opposed to a failure to read it.
func IsParseError(err error) bool {
	return errors.Is(errors.Invalid, err)
}
