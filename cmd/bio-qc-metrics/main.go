package main

import (
	"context"
	"fmt"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bioqc/qcmetrics"
	"v.io/x/lib/cmdline"
)

// run parses all inputs, then writes both outputs. Nothing is written if
// any input fails to parse.
func run(ctx context.Context, fastpList, starList, tsvPath, htmlPath string) error {
	fastpPaths := qcmetrics.SplitPaths(fastpList)
	starPaths := qcmetrics.SplitPaths(starList)

	filtering, err := qcmetrics.ReadFastpReports(ctx, fastpPaths)
	if err != nil {
		return err
	}
	log.Printf("read %d fastp reports", len(filtering))
	alignment, err := qcmetrics.StarLogParser.ReadAll(ctx, starPaths)
	if err != nil {
		return err
	}
	log.Printf("read %d STAR logs", len(alignment))

	if len(filtering) > 0 && len(alignment) > 0 {
		for _, u := range qcmetrics.CrossCheck("fastp", filtering, "STAR", alignment) {
			if u.Suggestion != "" {
				log.Printf("warning: sample %s only has %s metrics; did you mean %s?", u.Sample, u.Source, u.Suggestion)
			} else {
				log.Printf("warning: sample %s only has %s metrics", u.Sample, u.Source)
			}
		}
	}

	table := qcmetrics.Merge(filtering, alignment)
	if err := qcmetrics.WriteTSVFile(ctx, tsvPath, table); err != nil {
		return err
	}
	if err := qcmetrics.WriteHTMLFile(ctx, htmlPath, table); err != nil {
		return err
	}
	log.Printf("wrote %d samples, %d columns to %s and %s", len(table.Records), len(table.Columns), tsvPath, htmlPath)
	return nil
}

func newCmdRoot() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "bio-qc-metrics",
		Short:    "Summarize fastp and STAR QC metrics per sample",
		Long:     usageLong,
		ArgsName: "fastp-reports star-logs summary.tsv summary.html",
		ArgsLong: `
fastp-reports is a comma-separated list of fastp JSON reports named <sample>_fastp.json.
star-logs is a comma-separated list of STAR logs named <sample>_Log.final.out.
Either list may be empty. summary.tsv and summary.html are the output paths.
Paths ending in .gz are read and written gzip-compressed.`,
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 4 {
			return fmt.Errorf("bio-qc-metrics takes 4 arguments, but got %d: %v", len(argv), argv)
		}
		return run(vcontext.Background(), argv[0], argv[1], argv[2], argv[3])
	})
	return cmd
}

const usageLong = `
bio-qc-metrics merges per-sample read filtering metrics from fastp and
alignment metrics from STAR into one TSV table and one HTML report.

Sample IDs are taken from file names, so "S1_fastp.json" and
"S1_Log.final.out" are both sample "S1". Columns that no input reports are
omitted from both outputs.`

func main() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(newCmdRoot())
}
