/*
Package qcmetrics summarizes per-sample read QC across a sequencing
pipeline. It reads fastp JSON reports (read filtering) and STAR
Log.final.out files (alignment), merges their metrics by sample ID and
writes them as a TSV table and a static HTML report.

Sample IDs come from file names: "S1_fastp.json" and "S1_Log.final.out"
both belong to sample "S1". A sample reported by only one tool gets a row
with the other tool's columns left empty.
*/
package qcmetrics
