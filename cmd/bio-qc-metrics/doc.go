/*
bio-qc-metrics summarizes read QC for a batch of samples. It merges the
fastp filtering report and the STAR alignment log of each sample into one
row of a TSV table and of an HTML report.

Sample usage:
bio-qc-metrics \
    S1_fastp.json,S2_fastp.json \
    S1_Log.final.out,S2_Log.final.out \
    qc_summary.tsv \
    qc_summary.html
*/
package main
