// Package report renders planner results for people and for other programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aybabtme/uniplot/histogram"
	"gopkg.in/yaml.v3"

	"github.com/domino14/upperhold/equity"
	"github.com/domino14/upperhold/strategy"
)

const histogramBins = 10

// Write renders res in the given format: "text", "yaml" or "json".
func Write(w io.Writer, res strategy.Result, format string) error {
	switch format {
	case "yaml":
		out, err := yaml.Marshal(res)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "text", "":
		return writeText(w, res)
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeText(w io.Writer, res strategy.Result) error {
	_, err := fmt.Fprintf(w, "Best strategy for hand %v is to hold %v (re-roll %v) with expected score %.4f\n",
		res.Hand, res.Hold, res.Reroll, res.ExpectedValue)
	if err != nil || len(res.Ranked) == 0 {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "\nHold\tRe-roll\tEquity"); err != nil {
		return err
	}
	for _, r := range res.Ranked {
		if _, err := fmt.Fprintf(tw, "%v\t%v\t%.4f\n", r.Hold, r.Reroll, r.Equity); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Histogram prints the score distribution of a hold as a bar chart.
func Histogram(w io.Writer, d *equity.Distribution) error {
	_, err := fmt.Fprintf(w, "Scores holding %v and rolling %d (%d sequences, mean %.4f, stdev %.4f, range %d-%d)\n",
		d.Held, d.Free, d.Rolls, d.Mean, d.Stdev, d.Min, d.Max)
	if err != nil {
		return err
	}
	if len(d.Scores) < 2 {
		for _, sc := range d.Scores {
			if _, err := fmt.Fprintf(w, "%d: %d\n", sc.Score, sc.Count); err != nil {
				return err
			}
		}
		return nil
	}
	hist := histogram.Hist(histogramBins, d.Samples)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}
