package report

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/judge-bench/internal/bench/hypothesis"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/judge-bench/internal/bench/rating"
)

func WriteTable(doc *Document, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== LLM Judge Correlation Experiment ===\n\n")
	fmt.Fprintf(tw, "Experiment:\t%s\n", doc.ExperimentID)
	fmt.Fprintf(tw, "Run:\t%s\n", doc.RunID)
	fmt.Fprintf(tw, "Seed:\t%d\n", doc.Seed)
	fmt.Fprintf(tw, "Papers:\t%d\n", doc.NPapers)
	fmt.Fprintf(tw, "Judges:\t%s\n", strings.Join(doc.Judges, ", "))
	fmt.Fprintf(tw, "p-values:\t%s\n", doc.SignificanceMethod.Label())

	for i, judge := range doc.Judges {
		fmt.Fprintf(tw, "\n--- [%d/%d] Judge: %s ---\n\n", i+1, len(doc.Judges), judge)
		writeStatsTable(tw, doc.LLMResults[judge])
	}

	if doc.EnsembleResults != nil {
		fmt.Fprintf(tw, "\n--- Ensemble: human + %s ---\n\n", doc.EnsembleResults.Judge)
		writeStatsTable(tw, doc.EnsembleResults.Results)
	}

	writeValidation(tw, &doc.HypothesisValidation)

	fmt.Fprintf(tw, "\nKey finding: %s\n", doc.Summary.KeyFinding)

	tw.Flush()
}

func writeStatsTable(tw *tabwriter.Writer, stats metrics.StatSet) {
	header := []string{"Dimension", "Class", "r", "p", "MAE", "Human mean", "Judge mean"}
	writeHeader(tw, header)

	for _, d := range rating.Dimensions {
		s, ok := stats[d]
		if !ok {
			continue
		}
		row := []string{
			string(d),
			string(d.Class()),
			fmt.Sprintf("%.3f", s.Correlation),
			fmt.Sprintf("%.4f", s.PValue),
			fmt.Sprintf("%.3f", s.MAE),
			fmt.Sprintf("%.3f", s.HumanMean),
			fmt.Sprintf("%.3f", s.JudgeMean),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintf(tw, "mean r\tstructured\t%.3f\n", stats.MeanCorrelation(rating.StructuredDimensions))
	fmt.Fprintf(tw, "mean r\tsubjective\t%.3f\n", stats.MeanCorrelation(rating.SubjectiveDimensions))
}

func writeValidation(tw *tabwriter.Writer, v *hypothesis.Validation) {
	fmt.Fprintf(tw, "\nHypothesis Validation\n\n")

	writeHeader(tw, []string{"ID", "Hypothesis", "Result", "Threshold", "Status"})

	fmt.Fprintf(tw, "H1\t%s\t%.3f\t%.2f\t%s\n", v.H1.Hypothesis, v.H1.Result, v.H1.Threshold, status(v.H1.Validated))
	fmt.Fprintf(tw, "H2\t%s\t%.3f\t%.2f\t%s\n", v.H2.Hypothesis, v.H2.Result, v.H2.Threshold, status(v.H2.Validated))
	fmt.Fprintf(tw, "H3\t%s\t%+.1f%%\t%.0f%%\t%s\n", v.H3.Hypothesis, v.H3.ImprovementPercent, v.H3.Threshold*100, status(v.H3.Validated))

	fmt.Fprintf(tw, "\nH3 variant:\t%s\n", v.H3.Variant)
	fmt.Fprintf(tw, "Best model:\t%s (r=%.3f)\n", v.H3.BestModel, v.H3.IndividualBest)
	if v.H3.EnsemblePerformance != nil {
		fmt.Fprintf(tw, "Ensemble:\tr=%.3f\n", *v.H3.EnsemblePerformance)
	}
	if v.H3.OthersMean != nil {
		fmt.Fprintf(tw, "Other models:\tr=%.3f\n", *v.H3.OthersMean)
	}

	models := make([]string, 0, len(v.H3.ModelPerformances))
	for m := range v.H3.ModelPerformances {
		models = append(models, m)
	}
	slices.Sort(models)
	for _, m := range models {
		fmt.Fprintf(tw, "  %s\tr=%.3f\n", m, v.H3.ModelPerformances[m])
	}
}

func writeHeader(tw *tabwriter.Writer, header []string) {
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func status(ok bool) string {
	if ok {
		return "VALIDATED"
	}
	return "NOT VALIDATED"
}
