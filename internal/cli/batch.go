package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/logger"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/worker"
)

var (
	concurrency  int
	batchTimeout time.Duration
	batchOutput  string
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Classify every URL in a file in parallel",
	Long: `Batch reads URLs from a file (one per line, # comments and duplicates
skipped) and classifies them concurrently. A summary table goes to stdout;
--output writes one JSON object per URL.

Example:
  credcheck batch urls.txt
  credcheck batch urls.txt --concurrency 8 --output verdicts.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for the batch")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "write JSON lines to this file")
}

type batchLine struct {
	model.URLVerdict
	Error string `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithTimeout(cmd.Context(), batchTimeout)
	defer cancel()

	processor := worker.NewBatchProcessor(a.detector, concurrency)

	start := time.Now()
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}
	counts := writeBatchTable(cmd.OutOrStdout(), results)
	a.log.Debug("batch finished",
		logger.Int("urls", len(results)),
		logger.Int("failed", counts[""]),
		logger.Duration("elapsed", time.Since(start)),
	)

	if batchOutput != "" {
		if err := writeBatchJSONL(batchOutput, results); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "\n%d URLs in %s: %d FAKE, %d SUSPICIOUS, %d REAL, %d failed\n",
		len(results), time.Since(start).Round(time.Millisecond),
		counts[model.VerdictFake], counts[model.VerdictSuspicious], counts[model.VerdictReal], counts[""])
	return nil
}

// writeBatchTable prints one row per URL and returns counts per verdict;
// failures count under "".
func writeBatchTable(w io.Writer, results []worker.BatchResult) map[model.Verdict]int {
	counts := map[model.Verdict]int{}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VERDICT\tRISK\tSOURCE\tURL")
	for _, r := range results {
		if r.Error != nil {
			counts[""]++
			fmt.Fprintf(tw, "ERROR\t-\t-\t%s (%v)\n", r.URL, r.Error)
			continue
		}
		v := r.Verdict
		counts[v.Classification]++
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", v.Classification, v.Probability, v.Source, r.URL)
	}
	_ = tw.Flush()
	return counts
}

func writeBatchJSONL(path string, results []worker.BatchResult) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output: %w", closeErr)
		}
	}()

	enc := json.NewEncoder(f)
	for _, r := range results {
		line := batchLine{URLVerdict: r.Verdict}
		line.URL = r.URL
		if r.Error != nil {
			line.Error = r.Error.Error()
		}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
