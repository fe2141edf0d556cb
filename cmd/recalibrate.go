package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pygrounds/adaptive/internal/engine"
)

var recalibrateCmd = &cobra.Command{
	Use:   "recalibrate <learner>",
	Short: "Process a batch of graded attempts and update mastery",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learner := args[0]

		attempts, err := readAttempts(cmd)
		if err != nil {
			return err
		}
		if len(attempts) == 0 {
			return fmt.Errorf("no attempts in input")
		}

		st, eng, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		results, err := eng.Recalibrate(cmd.Context(), learner, attempts)
		if err != nil {
			return err
		}

		subIDs := make([]int, 0, len(results))
		for sid := range results {
			subIDs = append(subIDs, sid)
		}
		sort.Ints(subIDs)

		fmt.Printf("%-10s  %8s  %-12s  %-9s  %s\n",
			"Subtopic", "Mastery", "Band", "Converged", "Threshold")
		for _, sid := range subIDs {
			r := results[sid]
			fmt.Printf("%-10d  %7.2f%%  %-12s  %-9t  %t\n",
				sid, r.MasteryPct, r.Band, r.Converged, r.ThresholdReached)
		}
		return nil
	},
}

// readAttempts decodes the JSON attempt batch from --attempts, or stdin
// when the flag is "-" or absent.
func readAttempts(cmd *cobra.Command) ([]engine.Attempt, error) {
	path, _ := cmd.Flags().GetString("attempts")

	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open attempts file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var attempts []engine.Attempt
	if err := json.NewDecoder(r).Decode(&attempts); err != nil {
		return nil, fmt.Errorf("decode attempts: %w", err)
	}
	return attempts, nil
}

func init() {
	recalibrateCmd.Flags().String("attempts", "-", "Path to a JSON array of attempts (\"-\" for stdin)")
}
