package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/models"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Inspect the optional linear models",
	Long: `The models directory may hold text_classifier.yaml, url_classifier.yaml,
profile_classifier.yaml and image_classifier.yaml. Each slot loads on its own;
a missing file just leaves the slot unavailable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		reg := a.detector.Models()
		loaded := reg.Loaded()
		loadErrs := reg.LoadErrors()

		fmt.Fprintf(cmd.OutOrStdout(), "Models directory: %s\n\n", reg.Dir())
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SLOT\tSTATUS")
		for _, slot := range models.Slots {
			status := "unavailable"
			switch {
			case loaded[slot]:
				status = "loaded"
			case loadErrs[slot] != nil:
				status = "error: " + loadErrs[slot].Error()
			}
			fmt.Fprintf(tw, "%s\t%s\n", slot, status)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if d := reg.Describe(); len(d) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", strings.Join(d, "\n"))
		}
		return nil
	},
}

var modelsScoreCmd = &cobra.Command{
	Use:   "score <slot> <input>",
	Short: "Run one model over an input",
	Long: `Extract features from input and score them with the slot's model.
Slots: text_model, url_model, profile_model (JSON input), image_model
(base64 input). Input may be - for stdin or @file.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		input, err := readInput(args[1], cmd.InOrStdin())
		if err != nil {
			return err
		}
		risk, err := a.detector.ModelScore(args[0], input)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", risk)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
	modelsCmd.AddCommand(modelsScoreCmd)
}
