package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/pipeline"
)

var (
	classifyText    string
	classifyURLs    []string
	classifyProfile string
	classifyImage   string
	classifyCaption string
	classifyTimeout time.Duration
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Produce FAKE/SUSPICIOUS/REAL verdicts for a post and its parts",
	Long: `Classify mirrors POST /api/classify-all: each part is judged on a risk
scale by the configured adjudicator, falling back to the heuristics, and the
weighted result is labeled FAKE (>=75), SUSPICIOUS (>=50) or REAL.`,
	Example: `  credcheck classify --text "Miracle cure!!!" --url https://bit.ly/x --profile @profile.json
  credcheck classify --image photo.jpg --caption "Flooded streets today"`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringVar(&classifyText, "text", "", "post text (- for stdin, @file)")
	classifyCmd.Flags().StringSliceVar(&classifyURLs, "url", nil, "URL in the post (repeatable)")
	classifyCmd.Flags().StringVar(&classifyProfile, "profile", "", "author profile as JSON (@file)")
	classifyCmd.Flags().StringVar(&classifyImage, "image", "", "path to an attached image")
	classifyCmd.Flags().StringVar(&classifyCaption, "caption", "", "caption or surrounding text for the image")
	classifyCmd.Flags().DurationVar(&classifyTimeout, "timeout", time.Minute, "overall timeout")
}

func runClassify(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	req := pipeline.ClassifyRequest{URLs: classifyURLs, Caption: classifyCaption}
	if classifyText != "" {
		if req.Text, err = readInput(classifyText, cmd.InOrStdin()); err != nil {
			return err
		}
	}
	if classifyProfile != "" {
		p, err := readProfile(classifyProfile, cmd.InOrStdin())
		if err != nil {
			return err
		}
		req.Profile = &p
	}
	if classifyImage != "" {
		data, err := os.ReadFile(classifyImage)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		req.ImageB64 = base64.StdEncoding.EncodeToString(data)
	}
	if req.Text == "" && len(req.URLs) == 0 && req.Profile == nil && req.ImageB64 == "" {
		return fmt.Errorf("nothing to classify: pass --text, --url, --profile or --image: %w", model.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), classifyTimeout)
	defer cancel()

	return printJSON(cmd.OutOrStdout(), a.detector.ClassifyAll(ctx, req))
}
