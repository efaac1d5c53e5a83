package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/score"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a single post, URL or profile with the heuristics",
}

var analyzeTextCmd = &cobra.Command{
	Use:   "text <text...>",
	Short: "Score post text",
	Example: `  credcheck analyze text "BREAKING: shocking truth doctors hate!!!"
  echo "some post" | credcheck analyze text -`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		text, err := readInput(strings.Join(args, " "), cmd.InOrStdin())
		if err != nil {
			return err
		}
		res, err := a.detector.AnalyzeText(text)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"analysis":    res,
			"trust_level": score.TrustLevel(res.Score),
		})
	},
}

var analyzeURLCmd = &cobra.Command{
	Use:   "url <url>",
	Short: "Score a URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		res, err := a.detector.AnalyzeURL(args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}

var analyzeProfileCmd = &cobra.Command{
	Use:   "profile <json|@file|->",
	Short: "Score an account profile given as JSON",
	Example: `  credcheck analyze profile '{"username":"news_bot_4821","followers":3,"following":900}'
  credcheck analyze profile @profile.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		p, err := readProfile(args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}
		res, err := a.detector.AnalyzeProfile(p)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.AddCommand(analyzeTextCmd, analyzeURLCmd, analyzeProfileCmd)
}

// readInput resolves "-" to stdin and "@path" to a file's contents.
func readInput(arg string, stdin io.Reader) (string, error) {
	switch {
	case arg == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	case strings.HasPrefix(arg, "@"):
		data, err := os.ReadFile(arg[1:])
		if err != nil {
			return "", fmt.Errorf("read %s: %w", arg[1:], err)
		}
		return string(data), nil
	default:
		return arg, nil
	}
}

func readProfile(arg string, stdin io.Reader) (model.Profile, error) {
	var p model.Profile
	raw, err := readInput(arg, stdin)
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return p, fmt.Errorf("profile must be a JSON object: %w", model.ErrInvalidInput)
	}
	return p, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
