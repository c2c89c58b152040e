package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nyashahama/futurefit/internal/catalog"
	"github.com/nyashahama/futurefit/internal/config"
	"github.com/nyashahama/futurefit/internal/export"
	"github.com/nyashahama/futurefit/internal/participant"
	"github.com/nyashahama/futurefit/internal/report"
	"github.com/nyashahama/futurefit/internal/scoring"
	"github.com/nyashahama/futurefit/internal/tui"
)

const version = "1.0.0"

func main() {
	// ── Logger ────────────────────────────────────────────────────────────────
	// JSON in production, pretty text in development. The TUI owns stdout, so
	// logs go to stderr.
	var logger *slog.Logger
	if os.Getenv("ENV") == "production" {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn, // keep the interactive screen quiet
		}))
	}
	slog.SetDefault(logger)

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "futurefit",
		Short: "AI Future Fit Discovery assessment",
		Long: "Runs the AI Future Fit Discovery assessment: an interactive questionnaire\n" +
			"that scores your answers locally and produces a personalized career report.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			p := tea.NewProgram(tui.New(cfg, logger), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	root.AddCommand(newGenerateCmd(logger))
	root.AddCommand(newVersionCmd())
	return root
}

// newGenerateCmd builds the headless path: answers arrive as a JSON file
// mapping question id to either a number or a text label, and the full
// artifact set is written without any interaction. Useful for scripting and
// for regenerating a report from saved answers.
func newGenerateCmd(logger *slog.Logger) *cobra.Command {
	var (
		answersPath string
		p           participant.Participant
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a report from an answers file without the UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if p.Experience == "" {
				p.Experience = participant.DefaultExperience
			}
			if err := p.Validate(); err != nil {
				return err
			}

			answers, err := readAnswers(answersPath)
			if err != nil {
				return err
			}
			logger.Info("answers loaded", "path", answersPath, "count", len(answers))

			docs := report.Generate(answers, catalog.Questions(), p)
			dir, err := export.Export(docs, p, export.Options{
				OutDir: cfg.OutputDir,
				Scale:  cfg.PageScale,
				Accent: cfg.Accent,
			})
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&answersPath, "answers", "", "path to JSON answers file (question id -> value)")
	cmd.Flags().StringVar(&p.FullName, "name", "", "participant full name")
	cmd.Flags().StringVar(&p.Email, "email", "", "participant email")
	cmd.Flags().StringVar(&p.Industry, "industry", "", "participant industry")
	cmd.Flags().StringVar(&p.Role, "role", "", "participant role (optional)")
	cmd.Flags().StringVar(&p.Experience, "experience", "", "years of experience bucket")
	cmd.Flags().StringVar(&p.Location, "location", "", "participant location")
	_ = cmd.MarkFlagRequired("answers")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// readAnswers decodes a JSON object of question id to raw answer. Numbers
// become numeric answers; strings become labels and resolve downstream
// exactly like typed input.
func readAnswers(path string) (scoring.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}

	var raw map[int]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}

	answers := make(scoring.Snapshot, len(raw))
	for id, v := range raw {
		switch v := v.(type) {
		case float64:
			answers[id] = scoring.Number(v)
		case string:
			answers[id] = scoring.Label(v)
		default:
			return nil, fmt.Errorf("answer for question %d must be a number or string, got %T", id, v)
		}
	}
	return answers, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "futurefit %s\n", version)
		},
	}
}
