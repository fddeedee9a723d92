package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/session"
	"github.com/jonathan/resume-matcher/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive reword/confirm loop",
	Long: `Scores a resume against a job posting, then walks through the unmatched keywords one at a time: for each, answer whether you have genuinely used it, review the suggested bullet rewording, and confirm or reject it. The score updates after every confirmed rewording.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runInteractiveCmd,
}

var (
	runConfigPath string
	runResume     string
	runJob        string
	runGazetteer  string
	runAPIKey     string
	runVerbose    bool
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	runCommand.Flags().StringVarP(&runResume, "resume", "r", "", "Path to resume file (txt, pdf, or html)")
	runCommand.Flags().StringVarP(&runJob, "job", "j", "", "Path to job posting text file")
	runCommand.Flags().StringVarP(&runGazetteer, "gazetteer", "g", "", "Path to a custom keyword phrase list")
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(runCommand)
}

func runInteractiveCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(runConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = runResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = runJob
	}
	if cmd.Flags().Changed("gazetteer") {
		cfg.Gazetteer = runGazetteer
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (via flag or config)")
	}

	comps, err := buildComponents(ctx, cfg)
	if err != nil {
		return err
	}
	defer comps.close()

	resumeData, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	jobData, err := os.ReadFile(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to read job posting: %w", err)
	}

	_, sess := comps.store.Create()

	if _, err := comps.manager.LoadResume(ctx, sess, cfg.Resume, resumeData); err != nil {
		return err
	}
	view, err := comps.manager.SubmitJob(ctx, sess, string(jobData))
	if err != nil {
		return err
	}

	return interactLoop(ctx, comps.manager, sess, view, os.Stdin, os.Stdout)
}

// interactLoop drives the prompt/answer cycle until the keyword queue is
// exhausted or input ends.
func interactLoop(ctx context.Context, manager *session.Manager, sess *session.Session, view *session.View, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintf(out, "Initial score: %d%%\n", view.Score)
	if len(view.Matched) > 0 {
		fmt.Fprintf(out, "Matched: %s\n", strings.Join(view.Matched, ", "))
	}

	for view.State == session.StatePrompting || view.State == session.StateAwaitingConfirm {
		fmt.Fprintf(out, "\n%s\n> ", view.Prompt)
		answer, ok := readAnswer(scanner, out)
		if !ok {
			return nil
		}

		var err error
		if view.State == session.StatePrompting {
			view, err = manager.AnswerRewordPrompt(ctx, sess, answer.Yes())
		} else {
			view, err = manager.ConfirmReword(ctx, sess, answer.Yes())
			if answer.Yes() && err == nil {
				fmt.Fprintf(out, "Score: %d%%\n", view.Score)
			}
		}
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "\nFinal score: %d%%\n", view.Score)
	if len(view.Unmatched) > 0 {
		fmt.Fprintf(out, "Still unmatched: %s\n", strings.Join(view.Unmatched, ", "))
	}
	return nil
}

// readAnswer reads lines until it gets a valid yes/no, reprompting on
// anything else. Returns ok=false when input is exhausted.
func readAnswer(scanner *bufio.Scanner, out io.Writer) (*types.AnswerRequest, bool) {
	for scanner.Scan() {
		answer := &types.AnswerRequest{Answer: strings.ToLower(strings.TrimSpace(scanner.Text()))}
		if err := answer.Validate(); err == nil {
			return answer, true
		}
		fmt.Fprint(out, "Please answer yes or no.\n> ")
	}
	return nil, false
}
