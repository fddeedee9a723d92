package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
)

var matchCommand = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job posting once",
	Long: `Loads a resume and a job posting, extracts keywords from both, and prints the match score with the matched and unmatched keyword lists.

Semantic matching via the LLM runs when GEMINI_API_KEY is set; otherwise only exact lemma matches count.`,
	RunE: runMatchCmd,
}

var (
	matchConfigPath string
	matchResume     string
	matchJob        string
	matchAPIKey     string
	matchVerbose    bool
)

func init() {
	matchCommand.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	matchCommand.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume file (txt, pdf, or html)")
	matchCommand.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job posting text file")
	matchCommand.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	matchCommand.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(matchCommand)
}

func runMatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(matchConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = matchResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = matchJob
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = matchAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = matchVerbose
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

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintKeywords("RESUME KEYWORDS", sess.ResumeKeywords)
		printer.PrintKeywords("JOB KEYWORDS", sess.JobKeywords)
		printer.PrintSections(sess.Sections)
		printer.PrintMatchReport(&types.MatchResult{
			Matched:   sess.Matched,
			Unmatched: sess.UnmatchedQueue,
			Score:     view.Score,
		})
		return nil
	}

	fmt.Fprintf(os.Stdout, "Score: %d%%\n", view.Score)
	fmt.Fprintf(os.Stdout, "Matched: %v\n", view.Matched)
	fmt.Fprintf(os.Stdout, "Unmatched: %v\n", view.Unmatched)
	return nil
}
