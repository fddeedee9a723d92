package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Extract and print the keywords found in a document",
	Long:  "Extracts text from a resume or job posting (txt, pdf, or html), normalizes it, and prints the keywords found in the phrase gazetteer.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyzeCmd,
}

var (
	analyzeConfigPath string
	analyzeGazetteer  string
)

func init() {
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file")
	analyzeCommand.Flags().StringVarP(&analyzeGazetteer, "gazetteer", "g", "", "Path to a custom keyword phrase list")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadMergedConfig(analyzeConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("gazetteer") {
		cfg.Gazetteer = analyzeGazetteer
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	raw, err := ingestion.ExtractText(args[0], data)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	annotator, err := keywords.NewEnglishAnnotator()
	if err != nil {
		return fmt.Errorf("failed to initialize annotator: %w", err)
	}
	var gazetteer *keywords.Gazetteer
	if cfg.Gazetteer != "" {
		gazetteer, err = keywords.LoadGazetteerFile(cfg.Gazetteer, annotator)
	} else {
		gazetteer, err = keywords.LoadDefaultGazetteer(annotator)
	}
	if err != nil {
		return fmt.Errorf("failed to load gazetteer: %w", err)
	}

	extractor := keywords.NewExtractor(annotator, gazetteer)
	entries, err := extractor.Extract(ingestion.Normalize(raw))
	if err != nil {
		return fmt.Errorf("failed to extract keywords: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(os.Stdout, "No keywords found.")
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintKeywords("EXTRACTED KEYWORDS", entries)
	return nil
}
