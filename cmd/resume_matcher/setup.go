package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/sections"
	"github.com/jonathan/resume-matcher/internal/session"
)

// components bundles everything a command needs to drive a session.
type components struct {
	manager *session.Manager
	store   *session.Store
	client  llm.Client
}

func (c *components) close() {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.store != nil {
		c.store.Close()
	}
}

// buildComponents wires the extractor, segmenter, oracle, and ranker from
// the merged configuration. Without an API key the pipeline still works in
// exact-only mode with no rewording.
func buildComponents(ctx context.Context, cfg *config.Config) (*components, error) {
	annotator, err := keywords.NewEnglishAnnotator()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize annotator: %w", err)
	}

	var gazetteer *keywords.Gazetteer
	if cfg.Gazetteer != "" {
		gazetteer, err = keywords.LoadGazetteerFile(cfg.Gazetteer, annotator)
	} else {
		gazetteer, err = keywords.LoadDefaultGazetteer(annotator)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load gazetteer: %w", err)
	}

	var extractorOpts []keywords.ExtractorOption
	if cfg.SnippetWidth > 0 {
		extractorOpts = append(extractorOpts, keywords.WithSnippetWidth(cfg.SnippetWidth))
	}
	extractor := keywords.NewExtractor(annotator, gazetteer, extractorOpts...)

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var client llm.Client
	var ranker *ranking.Ranker
	if apiKey != "" && !cfg.DisableSemantic {
		client, err = llm.NewClient(ctx, llm.DefaultGeminiConfig(), apiKey)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
		}
		var rankerOpts []ranking.Option
		if cfg.EmbedParallel > 0 {
			rankerOpts = append(rankerOpts, ranking.WithConcurrency(cfg.EmbedParallel))
		}
		ranker = ranking.NewRanker(client, rankerOpts...)
	}

	var storeOpts []session.StoreOption
	if cfg.SessionTTLMins > 0 {
		storeOpts = append(storeOpts, session.WithTTL(time.Duration(cfg.SessionTTLMins)*time.Minute))
	}

	return &components{
		manager: session.NewManager(extractor, sections.NewSegmenter(client), client, ranker),
		store:   session.NewStore(storeOpts...),
		client:  client,
	}, nil
}

// loadMergedConfig reads the optional config file and overlays environment
// variables.
func loadMergedConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.LoadEnv()
	return cfg, nil
}
