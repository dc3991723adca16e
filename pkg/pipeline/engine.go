// Package pipeline orchestrates per-image metadata runs: vision analysis,
// synthesis with caller-driven retry, alt-text generation, record
// assembly with provenance and audit sections, and final validation.
// Batches run on a bounded worker pool behind a provider circuit breaker.
package pipeline

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/contextembed/metadata-engine/pkg/alttext"
	"github.com/contextembed/metadata-engine/pkg/config"
	"github.com/contextembed/metadata-engine/pkg/llm"
	"github.com/contextembed/metadata-engine/pkg/models"
	"github.com/contextembed/metadata-engine/pkg/retry"
	"github.com/contextembed/metadata-engine/pkg/schema"
	"github.com/contextembed/metadata-engine/pkg/synthesis"
	"github.com/contextembed/metadata-engine/pkg/vision"
)

// EXIFLocation carries location fields extracted from the image file's
// EXIF block. Promoted into the record only under mode "fromExifOnly",
// tagged with "exif" provenance.
type EXIFLocation struct {
	City        string
	State       string
	Country     string
	Sublocation string
	GPS         *models.GPSCoordinates
}

// ImageInput is one image job.
type ImageInput struct {
	ID          string // caller's correlation ID; also the batch result ID
	ImageBase64 string
	ImageURL    string
	MimeType    string
	DetailLevel string

	UserComment  string
	EventContext string
	ImageContext string // page/usage context for alt text

	JobID           string
	Instructions    string
	ModelRelease    models.ReleaseStatus
	PropertyRelease models.ReleaseStatus

	AltTextMode models.AltTextMode
	EXIF        *EXIFLocation
}

// RunResult is the outcome of one image run. When Err is nil, Metadata is
// assembled and Validation holds its schema result; callers gate export on
// Validation.Valid.
type RunResult struct {
	InputID     string
	Analysis    *models.VisionAnalysis
	Synthesized *models.SynthesizedMetadata
	AltText     *models.AltTextOutput
	AltFallback bool
	Metadata    *models.PerfectMetadata
	Validation  schema.Result
	Usage       llm.Usage
	Err         error
}

// Options wires an Engine. Vision, Synthesizer, and AltText are required;
// the rest default.
type Options struct {
	Vision      vision.Provider
	Synthesizer *synthesis.Synthesizer
	AltText     *alttext.Generator

	Pool    *llm.WorkerPool
	Breaker *llm.CircuitBreaker
	Retry   *retry.Config

	// Clock overrides time.Now, for attribution templates and tests.
	Clock func() time.Time
}

// Engine runs the per-image pipeline.
type Engine struct {
	vision   vision.Provider
	synth    *synthesis.Synthesizer
	alt      *alttext.Generator
	pool     *llm.WorkerPool
	breaker  *llm.CircuitBreaker
	retryCfg *retry.Config
	logger   *zap.Logger
	now      func() time.Time
}

// NewEngine creates a pipeline engine.
func NewEngine(opts Options, logger *zap.Logger) (*Engine, error) {
	if opts.Vision == nil {
		return nil, fmt.Errorf("pipeline: vision provider is required")
	}
	if opts.Synthesizer == nil {
		return nil, fmt.Errorf("pipeline: synthesizer is required")
	}
	if opts.AltText == nil {
		return nil, fmt.Errorf("pipeline: alt-text generator is required")
	}

	e := &Engine{
		vision:   opts.Vision,
		synth:    opts.Synthesizer,
		alt:      opts.AltText,
		pool:     opts.Pool,
		breaker:  opts.Breaker,
		retryCfg: opts.Retry,
		logger:   logger.Named("pipeline"),
		now:      opts.Clock,
	}
	if e.pool == nil {
		e.pool = llm.NewWorkerPool(llm.DefaultWorkerPoolConfig(), logger)
	}
	if e.breaker == nil {
		e.breaker = llm.NewCircuitBreaker(llm.DefaultCircuitBreakerConfig())
	}
	if e.retryCfg == nil {
		e.retryCfg = retry.DefaultConfig()
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e, nil
}

// NewEngineFromConfig builds a fully wired engine from loaded
// configuration: provider client via the llm factory, vision on the same
// backend, alt-text and batch settings from their config blocks.
func NewEngineFromConfig(cfg *config.Config, logger *zap.Logger) (*Engine, error) {
	factory := llm.NewFactory(llm.FactoryConfig{
		Provider: llm.Provider(cfg.Provider),
		OpenAI: llm.OpenAIConfig{
			Endpoint: cfg.OpenAI.Endpoint,
			Model:    cfg.OpenAI.Model,
			APIKey:   cfg.OpenAI.APIKey,
		},
		Anthropic: llm.AnthropicConfig{
			Model:  cfg.Anthropic.Model,
			APIKey: cfg.Anthropic.APIKey,
		},
		Gemini: llm.GeminiConfig{
			Model:  cfg.Gemini.Model,
			APIKey: cfg.Gemini.APIKey,
		},
	}, logger)

	client, err := factory.Create()
	if err != nil {
		return nil, err
	}

	visionClient := client
	if cfg.Provider == "openai" && cfg.OpenAI.VisionModel != "" && cfg.OpenAI.VisionModel != cfg.OpenAI.Model {
		visionClient, err = llm.NewOpenAIClient(llm.OpenAIConfig{
			Endpoint: cfg.OpenAI.Endpoint,
			Model:    cfg.OpenAI.VisionModel,
			APIKey:   cfg.OpenAI.APIKey,
		}, logger)
		if err != nil {
			return nil, err
		}
	}

	visionProvider, err := vision.NewLLMProvider(visionClient, logger)
	if err != nil {
		return nil, err
	}
	synth, err := synthesis.New(client, logger)
	if err != nil {
		return nil, err
	}
	altGen, err := alttext.NewGenerator(client, alttext.GeneratorConfig{
		RetryEnabled: cfg.AltText.RetryEnabled,
		Temperature:  cfg.AltText.Temperature,
	}, logger)
	if err != nil {
		return nil, err
	}

	return NewEngine(Options{
		Vision:      visionProvider,
		Synthesizer: synth,
		AltText:     altGen,
		Pool: llm.NewWorkerPool(llm.WorkerPoolConfig{
			MaxConcurrent: cfg.Pipeline.MaxConcurrent,
		}, logger),
		Breaker: llm.NewCircuitBreaker(llm.CircuitBreakerConfig{
			Threshold:  cfg.Pipeline.BreakerThreshold,
			ResetAfter: time.Duration(cfg.Pipeline.BreakerResetSeconds) * time.Second,
		}),
	}, logger)
}
