package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/adapters/file"
	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/adapters/multi"
	"github.com/aretw0/automata/pkg/adapters/redis"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/aretw0/automata/pkg/persistence/middleware"
	"github.com/aretw0/automata/pkg/ports"
)

// Store kinds accepted by --store.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// EngineOptions contains the configuration shared by commands that build an engine.
type EngineOptions struct {
	Dir         string
	Store       string
	StoreDir    string
	RedisAddr   string
	RedisPrefix string        // key prefix for the redis store; empty keeps the store default
	RedisTTL    time.Duration // expiry of reports in the redis store; 0 never expires
	Retain      int           // keep at most this many stored reports; 0 keeps all
	Compact     bool          // drop step traces from stored reports
	Trace       bool
	StateLimit  int
	Metrics     *observability.Metrics
}

// CreateEngine initializes an engine over opts.Dir with standard CLI conventions.
func CreateEngine(opts EngineOptions, logger *slog.Logger) (*automata.Engine, error) {
	loader, err := multi.Dir(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return createEngine(opts, logger, loader)
}

// CreateFileEngine initializes an engine for a single definition file.
// It returns the engine and the name under which the file is loaded.
func CreateFileEngine(path string, opts EngineOptions, logger *slog.Logger) (*automata.Engine, string, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	opts.Dir = dir
	loader, err := multi.Dir(dir)
	if err != nil {
		return nil, "", fmt.Errorf("error initializing engine: %w", err)
	}
	eng, err := createEngine(opts, logger, loader)
	if err != nil {
		return nil, "", err
	}
	return eng, name, nil
}

func createEngine(opts EngineOptions, logger *slog.Logger, loader ports.DefinitionLoader) (*automata.Engine, error) {
	engineOpts := []automata.Option{
		automata.WithLoader(loader),
		automata.WithLogger(logger),
		automata.WithTrace(opts.Trace),
		automata.WithStateLimit(opts.StateLimit),
	}

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		engineOpts = append(engineOpts, automata.WithHooks(createDebugHooks(logger)))
	}
	if opts.Metrics != nil {
		engineOpts = append(engineOpts, automata.WithMetrics(opts.Metrics))
	}
	if opts.Store != "" {
		store, err := OpenStore(opts)
		if err != nil {
			return nil, err
		}
		engineOpts = append(engineOpts, automata.WithStore(wrapStore(store, opts)))
	}

	engine, err := automata.New(opts.Dir, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}

// OpenStore builds the report store selected by opts.Store, without middleware.
func OpenStore(opts EngineOptions) (ports.ReportStore, error) {
	switch opts.Store {
	case StoreMemory:
		return memory.NewStore(), nil
	case StoreFile:
		return file.New(opts.StoreDir), nil
	case StoreRedis:
		if opts.RedisAddr == "" {
			return nil, fmt.Errorf("--redis-addr is required for the redis store")
		}
		var redisOpts []redis.Option
		if opts.RedisPrefix != "" {
			redisOpts = append(redisOpts, redis.WithPrefix(opts.RedisPrefix))
		}
		if opts.RedisTTL > 0 {
			redisOpts = append(redisOpts, redis.WithTTL(opts.RedisTTL))
		}
		return redis.New(opts.RedisAddr, "", 0, redisOpts...), nil
	}
	return nil, fmt.Errorf("unknown store %q (expected memory, file or redis)", opts.Store)
}

func wrapStore(store ports.ReportStore, opts EngineOptions) ports.ReportStore {
	var mws []middleware.Middleware
	if opts.Compact {
		mws = append(mws, middleware.NewCompactMiddleware())
	}
	if opts.Retain > 0 {
		mws = append(mws, middleware.NewRetentionMiddleware(opts.Retain))
	}
	return middleware.Chain(store, mws...)
}

func createDebugHooks(logger *slog.Logger) domain.EvaluationHooks {
	return domain.EvaluationHooks{
		OnWordStart: func(ctx context.Context, e *domain.WordEvent) {
			logger.Debug("Word Start", "automaton", e.Automaton, "word", e.Word)
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			logger.Debug("Step", "word", e.Word, "index", e.Index, "symbol", e.Symbol, "active", e.Active)
		},
		OnVerdict: func(ctx context.Context, e *domain.WordEvent) {
			logger.Debug("Verdict", "word", e.Word, "verdict", e.Verdict, "steps", e.Steps)
		},
		OnDeterminize: func(ctx context.Context, e *domain.DeterminizeEvent) {
			logger.Debug("Determinized",
				"automaton", e.Automaton,
				"source_states", e.SourceStates,
				"states", e.States,
				"duration", e.Duration,
			)
		},
	}
}
