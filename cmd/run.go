package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/offer-advisor/internal/ai/gemini"
	"github.com/spigell/offer-advisor/internal/classify"
	"github.com/spigell/offer-advisor/internal/compensation"
	"github.com/spigell/offer-advisor/internal/evaluation"
	"github.com/spigell/offer-advisor/internal/logger"
	"github.com/spigell/offer-advisor/internal/market"
	"github.com/spigell/offer-advisor/internal/offer"
	"github.com/spigell/offer-advisor/internal/profile"
	"github.com/spigell/offer-advisor/internal/secrets"
)

const (
	PromptYes         = "Yes, write results"
	PromptNo          = "No"
	PromptPrintOffers = "Print offers"
	PromptReport      = "Report by candidates"
	defaultModel      = "gemini-2.5-flash"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Procced?",
	Items: []string{PromptYes, PromptNo, PromptPrintOffers, PromptReport},
}

var runCmd = &cobra.Command{
	Use:   "run [candidate.json...]",
	Short: "Evaluate candidates and compose salary offers",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-approve", "y", false, "write results without asking for confirmation")
	runCmd.Flags().StringP("output-dir", "o", "", "directory for results and offers")
	runCmd.Flags().IntP("concurrency", "c", 0, "number of candidates evaluated in parallel")
	runCmd.Flags().Bool("no-market", false, "do not query live market data")

	viper.BindPFlag("output-dir", runCmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("concurrency", runCmd.Flags().Lookup("concurrency"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, err := logger.New(logger.Options{
		App:     app,
		Version: version,
		JSON:    viper.GetBool("json"),
		Debug:   viper.GetBool("debug"),
	})
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the offer-advisor", zap.Int("candidates", len(args)))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	candidates := make([]evaluation.Candidate, 0, len(args))
	for _, path := range args {
		c, err := evaluation.LoadCandidate(path)
		if err != nil {
			logger.Fatal("loading candidate", zap.Error(err))
		}
		candidates = append(candidates, c)
	}

	deps, steps := prepareSteps(ctx, cmd, config, logger)

	for _, status := range evaluation.Describe(steps) {
		logger.Debug("evaluation step status",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	evaluations, err := evaluation.RunBatch(ctx, deps, steps, candidates, config.Concurrency)
	if err != nil {
		logger.Fatal("evaluation failed", zap.Error(err))
	}

	composer, err := offer.NewComposer(config.Company)
	if err != nil {
		logger.Fatal("creating offer composer", zap.Error(err))
	}

	action := PromptYes
	for {
		var err error
		if cmd.Flag("auto-approve").Value.String() == "false" {
			_, action, err = prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		logger.Info("current list of evaluations", zap.Int("count", len(evaluations)))

		if err := handleAction(action, logger, config, composer, evaluations); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, config *Config, composer *offer.Composer, evaluations []*evaluation.Evaluation) error {
	switch action {
	case PromptYes:
		if err := writeResults(logger, config.OutputDir, composer, evaluations); err != nil {
			return err
		}
		return errExit
	case PromptNo:
		logger.Info("exiting", zap.String("reason", "got no from prompt"))
		return errExit
	case PromptPrintOffers:
		for _, e := range evaluations {
			if !e.Eligible {
				continue
			}
			if err := composer.Write(os.Stdout, e); err != nil {
				return err
			}
			fmt.Println()
		}
		return nil
	case PromptReport:
		pretty, _ := json.MarshalIndent(report(evaluations), "", "  ")
		logger.Info(string(pretty), zap.Int("evaluations count", len(evaluations)))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func writeResults(log *zap.Logger, dir string, composer *offer.Composer, evaluations []*evaluation.Evaluation) error {
	eligible := 0
	for _, e := range evaluations {
		saved, err := composer.Save(dir, e)
		if err != nil {
			return fmt.Errorf("saving evaluation %s: %w", e.ID, err)
		}

		if e.Eligible {
			eligible++
		}

		log.Info("saved evaluation",
			zap.String(logger.FieldEvaluation, e.ID),
			zap.String("result", saved.Result),
			zap.String("offer", saved.Offer),
		)
	}

	log.Info("successfully wrote results",
		zap.Int("count", len(evaluations)),
		zap.Int("eligible", eligible),
		zap.String("dir", dir),
	)
	return nil
}

type reportLine struct {
	Candidate string  `json:"candidate"`
	Title     string  `json:"title"`
	Overall   float64 `json:"overall_score"`
	Eligible  bool    `json:"eligible"`
	Offer     string  `json:"offer,omitempty"`
	Source    string  `json:"source,omitempty"`
}

func report(evaluations []*evaluation.Evaluation) []reportLine {
	lines := make([]reportLine, 0, len(evaluations))
	for _, e := range evaluations {
		line := reportLine{
			Candidate: offer.DisplayName(e.Profile),
			Title:     e.Title,
			Overall:   e.Scores.Overall,
			Eligible:  e.Eligible,
		}
		if r := e.Recommendation; r != nil {
			line.Offer = r.Summary()
			line.Source = string(r.Source)
		}
		lines = append(lines, line)
	}
	return lines
}

func prepareSteps(ctx context.Context, cmd *cobra.Command, config *Config, log *zap.Logger) (evaluation.Deps, []evaluation.Step) {
	classifier := classify.New(log.Named("classify"))

	deps := evaluation.Deps{
		Reconciler: profile.NewReconciler(classifier, log.Named("reconcile")),
		Classifier: classifier,
		Engine:     compensation.NewEngine(log.Named("compensation")),
		Location:   config.Location,
		Logger:     log,
	}

	steps := evaluation.DefaultSteps()

	if config.AI != nil && config.AI.Enabled {
		extractor, scorer, err := newAIClients(ctx, config.AI, log)
		if err != nil {
			log.Warn("skipping model steps", zap.Error(err))
			evaluation.DisableByName(steps, evaluation.StepExtract, err.Error())
		} else {
			deps.Extractor = extractor
			deps.Scorer = scorer
		}
	} else {
		evaluation.DisableByName(steps, evaluation.StepExtract, "ai is disabled")
	}

	noMarket := cmd != nil && cmd.Flag("no-market") != nil && cmd.Flag("no-market").Value.String() == "true"
	switch {
	case noMarket:
		evaluation.DisableByName(steps, evaluation.StepMarket, "disabled by flag")
	case config.Market == nil || !config.Market.Enabled:
		evaluation.DisableByName(steps, evaluation.StepMarket, "market is disabled")
	default:
		provider, err := newMarketProvider(config.Market, log)
		if err != nil {
			log.Warn("skipping market lookups", zap.Error(err))
			evaluation.DisableByName(steps, evaluation.StepMarket, err.Error())
		} else {
			deps.Market = provider
		}
	}

	return deps, steps
}

func newAIClients(ctx context.Context, cfg *AIConfig, log *zap.Logger) (*gemini.Extractor, *gemini.Scorer, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, nil, errors.New("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		Env:   "GEMINI_API_KEY",
		File:  cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	model := cfg.Gemini.Model
	if model == "" {
		model = defaultModel
	}

	genLogger := logger.WithModel(log, "gemini", model).With(
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, nil, err
	}

	return gemini.NewExtractor(generator, cfg.Gemini.MaxLogLength, genLogger),
		gemini.NewScorer(generator, cfg.Gemini.MaxLogLength, genLogger),
		nil
}

func newMarketProvider(cfg *MarketConfig, log *zap.Logger) (market.Provider, error) {
	if cfg.Adzuna == nil {
		return nil, errors.New("adzuna configuration is required when market is enabled")
	}

	appID, err := secrets.Load(secrets.Source{
		Name:  "adzuna app id",
		Value: cfg.Adzuna.AppID,
		Env:   "ADZUNA_APP_ID",
		File:  cfg.Adzuna.AppIDFile,
	})
	if err != nil {
		return nil, err
	}

	appKey, err := secrets.Load(secrets.Source{
		Name:  "adzuna app key",
		Value: cfg.Adzuna.AppKey,
		Env:   "ADZUNA_APP_KEY",
		File:  cfg.Adzuna.AppKeyFile,
	})
	if err != nil {
		return nil, err
	}

	adzuna := market.NewAdzuna(log.Named("adzuna"), appID, appKey)
	if cfg.Adzuna.Country != "" {
		adzuna.Country = strings.ToLower(cfg.Adzuna.Country)
	}
	if cfg.Adzuna.MaxPages > 0 {
		adzuna.MaxPages = cfg.Adzuna.MaxPages
	}

	if cfg.Cache == nil || !cfg.Cache.Enabled {
		return adzuna, nil
	}

	password := cfg.Cache.Password
	if cfg.Cache.PasswordFile != "" {
		password, err = secrets.Load(secrets.Source{Name: "redis password", File: cfg.Cache.PasswordFile})
		if err != nil {
			return nil, err
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr,
		Password: password,
		DB:       cfg.Cache.DB,
	})

	ttl := cfg.Cache.TTL
	if ttl <= 0 {
		ttl = market.DefaultCacheTTL
	}

	return market.NewCache(adzuna, client, ttl, log.Named("market-cache")), nil
}
