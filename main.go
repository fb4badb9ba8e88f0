package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"linkedin_post_generator/config"
	"linkedin_post_generator/generator"
	"linkedin_post_generator/pillar"
	"linkedin_post_generator/server"
	"linkedin_post_generator/trends"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	serve := flag.Bool("serve", false, "start web server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	mock := flag.Bool("mock", false, "use the offline mock LLM (no API keys needed)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.LogLevel)

	if !*mock {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	ctx := context.Background()

	llm, err := buildLLM(ctx, cfg, *mock)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	agent, err := generator.NewAgent(llm)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var fetcher generator.TrendFetcher
	if cfg.Search.APIKey != "" {
		fetcher = trends.NewFetcher(trends.NewClient(trends.Config{
			BaseURL: cfg.Search.BaseURL,
			APIKey:  cfg.Search.APIKey,
			Timeout: cfg.Search.Timeout,
		}), logger)
	}

	sched := pillar.NewScheduler(pillar.NewFileStore(cfg.StatePath), logger)

	if *serve {
		srv, err := server.New(sched, agent, fetcher, logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		listen := cfg.ServerAddr
		if *addr != "" {
			listen = *addr
		}
		logger.Info("starting web server", "addr", listen)
		if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// One-shot mode: generate today's post and print it.
	if err := runOnce(ctx, sched, agent, fetcher, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runOnce(ctx context.Context, sched *pillar.Scheduler, agent *generator.Agent, fetcher generator.TrendFetcher, logger *slog.Logger) error {
	p, err := sched.ActivePillar()
	if err != nil {
		logger.Warn("rotation state not persisted", "error", err)
	}
	logger.Info("today's pillar", "pillar", p.Name)

	sess := generator.NewSession("cli", p, agent, fetcher, logger)
	sess.LoadTrends(ctx)
	if sess.Warning != "" {
		logger.Warn(sess.Warning)
	}

	result, err := sess.Generate(ctx)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func buildLLM(ctx context.Context, cfg *config.Config, mock bool) (generator.LLMClient, error) {
	if mock {
		return generator.MockLLM{}, nil
	}

	settings := &generator.LLMSettings{
		Provider:    cfg.LLM.Provider,
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
	}

	switch cfg.LLM.Provider {
	case "gemini":
		return generator.NewGeminiLLMFromConfig(ctx, settings)
	case "openai":
		return generator.NewOpenAILLMFromConfig(settings)
	case "deepseek":
		// DeepSeek exposes an OpenAI-compatible API; base_url is required.
		if cfg.LLM.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return generator.NewOpenAILLMFromConfig(settings)
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
