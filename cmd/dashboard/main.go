// Package main is the entry point for the topup admin dashboard console.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"topup-admin/internal/accounts"
	"topup-admin/internal/analytics"
	"topup-admin/internal/assistant"
	"topup-admin/internal/catalog"
	"topup-admin/internal/chat"
	"topup-admin/internal/config"
	"topup-admin/internal/dataset"
	"topup-admin/internal/report"
)

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().Msg("Configuration loaded successfully")

	anchor, err := cfg.Data.Anchor()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse anchor date")
	}

	// Generate the synthetic dataset
	ds := dataset.Generate(cfg.Data.Seed, anchor, cfg.Data.AnnualTarget)
	log.Info().
		Int("games", len(ds.Games)).
		Int("products", len(ds.Products)).
		Int("users", len(ds.Users)).
		Int("transactions", len(ds.Transactions)).
		Msg("Dataset generated")

	// Initialize stores
	catalogStore := catalog.NewStore(ds.Products)
	accountStore := accounts.NewStore(ds.Users)

	// Build the analytical snapshot and query context
	snap := analytics.NewSnapshot(ds.Games, catalogStore.List(), accountStore.List(), ds.Transactions)
	qc := analytics.BuildContext(snap)
	log.Info().
		Int64("total_revenue", qc.TotalRevenue).
		Int("total_transactions", qc.TotalTransactions).
		Int("active_users", qc.ActiveUsers).
		Msg("Query context built")

	// Initialize the assistant
	synth := assistant.NewSynthesizer(anchor, nil)
	groq := assistant.NewGroqClient(cfg.Assistant, log.Logger)
	if groq.Enabled() {
		log.Info().Str("model", cfg.Assistant.Model).Msg("External completion enabled")
	} else {
		log.Info().Msg("No API key configured, using local rules only")
	}
	asst := assistant.New(synth, groq, log.Logger)

	// Report builder and chat history
	reports := report.NewBuilder(snap, anchor, nil)
	history := chat.NewStore(nil)
	session := history.Create("console")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
		os.Stdin.Close()
	}()

	fmt.Println(assistant.Greeting)
	fmt.Println(`Ketik pertanyaan, atau "report <today|7days|30days|1year>" untuk laporan JSON.`)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		if period, ok := strings.CutPrefix(line, "report "); ok {
			doc := reports.Build(analytics.Period(strings.TrimSpace(period)))
			out, err := doc.ExportJSON()
			if err != nil {
				log.Error().Err(err).Msg("Failed to export report")
				continue
			}
			fmt.Println(string(out))
			continue
		}

		if _, err := history.Append(session.ID, "user", line); err != nil {
			log.Error().Err(err).Msg("Failed to record question")
		}
		reply := asst.Respond(ctx, line, qc)
		if _, err := history.Append(session.ID, "bot", reply); err != nil {
			log.Error().Err(err).Msg("Failed to record answer")
		}
		fmt.Println(reply)
	}
	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("Input error")
	}

	log.Info().Msg("Dashboard stopped gracefully")
}
