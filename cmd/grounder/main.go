// Command grounder is an interactive research assistant shell. It wires the
// retrieval, search, and scholar collaborators into a chat session and reads
// questions from stdin.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog"

	"github.com/verityai/grounder/pkg/chat"
	"github.com/verityai/grounder/pkg/fetch"
	"github.com/verityai/grounder/pkg/retrieve"
	"github.com/verityai/grounder/pkg/scholar"
	"github.com/verityai/grounder/pkg/search"
	"github.com/verityai/grounder/pkg/tools"
)

func main() {
	configPath := flag.String("config", os.Getenv("GROUNDER_CONFIG"), "path to YAML config file")
	logLevel := flag.String("log-level", envDefault("GROUNDER_LOG_LEVEL", "info"), "log level (trace..error)")
	flag.Parse()

	log := newLogger(*logLevel)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Fatal().Msg("OPENAI_API_KEY is not set")
	}
	if cfg.Search.Tavily.APIKey == "" {
		log.Fatal().Msg("TAVILY_API_KEY is not set")
	}

	clientOpts := []option.RequestOption{option.WithAPIKey(cfg.OpenAIAPIKey)}
	if cfg.OpenAIBaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}
	client := openai.NewClient(clientOpts...)

	searcher := search.NewTavily(cfg.Search.Tavily)
	scraper := fetch.NewFromConfig(cfg.Fetch)
	papers := scholar.NewClient(cfg.Scholar)
	engine := retrieve.NewEngine(scraper, searcher, log)
	dispatcher := tools.NewDispatcher(searcher, papers, engine, log)
	session := chat.NewSession(client, cfg.Model, dispatcher, log)

	log.Info().Str("model", cfg.Model).Msg("Session started")
	runShell(session, log)
}

func runShell(session *chat.Session, log zerolog.Logger) {
	fmt.Println("grounder: ask a question, or type \"exit\" to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		prompt := strings.TrimSpace(scanner.Text())
		if prompt == "" {
			continue
		}
		if prompt == "exit" || prompt == "quit" {
			break
		}

		turn, err := session.Ask(context.Background(), prompt)
		if err != nil {
			log.Error().Err(err).Msg("Turn failed")
			fmt.Printf("error: %v\n", err)
			continue
		}

		fmt.Println()
		fmt.Println(turn.Answer)
		if len(turn.ToolsUsed) > 0 {
			fmt.Printf("\n[tools used: %s]\n", strings.Join(turn.ToolsUsed, ", "))
		}
		fmt.Println()
	}

	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("Reading input failed")
	}
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger()
}

func envDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
