// Command cli runs the chatbot as an interactive terminal session.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/elvin-babanli/personabot-go/internal/adapters/embedding"
	"github.com/elvin-babanli/personabot-go/internal/adapters/llm"
	"github.com/elvin-babanli/personabot-go/internal/adapters/personafile"
	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
	"github.com/elvin-babanli/personabot-go/internal/domain/persona"
	"github.com/elvin-babanli/personabot-go/internal/domain/usecases"
	"github.com/elvin-babanli/personabot-go/internal/infrastructure/config"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "personabot"})
	logger.SetLevel(log.WarnLevel)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("loading configuration", "error", err)
	}
	facts, err := personafile.Load(cfg.FactsPath)
	if err != nil {
		logger.Fatal("loading persona facts", "error", err)
	}

	intents, err := usecases.NewIntentMatcher(facts)
	if err != nil {
		logger.Fatal("building intent matcher", "error", err)
	}
	embedder := embedding.NewOpenAIAdapter(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.EmbeddingsModel)
	semantic, err := usecases.NewSemanticMatcher(embedder, persona.QACorpus(facts), logger)
	if err != nil {
		logger.Fatal("building semantic matcher", "error", err)
	}
	completer := llm.NewOpenAIAdapter(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.CompletionsModel)
	generator := usecases.NewGenerator(completer, facts)
	router := usecases.NewRouter(intents, semantic, generator, logger)

	fmt.Println("Salam! Mən Elvin-in şəxsi chatbot-uyam. Sualını yaz (çıxmaq üçün 'exit').")

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	var history []entities.ChatMessage

	for {
		fmt.Print("Sən: ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if lower := strings.ToLower(text); lower == "exit" || lower == "quit" {
			fmt.Println("Sağ ol!")
			break
		}

		reply, err := router.Answer(ctx, text, history)
		if err != nil {
			logger.Error("answer failed", "error", err)
			fmt.Println("Elvin: bağışla, indi cavab verə bilmirəm.")
			continue
		}
		fmt.Printf("Elvin (%s): %s\n", reply.Lang, reply.Text)

		history = append(history,
			entities.ChatMessage{Role: "user", Content: text},
			entities.ChatMessage{Role: "assistant", Content: reply.Text},
		)
	}
}
