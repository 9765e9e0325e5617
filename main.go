package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/frazbot/internal/bot"
	"github.com/example/frazbot/internal/config"
	"github.com/example/frazbot/internal/database"
	"github.com/example/frazbot/internal/excel"
	"github.com/example/frazbot/internal/generator"
	"github.com/example/frazbot/internal/grammar"
	"github.com/example/frazbot/internal/scheduler"
	"github.com/joho/godotenv"
)

func main() {
	// .env не обязателен, переменные могут быть заданы снаружи
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	wordsPath := flag.String("words", "", "path to a words config; generate one sentence and exit")
	importPath := flag.String("import", "", "path to an Excel/CSV file to import into the vocabulary")
	seed := flag.Int64("seed", 0, "random seed for -words mode (0 means current time)")
	flag.Parse()

	switch {
	case *wordsPath != "":
		if err := generateOnce(*wordsPath, *seed); err != nil {
			log.Fatalf("Failed to generate sentence: %v", err)
		}
	case *importPath != "":
		if err := runImport(*importPath); err != nil {
			log.Fatalf("Failed to import words: %v", err)
		}
	default:
		runBot()
	}
}

// generateOnce prints a single drill sentence built from a words config file
func generateOnce(path string, seed int64) error {
	vocab, learn, err := config.Load(path)
	if err != nil {
		return err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	index := grammar.NewIndex(vocab)
	gen := generator.New(vocab, index, rng)

	targets := config.SampleTargets(rng, learn, config.MaxTargetsPerDrill)
	sentence, err := gen.Sentence(targets)
	if err != nil {
		return err
	}

	fmt.Println(sentence)
	return nil
}

// runImport loads verbs and question words from a spreadsheet into the database
func runImport(path string) error {
	if err := database.Connect(); err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}
	defer database.Close()

	cfg := excel.DefaultImportConfig()
	cfg.FilePath = path

	result, err := excel.ImportWords(cfg)
	if err != nil {
		return err
	}

	log.Printf("Import finished: %d rows processed, %d verbs, %d question words, %d skipped",
		result.TotalProcessed, result.VerbsCreated, result.QuestionsAdded, result.Skipped)
	for _, e := range result.Errors {
		log.Printf("Import error: %s", e)
	}
	return nil
}

// runBot starts the Telegram bot with the drill scheduler
func runBot() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	b, err := bot.New()
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	var sched *scheduler.Scheduler
	if os.Getenv("ENABLE_SCHEDULER") != "false" {
		sched = scheduler.New(b)
		sched.Start()
	}

	done := make(chan struct{})

	// Горутина для обработки сигналов
	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v\n", sig)
		cancel()

		if sched != nil {
			sched.Stop()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := b.Stop(shutdownCtx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}

		close(done)
	}()

	log.Println("Bot started. Press Ctrl+C to stop.")
	go func() {
		if err := b.Start(ctx); err != nil && err != context.Canceled {
			log.Printf("Bot error: %v", err)
		}
	}()

	<-done
	log.Println("Bot stopped successfully")
}
