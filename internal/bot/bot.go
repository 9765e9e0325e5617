package bot

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/example/frazbot/internal/config"
	"github.com/example/frazbot/internal/database"
	"github.com/example/frazbot/internal/generator"
	"github.com/example/frazbot/internal/grammar"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot represents the Telegram bot application
type Bot struct {
	api        *tgbotapi.BotAPI
	vocabRepo  *database.VocabularyRepository
	targetRepo *database.TargetRepository
	userRepo   *database.UserRepository
	drillRepo  *database.DrillRepository
	rng        *rand.Rand
	config     *BotConfig
}

// New creates a new bot instance
func New() (*Bot, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	if database.DB == nil {
		return nil, fmt.Errorf("database connection is not established")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %v", err)
	}

	return &Bot{
		api:        api,
		vocabRepo:  database.NewVocabularyRepository(),
		targetRepo: database.NewTargetRepository(),
		userRepo:   database.NewUserRepository(),
		drillRepo:  database.NewDrillRepository(),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		config:     DefaultConfig(),
	}, nil
}

// Start begins processing Telegram updates until the context is cancelled
func (b *Bot) Start(ctx context.Context) error {
	log.Printf("Authorized as @%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			if update.Message.IsCommand() {
				if err := b.HandleCommand(update.Message); err != nil {
					log.Printf("Error handling command %q: %v", update.Message.Command(), err)
					b.reply(update.Message.Chat.ID, "Что-то пошло не так, попробуйте ещё раз.")
				}
			}
		}
	}
}

// Stop shuts down the update loop
func (b *Bot) Stop(ctx context.Context) error {
	b.api.StopReceivingUpdates()
	return nil
}

// SendDrills generates and sends count sentences to the user. Used by the
// scheduler as well as the /drill command.
func (b *Bot) SendDrills(userID int64, count int) error {
	for i := 0; i < count; i++ {
		sentence, err := b.generateDrill(userID)
		if err != nil {
			return err
		}
		if err := b.reply(userID, sentence); err != nil {
			return err
		}
	}
	return nil
}

// generateDrill builds one sentence for the user, biased toward their
// learning targets, and records it in the drill log
func (b *Bot) generateDrill(userID int64) (string, error) {
	vocab, err := b.vocabRepo.GetVocabulary()
	if err != nil {
		return "", err
	}

	targets, err := b.targetRepo.GetForUser(userID)
	if err != nil {
		return "", err
	}
	targets = config.SampleTargets(b.rng, targets, b.config.TargetsPerDrill)

	index := grammar.NewIndex(vocab)
	gen := generator.New(vocab, index, b.rng)

	sentence, err := gen.Sentence(targets)
	if err != nil {
		return "", fmt.Errorf("failed to generate sentence: %w", err)
	}

	if err := b.drillRepo.Log(userID, sentence); err != nil {
		log.Printf("Error logging drill for user %d: %v", userID, err)
	}

	return sentence, nil
}

// reply sends a plain text message to a chat
func (b *Bot) reply(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.api.Send(msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %v", err)
	}
	return nil
}
