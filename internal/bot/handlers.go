package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/frazbot/internal/grammar"
	"github.com/example/frazbot/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleCommand handles bot commands
func (b *Bot) HandleCommand(message *tgbotapi.Message) error {
	if message.From == nil {
		return fmt.Errorf("invalid message: sender is missing")
	}

	var err error
	switch message.Command() {
	case "start":
		err = b.handleStart(message)
	case "help":
		err = b.handleHelp(message)
	case "drill":
		err = b.handleDrill(message)
	case "learn":
		err = b.handleLearn(message)
	case "forget":
		err = b.handleForget(message)
	case "words":
		err = b.handleWords(message)
	case "time":
		err = b.handleTime(message)
	case "notify":
		err = b.handleNotify(message)
	default:
		err = b.reply(message.Chat.ID, "Неизвестная команда. Наберите /help.")
	}
	return err
}

func (b *Bot) handleStart(message *tgbotapi.Message) error {
	// Создаем пользователя при первом взаимодействии
	_, err := b.userRepo.GetByTelegramID(message.From.ID)
	if err != nil {
		newUser := &models.User{
			ID:                  message.From.ID,
			Username:            message.From.UserName,
			FirstName:           message.From.FirstName,
			LastName:            message.From.LastName,
			NotificationEnabled: true,
			NotificationHour:    9,
			DrillsPerDay:        b.config.DrillsPerBatch,
		}
		if err = b.userRepo.Create(newUser); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
	}

	text := "👋 Добро пожаловать!\n\n" +
		"Я составляю простые фразы из местоимений и глаголов, чтобы вы " +
		"привыкали к спряжениям.\n\n" +
		"🔹 Как это работает:\n" +
		"1. Добавьте слова в список изучаемых: /learn хотеть\n" +
		"2. Получите фразу с этими словами: /drill\n" +
		"3. Или ждите фразы по расписанию — /time и /notify"

	return b.reply(message.Chat.ID, text)
}

func (b *Bot) handleHelp(message *tgbotapi.Message) error {
	text := "Команды:\n" +
		"/drill — получить фразу\n" +
		"/learn <слово> — добавить слово в изучаемые\n" +
		"/forget <слово> — убрать слово из изучаемых\n" +
		"/words — показать словарь и изучаемые слова\n" +
		"/time <час> — час ежедневных фраз (0-23)\n" +
		"/notify on|off — включить или выключить рассылку"
	return b.reply(message.Chat.ID, text)
}

func (b *Bot) handleDrill(message *tgbotapi.Message) error {
	sentence, err := b.generateDrill(message.From.ID)
	if err != nil {
		return err
	}
	return b.reply(message.Chat.ID, sentence)
}

func (b *Bot) handleLearn(message *tgbotapi.Message) error {
	word := strings.TrimSpace(message.CommandArguments())
	if word == "" {
		return b.reply(message.Chat.ID, "Укажите слово: /learn хотеть")
	}

	// Слово должно существовать в словаре
	vocab, err := b.vocabRepo.GetVocabulary()
	if err != nil {
		return err
	}
	index := grammar.NewIndex(vocab)
	if _, ok := index[strings.ToLower(word)]; !ok {
		return b.reply(message.Chat.ID, fmt.Sprintf("Слова «%s» нет в словаре.", word))
	}

	if err := b.targetRepo.Add(message.From.ID, word); err != nil {
		return err
	}
	return b.reply(message.Chat.ID, fmt.Sprintf("Добавил «%s» в изучаемые слова.", strings.ToLower(word)))
}

func (b *Bot) handleForget(message *tgbotapi.Message) error {
	word := strings.TrimSpace(message.CommandArguments())
	if word == "" {
		return b.reply(message.Chat.ID, "Укажите слово: /forget хотеть")
	}

	if err := b.targetRepo.Remove(message.From.ID, word); err != nil {
		return err
	}
	return b.reply(message.Chat.ID, fmt.Sprintf("Убрал «%s» из изучаемых слов.", strings.ToLower(word)))
}

func (b *Bot) handleWords(message *tgbotapi.Message) error {
	vocab, err := b.vocabRepo.GetVocabulary()
	if err != nil {
		return err
	}
	targets, err := b.targetRepo.GetForUser(message.From.ID)
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("📖 Вопросы: ")
	for i, q := range vocab.QuestionWords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(q.Surface())
	}
	sb.WriteString("\n\n📖 Глаголы:\n")
	for _, v := range vocab.Verbs {
		sb.WriteString("• ")
		sb.WriteString(v.Surface())
		if v.ExpectInfinitive {
			sb.WriteString(" (+ инфинитив)")
		}
		if len(v.Questions) > 0 {
			tags := make([]string, 0, len(v.Questions))
			for _, q := range v.Questions {
				tags = append(tags, string(q))
			}
			sb.WriteString(" [" + strings.Join(tags, ", ") + "]")
		}
		sb.WriteString("\n")
	}

	if len(targets) > 0 {
		sb.WriteString("\n🎯 Изучаемые: " + strings.Join(targets, ", "))
	} else {
		sb.WriteString("\n🎯 Изучаемых слов пока нет — добавьте через /learn")
	}

	return b.reply(message.Chat.ID, sb.String())
}

func (b *Bot) handleTime(message *tgbotapi.Message) error {
	arg := strings.TrimSpace(message.CommandArguments())
	hour, err := strconv.Atoi(arg)
	if err != nil || hour < 0 || hour > 23 {
		return b.reply(message.Chat.ID, "Укажите час от 0 до 23: /time 9")
	}

	if err := b.userRepo.SetNotificationHour(message.From.ID, hour); err != nil {
		return err
	}
	return b.reply(message.Chat.ID, fmt.Sprintf("Буду присылать фразы в %d:00.", hour))
}

func (b *Bot) handleNotify(message *tgbotapi.Message) error {
	switch strings.ToLower(strings.TrimSpace(message.CommandArguments())) {
	case "on":
		if err := b.userRepo.SetNotificationsEnabled(message.From.ID, true); err != nil {
			return err
		}
		return b.reply(message.Chat.ID, "Рассылка включена.")
	case "off":
		if err := b.userRepo.SetNotificationsEnabled(message.From.ID, false); err != nil {
			return err
		}
		return b.reply(message.Chat.ID, "Рассылка выключена.")
	}
	return b.reply(message.Chat.ID, "Используйте /notify on или /notify off.")
}
