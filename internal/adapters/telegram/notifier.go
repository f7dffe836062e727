package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/selivandex/kdp-autostudio/assets"
	"github.com/selivandex/kdp-autostudio/internal/adapters/config"
	"github.com/selivandex/kdp-autostudio/internal/research"
	"github.com/selivandex/kdp-autostudio/pkg/logger"
	"github.com/selivandex/kdp-autostudio/pkg/models"
	"github.com/selivandex/kdp-autostudio/pkg/templates"
)

// SummaryTopIdeas is how many ideas a research summary lists
const SummaryTopIdeas = 5

// sender is the part of tgbotapi.BotAPI the notifier needs
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier sends research summaries to a Telegram chat
type Notifier struct {
	api       sender
	chatID    int64
	templates templates.Renderer
}

// NewNotifier creates new Telegram notifier
func NewNotifier(cfg *config.TelegramConfig, renderer templates.Renderer) (*Notifier, error) {
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	bot.Debug = false

	logger.Info("telegram notifier initialized",
		zap.String("bot_username", bot.Self.UserName),
	)

	return &Notifier{
		api:       bot,
		chatID:    cfg.ChatID,
		templates: renderer,
	}, nil
}

// ResearchSummary is the data rendered into the research summary message
type ResearchSummary struct {
	RunID     string
	Keywords  string
	IdeaCount int
	TopIdeas  []models.ScoredIdea
	Output    string
}

// NewResearchSummary builds summary data from a report. User-provided text is escaped for Markdown.
func NewResearchSummary(report *research.Report, output string) ResearchSummary {
	keywords := make([]string, len(report.Keywords))
	for i, kw := range report.Keywords {
		keywords[i] = escape(kw)
	}

	top := report.TopIdeas(SummaryTopIdeas)
	for i := range top {
		top[i].Title = escape(top[i].Title)
	}

	return ResearchSummary{
		RunID:     report.RunID,
		Keywords:  strings.Join(keywords, ", "),
		IdeaCount: len(report.Ideas),
		TopIdeas:  top,
		Output:    output,
	}
}

// SendResearchSummary renders and sends the summary of a finished run
func (n *Notifier) SendResearchSummary(report *research.Report, output string) error {
	msg, err := n.templates.ExecuteTemplate(assets.ResearchSummaryTemplate, NewResearchSummary(report, output))
	if err != nil {
		return err
	}

	return n.sendMessageMarkdown(n.chatID, msg)
}

func (n *Notifier) sendMessageMarkdown(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	_, err := n.api.Send(msg)
	if err != nil {
		logger.Error("failed to send telegram message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}
