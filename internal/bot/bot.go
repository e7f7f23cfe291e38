package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tasnim/rise-and-shine-bot/internal/domain"
	"github.com/tasnim/rise-and-shine-bot/internal/schedule"
	"github.com/tasnim/rise-and-shine-bot/internal/service"
	"github.com/tasnim/rise-and-shine-bot/internal/session"
)

// sender is the slice of the Telegram API the handlers need to reply
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot routes Telegram updates to command handlers and the form dialogue
type Bot struct {
	api      *tgbotapi.BotAPI
	send     sender
	service  *service.ChallengeService
	sessions domain.SessionStore
	queue    *session.Serializer
	window   *schedule.Window
	now      func() time.Time
}

// New creates a new Bot instance
func New(token string, svc *service.ChallengeService, sessions domain.SessionStore, window *schedule.Window) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	b := newBot(api, svc, sessions, window)
	b.api = api
	return b, nil
}

func newBot(send sender, svc *service.ChallengeService, sessions domain.SessionStore, window *schedule.Window) *Bot {
	return &Bot{
		send:     send,
		service:  svc,
		sessions: sessions,
		queue:    session.NewSerializer(),
		window:   window,
		now:      time.Now,
	}
}

// Start consumes the long-poll update stream until the channel closes.
// Updates from the same chat are handled strictly in arrival order;
// different chats never block each other.
func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		message := update.Message
		b.queue.Do(message.Chat.ID, func() {
			b.handleMessage(message)
		})
	}

	return nil
}

// handleMessage handles one inbound message
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	if message.IsCommand() {
		b.handleCommand(message)
		return
	}

	b.advance(message)
}

// handleCommand handles bot commands. Unrecognized commands are
// ignored, matching the bot's behavior for any other stray text.
func (b *Bot) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "form":
		b.handleForm(message)
	case "leaderboard":
		b.handleLeaderboard(message)
	}
}

// handleStart handles the /start command
func (b *Bot) handleStart(message *tgbotapi.Message) {
	b.sendMessage(message.Chat.ID, msgWelcome)
}

// handleForm opens the form dialogue if intake is currently open. A
// chat that already has a dialogue in progress starts over from the
// name question.
func (b *Bot) handleForm(message *tgbotapi.Message) {
	if !b.window.IsOpen(b.now()) {
		b.sendMessage(message.Chat.ID, msgWindowClosed)
		return
	}

	b.sessions.Put(&domain.Session{ChatID: message.Chat.ID, Step: domain.StepName})
	b.sendMessage(message.Chat.ID, msgAskName)
}

// handleLeaderboard handles the /leaderboard command
func (b *Bot) handleLeaderboard(message *tgbotapi.Message) {
	text, err := b.service.Leaderboard(context.Background())
	if err != nil {
		log.Printf("Error fetching leaderboard: %v", err)
		b.sendMessage(message.Chat.ID, msgLeaderboardError)
		return
	}

	b.sendMessage(message.Chat.ID, text)
}

// advance moves an active form dialogue one step. Text from a chat
// with no session is silently ignored, as are non-text messages.
func (b *Bot) advance(message *tgbotapi.Message) {
	if message.Text == "" {
		return
	}

	sess, ok := b.sessions.Get(message.Chat.ID)
	if !ok {
		return
	}

	switch sess.Step {
	case domain.StepName:
		sess.Name = message.Text
		sess.Step = domain.StepEmail
		b.sessions.Put(sess)
		b.sendMessage(message.Chat.ID, msgAskEmail)
	case domain.StepEmail:
		sess.Email = message.Text
		sess.Step = domain.StepPrayerStatus
		b.sessions.Put(sess)
		b.sendMessage(message.Chat.ID, msgAskPrayer)
	case domain.StepPrayerStatus:
		b.finishForm(message, sess)
	}
}

// finishForm runs the duplicate check and records the submission. The
// session is removed on every outcome, store failure included, so the
// chat can always start over with /form.
func (b *Bot) finishForm(message *tgbotapi.Message, sess *domain.Session) {
	defer b.sessions.Delete(message.Chat.ID)

	result, err := b.service.SubmitForm(context.Background(), sess, message.Text)
	if err != nil {
		log.Printf("Error saving submission for chat %d: %v", message.Chat.ID, err)
		b.sendMessage(message.Chat.ID, msgSubmitError)
		return
	}

	if result == service.SubmitDuplicate {
		b.sendMessage(message.Chat.ID, msgDuplicate)
		return
	}

	b.sendMessage(message.Chat.ID, msgThanks)
}

// sendMessage sends a simple text message
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.send.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
