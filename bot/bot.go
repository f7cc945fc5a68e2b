package bot

import (
	"context"
	"errors"
	"log"
	"strings"

	"restaurant-menu/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot lets Telegram users browse restaurants and their menus. It never
// writes to the store.
type Bot struct {
	api  *tgbotapi.BotAPI
	repo *services.Repository
}

func New(token string, repo *services.Repository) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{api: api, repo: repo}, nil
}

// Start polls for updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) {
	_ = b.setBotCommands()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.CallbackQuery != nil {
			b.handleCallback(ctx, update.CallbackQuery)
			continue
		}
		if update.Message == nil {
			continue
		}
		msg := update.Message
		text := strings.TrimSpace(msg.Text)

		switch {
		case text == "/start", text == "/restaurants":
			b.sendRestaurants(ctx, msg.Chat.ID)
		case strings.HasPrefix(text, "/menu"):
			id, ok := parseMenuCommand(text)
			if !ok {
				b.send(msg.Chat.ID, "Usage: /menu <restaurant id>")
				continue
			}
			b.sendMenu(ctx, msg.Chat.ID, id)
		default:
			b.send(msg.Chat.ID, helpText)
		}
	}
}

func (b *Bot) setBotCommands() error {
	cfg := tgbotapi.SetMyCommandsConfig{
		Commands: []tgbotapi.BotCommand{
			{Command: "restaurants", Description: "List restaurants"},
			{Command: "menu", Description: "Show a restaurant's menu"},
		},
	}
	_, err := b.api.Request(cfg)
	return err
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	b.api.Request(tgbotapi.NewCallback(cq.ID, ""))
	if cq.Message == nil {
		return
	}
	chatID := cq.Message.Chat.ID

	switch {
	case cq.Data == callbackRestaurants:
		b.sendRestaurants(ctx, chatID)
	default:
		id, ok := parseMenuCallback(cq.Data)
		if !ok {
			return
		}
		b.sendMenu(ctx, chatID, id)
	}
}

func (b *Bot) sendRestaurants(ctx context.Context, chatID int64) {
	restaurants, err := b.repo.ListRestaurants(ctx)
	if err != nil {
		log.Printf("bot: list restaurants: %v", err)
		b.send(chatID, "Something went wrong, please try again later.")
		return
	}
	if len(restaurants) == 0 {
		b.send(chatID, "No restaurants yet.")
		return
	}
	msg := tgbotapi.NewMessage(chatID, "Pick a restaurant:")
	msg.ReplyMarkup = restaurantKeyboard(restaurants)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("bot: send restaurants: %v", err)
	}
}

func (b *Bot) sendMenu(ctx context.Context, chatID, restaurantID int64) {
	rest, err := b.repo.GetRestaurant(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			b.send(chatID, "That restaurant no longer exists.")
			return
		}
		log.Printf("bot: get restaurant %d: %v", restaurantID, err)
		b.send(chatID, "Something went wrong, please try again later.")
		return
	}
	items, err := b.repo.ListMenuItemsByRestaurant(ctx, restaurantID)
	if err != nil {
		log.Printf("bot: list menu %d: %v", restaurantID, err)
		b.send(chatID, "Something went wrong, please try again later.")
		return
	}

	msg := tgbotapi.NewMessage(chatID, FormatMenu(*rest, services.Categorize(items)))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = backKeyboard()
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("bot: send menu: %v", err)
	}
}

func (b *Bot) send(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("bot: send: %v", err)
	}
}
