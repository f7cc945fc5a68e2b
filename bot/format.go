package bot

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"restaurant-menu/models"
	"restaurant-menu/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	callbackRestaurants = "restaurants"
	callbackMenuPrefix  = "menu:"

	helpText = "Send /restaurants to browse restaurants or /menu <id> to see a menu."
)

// FormatMenu renders a categorized menu as Telegram HTML.
func FormatMenu(rest models.Restaurant, menu services.Menu) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>%s</b>\n", html.EscapeString(rest.Name))

	sections := menu.Sections()
	if len(sections) == 0 {
		sb.WriteString("\nThis restaurant has no menu items yet.")
		return sb.String()
	}
	for _, s := range sections {
		fmt.Fprintf(&sb, "\n<u>%s</u>\n", s.Title)
		for _, it := range s.Items {
			line := "• " + html.EscapeString(it.Name)
			if it.Price != "" {
				line += " - " + html.EscapeString(it.Price)
			}
			sb.WriteString(line + "\n")
			if it.Description != "" {
				fmt.Fprintf(&sb, "  <i>%s</i>\n", html.EscapeString(it.Description))
			}
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func restaurantKeyboard(restaurants []models.Restaurant) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(restaurants))
	for _, r := range restaurants {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(r.Name, callbackMenuPrefix+strconv.FormatInt(r.ID, 10)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func backKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« All restaurants", callbackRestaurants),
	))
}

func parseMenuCallback(data string) (int64, bool) {
	rest, ok := strings.CutPrefix(data, callbackMenuPrefix)
	if !ok {
		return 0, false
	}
	return positiveID(rest)
}

// parseMenuCommand reads "/menu 3".
func parseMenuCommand(text string) (int64, bool) {
	fields := strings.Fields(text)
	if len(fields) != 2 || fields[0] != "/menu" {
		return 0, false
	}
	return positiveID(fields[1])
}

func positiveID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
