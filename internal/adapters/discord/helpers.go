package discord

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

// options devuelve las opciones del comando, bajando por subcomandos/grupos.
func options(ic *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	if ic.Type != discordgo.InteractionApplicationCommand && ic.Type != discordgo.InteractionApplicationCommandAutocomplete {
		return nil
	}
	opts := ic.ApplicationCommandData().Options
	for len(opts) == 1 && (opts[0].Type == discordgo.ApplicationCommandOptionSubCommand ||
		opts[0].Type == discordgo.ApplicationCommandOptionSubCommandGroup) {
		opts = opts[0].Options
	}
	return opts
}

func optStr(ic *discordgo.InteractionCreate, name string) (string, bool) {
	for _, o := range options(ic) {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionString {
			return o.StringValue(), true
		}
	}
	return "", false
}

func optBool(ic *discordgo.InteractionCreate, name string) (bool, bool) {
	for _, o := range options(ic) {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionBoolean {
			return o.BoolValue(), true
		}
	}
	return false, false
}

func subcmdName(ic *discordgo.InteractionCreate) (string, bool) {
	if ic.Type != discordgo.InteractionApplicationCommand && ic.Type != discordgo.InteractionApplicationCommandAutocomplete {
		return "", false
	}
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Type == discordgo.ApplicationCommandOptionSubCommand {
			return o.Name, true
		}
	}
	return "", false
}

// focused: la opción que el usuario está escribiendo (autocomplete).
func focused(ic *discordgo.InteractionCreate) (*discordgo.ApplicationCommandInteractionDataOption, bool) {
	for _, o := range options(ic) {
		if o.Focused {
			return o, true
		}
	}
	return nil, false
}

// invoker: en guild viene Member, en DM viene User.
func invoker(ic *discordgo.InteractionCreate) *discordgo.User {
	if ic.Member != nil && ic.Member.User != nil {
		return ic.Member.User
	}
	if ic.User != nil {
		return ic.User
	}
	return &discordgo.User{}
}

func mention(userID string) string { return "<@" + userID + ">" }

// truncate corta a n runes (límites de Discord: 100 en choices, 1024 en fields).
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

func isSnowflake(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 20 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func fmtCooldown(d time.Duration) string {
	sec := int(d.Round(time.Second).Seconds())
	if sec < 1 {
		sec = 1
	}
	return fmt.Sprintf("⏳ You're on cooldown. Try again in %ds.", sec)
}
