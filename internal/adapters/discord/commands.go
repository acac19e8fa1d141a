package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/kino-bot/internal/app/service"
)

// emojiPairs de /quickpoll, por value de la opción emoji_type.
var emojiPairs = map[string][2]string{
	"updown": {"⬆️", "⬇️"},
	"yesno":  {"✅", "❌"},
	"thumbs": {"👍", "👎"},
}

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "help",
		Description: "Shows all commands.",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "command",
			Description: "The command to get help for.",
		}},
	},
	{
		Name:        "afk",
		Description: "Set an AFK status for when you are mentioned",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "message",
			Description: "Message to display when you are mentioned",
			Required:    true,
		}},
	},
	{
		Name:        "quickpoll",
		Description: "Add up/down arrow to message initiating a poll",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message_id",
				Description: "Message ID to add emojis to.",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "emoji_type",
				Description: "Emoji type to add to message.",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Up/Down Arrow", Value: "updown"},
					{Name: "Green Check/Red X", Value: "yesno"},
					{Name: "Thumbs Up/Down", Value: "thumbs"},
				},
			},
		},
	},
	{
		Name:        "movie",
		Description: "Movie related commands",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "watch",
			Description: "Get a link to watch a movie.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "movie",
					Description:  "Movie to watch",
					Required:     true,
					Autocomplete: true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "include_adult",
					Description: "Include adult movies (True by default)",
				},
			},
		}},
	},
	{
		Name:        "invites",
		Description: "View all active invites in the server",
	},
	{
		Name:        "tts",
		Description: "Sends a .mp3 file of text speech",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "Text to speak",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "voice",
				Description: "Voice to speak with",
				Choices:     voiceChoices(),
			},
		},
	},
	{
		Name:        "horoscope",
		Description: "Get your daily horoscope",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "sign",
			Description: "Zodiac sign",
			Required:    true,
			Choices:     signChoices(),
		}},
	},
	{
		Name:        "colorscheme",
		Description: "Generate a color scheme",
	},
	{
		Name:        "listeners",
		Description: "Shows the top listeners of your current Spotify song. (Must be listening to Spotify)",
	},
}

func voiceChoices() []*discordgo.ApplicationCommandOptionChoice {
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(service.Voices))
	for _, v := range service.Voices {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: v, Value: v})
	}
	return out
}

func signChoices() []*discordgo.ApplicationCommandOptionChoice {
	signs := service.Signs()
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(signs))
	for _, s := range signs {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: s.Name, Value: s.Value})
	}
	return out
}
