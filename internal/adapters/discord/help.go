package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/kino-bot/internal/paginator"
)

// commandDoc es un nodo del árbol de comandos, ya con su path completo.
type commandDoc struct {
	Path        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
	// Leaf: se puede ejecutar (no es comando padre ni grupo).
	Leaf bool
}

func isSubOption(o *discordgo.ApplicationCommandOption) bool {
	return o.Type == discordgo.ApplicationCommandOptionSubCommand ||
		o.Type == discordgo.ApplicationCommandOptionSubCommandGroup
}

// walkCommands aplana Commands en orden de declaración, padres antes que hijos.
func walkCommands(cmds []*discordgo.ApplicationCommand) []commandDoc {
	var out []commandDoc
	var walk func(path, desc string, opts []*discordgo.ApplicationCommandOption)
	walk = func(path, desc string, opts []*discordgo.ApplicationCommandOption) {
		var subs, params []*discordgo.ApplicationCommandOption
		for _, o := range opts {
			if isSubOption(o) {
				subs = append(subs, o)
			} else {
				params = append(params, o)
			}
		}
		out = append(out, commandDoc{Path: path, Description: desc, Options: params, Leaf: len(subs) == 0})
		for _, s := range subs {
			walk(path+" "+s.Name, s.Description, s.Options)
		}
	}
	for _, c := range cmds {
		walk(c.Name, c.Description, c.Options)
	}
	return out
}

// leafCommands: lo que lista el /help paginado.
func leafCommands(cmds []*discordgo.ApplicationCommand) []commandDoc {
	var out []commandDoc
	for _, d := range walkCommands(cmds) {
		if d.Leaf {
			out = append(out, d)
		}
	}
	return out
}

// findCommand resuelve "movie watch" (espacios de más se ignoran).
func findCommand(cmds []*discordgo.ApplicationCommand, path string) (commandDoc, bool) {
	want := strings.Join(strings.Fields(strings.ToLower(path)), " ")
	if want == "" {
		return commandDoc{}, false
	}
	want = strings.TrimPrefix(want, "/")
	for _, d := range walkCommands(cmds) {
		if d.Path == want {
			return d, true
		}
	}
	return commandDoc{}, false
}

func describe(desc string) string {
	if strings.TrimSpace(desc) == "" {
		return "No description"
	}
	return desc
}

func helpEntry(d commandDoc) paginator.Field {
	lines := []string{describe(d.Description)}
	for _, o := range d.Options {
		name := "[" + o.Name + "]"
		if o.Required {
			name = "<" + o.Name + ">"
		}
		lines = append(lines, fmt.Sprintf("`%s`: _%s_", name, describe(o.Description)))
	}
	return paginator.Field{Name: "/" + d.Path, Value: strings.Join(lines, "\n")}
}

func helpIntro(color int) paginator.Page {
	return paginator.Page{
		Title:       "📘 Help Command Guide",
		Description: "Learn how to navigate and utilize the bot's commands for a seamless experience!",
		Color:       color,
		Fields: []paginator.Field{
			{
				Name:  "🔢 Navigating Pages",
				Value: "Use the **Next** and **Previous** buttons below to move between pages. You can jump to the first or last page with ⏮️ and ⏭️ respectively.",
			},
			{
				Name:  "🔍 Understanding Commands",
				Value: "Commands are listed with details. Required arguments are in **<angle brackets>**, optional ones in **[square brackets]**. Parameters describe what should be entered.",
			},
			{
				Name:  "📄 Example Usage",
				Value: "Each command comes with an example usage to guide you on how to use it properly. Pay attention to the syntax and ordering of arguments!",
			},
			{
				Name:  "💡 Tips",
				Value: "Use the bot in a specific channel or in DMs to avoid clutter. Remember, you can always type `/` and the command name to see interactive options!",
			},
			{
				Name:  "❓ Getting More Help",
				Value: "Need more specific help with a command? Use `/help [command]` to get detailed instructions about a particular command.",
			},
		},
	}
}

func newHelpPaginator(cmds []*discordgo.ApplicationCommand, color int) (*paginator.Paginator[commandDoc], error) {
	return paginator.NewGrouped(leafCommands(cmds), paginator.GroupedOptions[commandDoc]{
		GroupSize: paginator.DefaultGroupSize,
		Intro:     helpIntro(color),
		Color:     color,
		Entry:     helpEntry,
		Empty:     paginator.Field{Name: "Nothing here", Value: "No more commands to display!"},
	})
}

const (
	markYes = "✅"
	markNo  = "❌"
)

// helpDetail es el embed de /help command:<path>.
func helpDetail(d commandDoc, color int) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{
		Title:       "`" + d.Path + "`",
		Description: describe(d.Description),
		Color:       color,
	}
	if !d.Leaf {
		return e
	}

	usage := "/" + d.Path
	for _, o := range d.Options {
		usage += " <" + o.Name + ">"
	}
	e.Fields = append(e.Fields, &discordgo.MessageEmbedField{Name: "Usage", Value: "```" + usage + "```"})
	for _, o := range d.Options {
		mark := markNo
		if o.Required {
			mark = markYes
		}
		e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
			Name:  o.Name,
			Value: describe(o.Description) + "\nRequired: " + mark,
		})
	}
	return e
}
