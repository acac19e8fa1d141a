// esta es la logica de InteractionApplicationCommand de discordgo
// aqui solo vamos a manejar logica de la interaccion del usuario y despachar a los servicios correspondientes
package discord

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/jose-valero/kino-bot/internal/app/service"
	"github.com/jose-valero/kino-bot/internal/paginator"
)

const commandTimeout = 20 * time.Second

func (r *Router) handleSlashCommand(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	cmd := ic.ApplicationCommandData()
	user := invoker(ic)
	log.Info().Str("cmd", cmd.Name).Str("user", user.ID).Str("guild", ic.GuildID).Msg("slash")

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Str("cmd", cmd.Name).Msg("panic in slash command")
			ReplyEphemeral(s, ic, "❌ An unexpected error occurred while processing the command.")
		}
	}()
	defer step("cmd." + cmd.Name)()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	switch cmd.Name {
	case "help":
		r.cmdHelp(s, ic)
	case "afk":
		r.cmdAFK(ctx, s, ic, user)
	case "quickpoll":
		r.cmdQuickpoll(s, ic)
	case "movie":
		if sub, _ := subcmdName(ic); sub == "watch" {
			r.cmdMovieWatch(ctx, s, ic)
		}
	case "invites":
		r.cmdInvites(s, ic)
	case "tts":
		r.cmdTTS(ctx, s, ic, user)
	case "horoscope":
		r.cmdHoroscope(ctx, s, ic, user)
	case "colorscheme":
		r.cmdColorscheme(ctx, s, ic)
	case "listeners":
		r.cmdListeners(ctx, s, ic, user)
	default:
		_ = SendEphemeral(s, ic, "Unknown command.")
	}
}

//--> /help [command]
func (r *Router) cmdHelp(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	if path, ok := optStr(ic, "command"); ok && path != "" {
		doc, found := findCommand(Commands, path)
		if !found {
			_ = SendEphemeral(s, ic, "Command **"+path+"** not found.")
			return
		}
		_ = s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{helpDetail(doc, r.cfg.Colors.Default)}},
		})
		return
	}

	pg, err := newHelpPaginator(Commands, r.cfg.Colors.Default)
	if err != nil {
		_ = SendEphemeral(s, ic, "⚠️ Could not build the help menu.")
		return
	}
	id, embed, comps := r.views.Open(pg)
	if err := s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}, Components: comps},
	}); err != nil {
		log.Error().Err(err).Msg("help respond")
		return
	}
	msg, err := s.InteractionResponse(ic.Interaction)
	if err != nil {
		log.Warn().Err(err).Msg("help fetch response")
		return
	}
	r.views.Attach(id, msg)
}

//--> /afk message
func (r *Router) cmdAFK(ctx context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate, user *discordgo.User) {
	_ = DeferEphemeral(s, ic)
	msg, _ := optStr(ic, "message")
	set, err := r.svc.AFK.Toggle(ctx, user.ID, msg)
	if err != nil {
		log.Error().Err(err).Str("user", user.ID).Msg("afk toggle")
		ReplyEphemeral(s, ic, "⚠️ Could not update your AFK status.")
		return
	}
	if set {
		ReplyEphemeral(s, ic, "AFK status set.")
		return
	}
	ReplyEphemeral(s, ic, "AFK status removed.")
}

//--> /quickpoll message_id emoji_type
func (r *Router) cmdQuickpoll(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	msgID, _ := optStr(ic, "message_id")
	kind, _ := optStr(ic, "emoji_type")
	pair, ok := emojiPairs[kind]
	if !isSnowflake(msgID) || !ok {
		_ = SendEphemeral(s, ic, "Please provide a valid message ID and emoji type.")
		return
	}

	for _, e := range pair {
		if err := s.MessageReactionAdd(ic.ChannelID, msgID, e); err != nil {
			log.Warn().Err(err).Str("msg", msgID).Msg("quickpoll reaction")
			_ = SendEphemeral(s, ic, "Could not find that message in this channel.")
			return
		}
	}
	if SendEphemeral(s, ic, "Done.") == nil {
		deleteResponseAfter(s, ic, autoDeleteAfter)
	}
}

//--> /movie watch movie [include_adult]
func (r *Router) cmdMovieWatch(ctx context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate) {
	query, _ := optStr(ic, "movie")
	adult, ok := optBool(ic, "include_adult")
	if !ok {
		adult = true
	}
	if query == service.PopularPlaceholder {
		_ = SendEphemeral(s, ic, "Um, you selected the placeholder option. Please select a movie.")
		return
	}

	_ = DeferPublic(s, ic)
	card, err := r.svc.Movies.Watch(ctx, query, adult)
	switch {
	case errors.Is(err, service.ErrNoResults):
		ReplyPrivate(s, ic, "No results found.")
		return
	case err != nil:
		log.Error().Err(err).Str("query", query).Msg("movie watch")
		Reply(s, ic, "Failed to fetch movie details.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       card.Title,
		Description: truncate(card.Overview, 4096),
		Color:       r.cfg.Colors.Success,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Genres", Value: card.GenreLabel(), Inline: true},
			{Name: "Vote Average", Value: card.VoteLabel(), Inline: true},
		},
	}
	if card.PosterURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: card.PosterURL}
	}
	comps := linkButton("Watch", card.WatchURL)
	embeds := []*discordgo.MessageEmbed{embed}
	_, _ = EditOriginal(s, ic, &discordgo.WebhookEdit{Embeds: &embeds, Components: &comps})
}

//--> /invites (admins)
func (r *Router) cmdInvites(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	if !r.requireAdminOrRoles(s, ic) {
		return
	}
	_ = DeferPublic(s, ic)

	invites, err := s.GuildInvites(ic.GuildID)
	if err != nil {
		log.Error().Err(err).Str("guild", ic.GuildID).Msg("guild invites")
		Reply(s, ic, "Failed to fetch invites.")
		return
	}
	Reply(s, ic, "", invitesEmbed(invites, r.cfg.Colors.Info))
}

//--> /tts text [voice]
func (r *Router) cmdTTS(ctx context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate, user *discordgo.User) {
	if ok, wait := r.cooldown.Allow("tts:" + user.ID); !ok {
		_ = SendEphemeral(s, ic, fmtCooldown(wait))
		return
	}
	text, _ := optStr(ic, "text")
	voice, _ := optStr(ic, "voice")

	_ = DeferPublic(s, ic)
	audio, err := r.svc.TTS.Speak(ctx, text, voice)
	if err != nil {
		log.Error().Err(err).Msg("tts")
		Reply(s, ic, "Failed to generate speech.")
		return
	}
	ReplyFile(s, ic, "tts.mp3", "audio/mpeg", audio)
}

//--> /horoscope sign
func (r *Router) cmdHoroscope(ctx context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate, user *discordgo.User) {
	if ok, wait := r.cooldown.Allow("horoscope:" + user.ID); !ok {
		_ = SendEphemeral(s, ic, fmtCooldown(wait))
		return
	}
	sign, _ := optStr(ic, "sign")

	_ = DeferPublic(s, ic)
	h, err := r.svc.Horoscope.Daily(ctx, sign)
	if err != nil {
		log.Error().Err(err).Str("sign", sign).Msg("horoscope")
		Reply(s, ic, "Failed to fetch your horoscope.")
		return
	}
	embed := &discordgo.MessageEmbed{Description: h.Text, Color: r.cfg.Colors.Success}
	if h.Icon != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: h.Icon}
	}
	Reply(s, ic, "", embed)
}

//--> /colorscheme
func (r *Router) cmdColorscheme(ctx context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate) {
	_ = DeferPublic(s, ic)
	img, _, err := r.svc.Palette.Generate(ctx)
	switch {
	case errors.Is(err, service.ErrNoResults):
		Reply(s, ic, "No colors received from the service.")
		return
	case err != nil:
		log.Error().Err(err).Msg("colorscheme")
		Reply(s, ic, "Failed to fetch color scheme.")
		return
	}
	ReplyFile(s, ic, "colors.png", "image/png", img)
}

//--> /listeners
func (r *Router) cmdListeners(ctx context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate, user *discordgo.User) {
	track, ok := r.spotifyTrack(ic.GuildID, user.ID)
	if !ok {
		_ = SendEphemeral(s, ic, "You must be listening to Spotify to use this command.")
		return
	}

	_ = DeferPublic(s, ic)
	ls, err := r.svc.Listeners.TopListeners(ctx, track)
	switch {
	case errors.Is(err, service.ErrTrackNotFound):
		Reply(s, ic, "Could not find any listeners for "+track.Title)
		return
	case err != nil:
		log.Error().Err(err).Str("track", track.Title).Msg("listeners")
		Reply(s, ic, "Failed to fetch listeners.")
		return
	}

	pg, err := newListenerPaginator(track, ls)
	if err != nil {
		Reply(s, ic, "Could not find any listeners for "+track.Title)
		return
	}
	r.publishView(s, ic, pg)
}

// publishView abre la vista y la pone como respuesta diferida.
func (r *Router) publishView(s *discordgo.Session, ic *discordgo.InteractionCreate, nav paginator.Navigator) {
	id, embed, comps := r.views.Open(nav)
	embeds := []*discordgo.MessageEmbed{embed}
	msg, err := EditOriginal(s, ic, &discordgo.WebhookEdit{Embeds: &embeds, Components: &comps})
	if err != nil {
		return
	}
	r.views.Attach(id, msg)
}
