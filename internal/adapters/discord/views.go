package discord

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jose-valero/kino-bot/internal/paginator"
)

const (
	viewPrefix  = "pg"
	viewTimeout = 60 * time.Second
)

var errBadCustomID = errors.New("discord: malformed view custom id")

// viewEditor es lo que necesita el registry para desactivar botones al expirar.
type viewEditor interface {
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type view struct {
	nav       paginator.Navigator
	channelID string
	messageID string
	timer     *time.Timer
}

// viewRegistry guarda las sesiones de paginación vivas por id. Cada una tiene
// su timer de inactividad que se reinicia con cada click.
type viewRegistry struct {
	mu     sync.Mutex
	views  map[string]*view
	ttl    time.Duration
	editor viewEditor
}

func newViewRegistry(editor viewEditor, ttl time.Duration) *viewRegistry {
	if ttl <= 0 {
		ttl = viewTimeout
	}
	return &viewRegistry{views: map[string]*view{}, ttl: ttl, editor: editor}
}

// Open registra nav y devuelve el id y el primer render con sus botones.
func (vr *viewRegistry) Open(nav paginator.Navigator) (string, *discordgo.MessageEmbed, []discordgo.MessageComponent) {
	id := uuid.NewString()
	v := &view{nav: nav}

	vr.mu.Lock()
	vr.views[id] = v
	v.timer = time.AfterFunc(vr.ttl, func() { vr.expire(id) })
	vr.mu.Unlock()

	return id, toEmbed(nav.Render()), navComponents(id, nav.Actions(), false)
}

// Attach guarda dónde quedó publicado el mensaje (lo usa el timeout).
func (vr *viewRegistry) Attach(id string, msg *discordgo.Message) {
	if msg == nil {
		return
	}
	vr.mu.Lock()
	defer vr.mu.Unlock()
	if v, ok := vr.views[id]; ok {
		v.channelID, v.messageID = msg.ChannelID, msg.ID
	}
}

type viewUpdate struct {
	Embed      *discordgo.MessageEmbed
	Components []discordgo.MessageComponent
	Closed     bool
}

// Handle aplica una acción. Sesión desconocida o ya inactiva -> paginator.ErrInactive.
func (vr *viewRegistry) Handle(id string, a paginator.Action) (viewUpdate, error) {
	vr.mu.Lock()
	v, ok := vr.views[id]
	if ok {
		v.timer.Reset(vr.ttl)
	}
	vr.mu.Unlock()
	if !ok {
		return viewUpdate{}, paginator.ErrInactive
	}

	allowed := false
	for _, have := range v.nav.Actions() {
		if have == a {
			allowed = true
			break
		}
	}
	if !allowed {
		return viewUpdate{}, errBadCustomID
	}

	page, err := v.nav.Navigate(a)
	if err != nil {
		return viewUpdate{}, err
	}
	if a == paginator.Close {
		vr.drop(id)
		return viewUpdate{Closed: true}, nil
	}
	return viewUpdate{Embed: toEmbed(page), Components: navComponents(id, v.nav.Actions(), false)}, nil
}

func (vr *viewRegistry) drop(id string) *view {
	vr.mu.Lock()
	defer vr.mu.Unlock()
	v, ok := vr.views[id]
	if !ok {
		return nil
	}
	v.timer.Stop()
	delete(vr.views, id)
	return v
}

// expire: los botones quedan desactivados, el último embed sigue visible.
func (vr *viewRegistry) expire(id string) {
	v := vr.drop(id)
	if v == nil {
		return
	}
	v.nav.Expire()
	if v.messageID == "" || vr.editor == nil {
		return
	}

	comps := navComponents(id, v.nav.Actions(), true)
	_, err := vr.editor.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    v.channelID,
		ID:         v.messageID,
		Components: &comps,
	})
	if err != nil {
		log.Warn().Err(err).Str("view", id).Msg("view expire edit failed")
		return
	}
	log.Debug().Str("view", id).Msg("view expired")
}

func (vr *viewRegistry) Len() int {
	vr.mu.Lock()
	defer vr.mu.Unlock()
	return len(vr.views)
}

func viewCustomID(id string, a paginator.Action) string {
	return viewPrefix + ":" + id + ":" + string(a)
}

func isViewCustomID(customID string) bool {
	return strings.HasPrefix(customID, viewPrefix+":")
}

func parseViewCustomID(customID string) (string, paginator.Action, error) {
	parts := strings.Split(customID, ":")
	if len(parts) != 3 || parts[0] != viewPrefix || parts[1] == "" || parts[2] == "" {
		return "", "", errBadCustomID
	}
	return parts[1], paginator.Action(parts[2]), nil
}
