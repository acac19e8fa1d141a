package discord

import (
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/kino-bot/internal/paginator"
)

type fakeEditor struct {
	mu    sync.Mutex
	edits []*discordgo.MessageEdit
}

func (f *fakeEditor) ChannelMessageEditComplex(m *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, m)
	return &discordgo.Message{ID: m.ID, ChannelID: m.Channel}, nil
}

func (f *fakeEditor) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.edits)
}

func listNav(t *testing.T, items ...string) *paginator.Paginator[string] {
	t.Helper()
	p, err := paginator.NewList(items, func(s string) paginator.Page { return paginator.Page{Description: s} })
	require.NoError(t, err)
	return p
}

func buttons(t *testing.T, comps []discordgo.MessageComponent) []discordgo.Button {
	t.Helper()
	require.Len(t, comps, 1)
	row, ok := comps[0].(discordgo.ActionsRow)
	require.True(t, ok)
	out := make([]discordgo.Button, 0, len(row.Components))
	for _, c := range row.Components {
		b, ok := c.(discordgo.Button)
		require.True(t, ok)
		out = append(out, b)
	}
	return out
}

func TestViewRegistry_OpenAndNavigate(t *testing.T) {
	vr := newViewRegistry(&fakeEditor{}, time.Minute)
	id, embed, comps := vr.Open(listNav(t, "a", "b", "c"))

	assert.Equal(t, "a", embed.Description)
	assert.Equal(t, "Page 1/3", embed.Footer.Text)
	btns := buttons(t, comps)
	require.Len(t, btns, 4)
	assert.Equal(t, "pg:"+id+":first", btns[0].CustomID)
	assert.Equal(t, "pg:"+id+":last", btns[3].CustomID)

	up, err := vr.Handle(id, paginator.Next)
	require.NoError(t, err)
	assert.Equal(t, "b", up.Embed.Description)

	up, err = vr.Handle(id, paginator.Last)
	require.NoError(t, err)
	assert.Equal(t, "c", up.Embed.Description)

	up, err = vr.Handle(id, paginator.Next)
	require.NoError(t, err)
	assert.Equal(t, "c", up.Embed.Description, "list views clamp at the end")
}

func TestViewRegistry_UnknownSessionAndAction(t *testing.T) {
	vr := newViewRegistry(&fakeEditor{}, time.Minute)
	_, err := vr.Handle("nope", paginator.Next)
	assert.ErrorIs(t, err, paginator.ErrInactive)

	id, _, _ := vr.Open(listNav(t, "a"))
	_, err = vr.Handle(id, paginator.Close)
	assert.ErrorIs(t, err, errBadCustomID, "list views have no close button")
}

func TestViewRegistry_CloseDropsSession(t *testing.T) {
	ed := &fakeEditor{}
	vr := newViewRegistry(ed, time.Minute)

	nav, err := newHelpPaginator(Commands, 0x123456)
	require.NoError(t, err)
	id, embed, comps := vr.Open(nav)
	assert.Equal(t, "📘 Help Command Guide", embed.Title)
	assert.Len(t, buttons(t, comps), 5)

	up, err := vr.Handle(id, paginator.Close)
	require.NoError(t, err)
	assert.True(t, up.Closed)
	assert.Zero(t, vr.Len())

	_, err = vr.Handle(id, paginator.Next)
	assert.ErrorIs(t, err, paginator.ErrInactive)
	assert.Zero(t, ed.count(), "close does not go through the expire edit")
}

func TestViewRegistry_ExpireDisablesButtons(t *testing.T) {
	ed := &fakeEditor{}
	vr := newViewRegistry(ed, 30*time.Millisecond)

	nav := listNav(t, "a", "b")
	id, _, _ := vr.Open(nav)
	vr.Attach(id, &discordgo.Message{ID: "m1", ChannelID: "c1"})

	require.Eventually(t, func() bool { return ed.count() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, paginator.Expired, nav.State())
	assert.Zero(t, vr.Len())

	edit := ed.edits[0]
	assert.Equal(t, "c1", edit.Channel)
	assert.Equal(t, "m1", edit.ID)
	assert.Nil(t, edit.Embeds, "last render stays as is")
	for _, b := range buttons(t, *edit.Components) {
		assert.True(t, b.Disabled)
	}

	_, err := vr.Handle(id, paginator.Next)
	assert.ErrorIs(t, err, paginator.ErrInactive)
}

func TestViewRegistry_ClicksResetTimer(t *testing.T) {
	ed := &fakeEditor{}
	vr := newViewRegistry(ed, 200*time.Millisecond)
	id, _, _ := vr.Open(listNav(t, "a", "b"))

	for i := 0; i < 4; i++ {
		time.Sleep(60 * time.Millisecond)
		_, err := vr.Handle(id, paginator.Next)
		require.NoError(t, err, "click %d", i)
	}
	assert.Equal(t, 1, vr.Len())
}

func TestParseViewCustomID(t *testing.T) {
	id, a, err := parseViewCustomID(viewCustomID("abc", paginator.Previous))
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
	assert.Equal(t, paginator.Previous, a)

	for _, bad := range []string{"", "pg", "pg::next", "pg:abc:", "xx:abc:next", "pg:a:b:c"} {
		_, _, err := parseViewCustomID(bad)
		assert.ErrorIs(t, err, errBadCustomID, bad)
	}
	assert.True(t, isViewCustomID("pg:abc:next"))
	assert.False(t, isViewCustomID("queue_join"))
}
