package paginator_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/kino-bot/internal/paginator"
)

func listOf(n int) *paginator.Paginator[string] {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item-%d", i)
	}
	p, err := paginator.NewList(items, func(it string) paginator.Page {
		return paginator.Page{Description: it}
	})
	if err != nil {
		panic(err)
	}
	return p
}

func groupedOf(n int) *paginator.Paginator[string] {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("cmd-%d", i)
	}
	p, err := paginator.NewGrouped(items, paginator.GroupedOptions[string]{
		GroupSize: 8,
		Intro:     paginator.Page{Title: "intro"},
		Entry:     func(it string) paginator.Field { return paginator.Field{Name: it} },
		Empty:     paginator.Field{Name: "empty", Value: "No more commands to display!"},
	})
	if err != nil {
		panic(err)
	}
	return p
}

func TestList_ClampsAtBothEnds(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			p := listOf(n)
			assert.Equal(t, n-1, p.MaxPage())

			page, err := p.Previous()
			require.NoError(t, err)
			assert.Equal(t, 0, p.Current())
			assert.Equal(t, "item-0", page.Description)

			_, err = p.Last()
			require.NoError(t, err)
			page, err = p.Next()
			require.NoError(t, err)
			assert.Equal(t, n-1, p.Current())
			assert.Equal(t, fmt.Sprintf("item-%d", n-1), page.Description)
			assert.Equal(t, fmt.Sprintf("Page %d/%d", n, n), page.Footer)
		})
	}
}

func TestList_EmptyIsRejected(t *testing.T) {
	_, err := paginator.NewList([]string{}, func(string) paginator.Page { return paginator.Page{} })
	assert.ErrorIs(t, err, paginator.ErrNoPages)
}

func TestGrouped_MaxPageKeepsExtraPage(t *testing.T) {
	cases := []struct {
		commands int
		want     int
	}{
		{0, 1},
		{7, 1},
		{8, 2},
		{16, 3},
		{17, 3},
		{24, 4},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("m=%d", tc.commands), func(t *testing.T) {
			p := groupedOf(tc.commands)
			assert.Equal(t, tc.want, p.MaxPage())
			assert.Equal(t, tc.commands/8+1, p.MaxPage())
		})
	}
}

func TestGrouped_Wraps(t *testing.T) {
	p := groupedOf(17)

	page, err := p.Previous()
	require.NoError(t, err)
	assert.Equal(t, 3, p.Current())
	assert.Equal(t, "Page 4/4", page.Footer)

	page, err = p.Next()
	require.NoError(t, err)
	assert.Equal(t, 0, p.Current())
	assert.Equal(t, "intro", page.Title)
}

func TestRoundTripFromInteriorPage(t *testing.T) {
	t.Run("clamp", func(t *testing.T) {
		p := listOf(5)
		_, _ = p.Next()
		_, _ = p.Next()
		start := p.Current()
		_, _ = p.Next()
		_, _ = p.Previous()
		assert.Equal(t, start, p.Current())
	})
	t.Run("wrap", func(t *testing.T) {
		p := groupedOf(30)
		_, _ = p.Next()
		_, _ = p.Next()
		start := p.Current()
		_, _ = p.Next()
		_, _ = p.Previous()
		assert.Equal(t, start, p.Current())
	})
}

func TestClose_RejectsFurtherNavigation(t *testing.T) {
	p := groupedOf(17)
	_, err := p.Next()
	require.NoError(t, err)

	require.NoError(t, p.Close())
	assert.Equal(t, paginator.Closed, p.State())

	for _, a := range []paginator.Action{paginator.First, paginator.Previous, paginator.Next, paginator.Last, paginator.Close} {
		_, err := p.Navigate(a)
		assert.ErrorIs(t, err, paginator.ErrInactive, string(a))
		assert.Equal(t, 1, p.Current())
	}
}

func TestExpire_KeepsLastRender(t *testing.T) {
	p := listOf(3)
	page, err := p.Next()
	require.NoError(t, err)

	p.Expire()
	assert.Equal(t, paginator.Expired, p.State())

	_, err = p.Next()
	assert.ErrorIs(t, err, paginator.ErrInactive)
	assert.Equal(t, page, p.Render())

	// expirar una sesión cerrada no la "revive" ni cambia su estado
	q := listOf(3)
	require.NoError(t, q.Close())
	q.Expire()
	assert.Equal(t, paginator.Closed, q.State())
}

func TestGrouped_EmptySliceRendersPlaceholder(t *testing.T) {
	p := groupedOf(16)
	page, err := p.Last()
	require.NoError(t, err)
	require.Len(t, page.Fields, 1)
	assert.Equal(t, "empty", page.Fields[0].Name)
	assert.Equal(t, "Page 4/4", page.Footer)

	empty := groupedOf(0)
	page, err = empty.Next()
	require.NoError(t, err)
	require.Len(t, page.Fields, 1)
	assert.Equal(t, "No more commands to display!", page.Fields[0].Value)
}

func TestGrouped_SeventeenCommands(t *testing.T) {
	p := groupedOf(17)
	require.Equal(t, 3, p.MaxPage())

	intro := p.Render()
	assert.Equal(t, "intro", intro.Title)
	assert.Empty(t, intro.Footer)

	page, err := p.Next()
	require.NoError(t, err)
	require.Len(t, page.Fields, 8)
	assert.Equal(t, "cmd-0", page.Fields[0].Name)

	page, err = p.Last()
	require.NoError(t, err)
	require.Len(t, page.Fields, 1)
	assert.Equal(t, "cmd-16", page.Fields[0].Name)
}

func TestRender_IsIdempotent(t *testing.T) {
	p := listOf(4)
	_, _ = p.Next()
	a := p.Render()
	b := p.Render()
	assert.Equal(t, a, b)
	assert.Equal(t, 1, p.Current())
}

func TestActions(t *testing.T) {
	assert.Equal(t,
		[]paginator.Action{paginator.First, paginator.Previous, paginator.Next, paginator.Last},
		listOf(2).Actions())
	assert.Contains(t, groupedOf(2).Actions(), paginator.Close)
}

func TestNavigate_ConcurrentEventsStayInRange(t *testing.T) {
	p := groupedOf(40)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = p.Next()
			} else {
				_, _ = p.Previous()
			}
		}(i)
	}
	wg.Wait()
	cur := p.Current()
	assert.GreaterOrEqual(t, cur, 0)
	assert.LessOrEqual(t, cur, p.MaxPage())
}

func TestNew_CopiesItems(t *testing.T) {
	items := []string{"a", "b"}
	p, err := paginator.NewList(items, func(it string) paginator.Page { return paginator.Page{Description: it} })
	require.NoError(t, err)
	items[0] = "mutated"
	assert.Equal(t, "a", p.Render().Description)
}
