// Package paginator navega un set fijo de páginas (ya traído de la API) y
// produce el contenido de cada página. No sabe nada de Discord: el adapter
// se encarga de pintar el Page y de mandar las acciones.
package paginator

import (
	"errors"
	"sync"
)

var (
	// ErrInactive: la sesión ya se cerró o expiró; la acción se ignora.
	ErrInactive = errors.New("paginator: session is no longer active")
	// ErrNoPages: un paginator de lista necesita al menos un item.
	ErrNoPages = errors.New("paginator: no pages to show")
)

type Action string

const (
	First    Action = "first"
	Previous Action = "prev"
	Next     Action = "next"
	Last     Action = "last"
	Close    Action = "close"
)

type State int

const (
	Active State = iota
	Closed
	Expired
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Closed:
		return "closed"
	case Expired:
		return "expired"
	}
	return "unknown"
}

// Config define cómo se parte el set y qué pasa en los bordes.
//
// GroupSize <= 1 es una página por item (maxPage = n-1). Con GroupSize > 1
// maxPage = n/GroupSize (+1 si hay intro). Ese +1 hace que con n múltiplo
// de GroupSize la última página quede vacía: lo dejamos así y el render
// pinta el placeholder.
type Config struct {
	GroupSize    int
	Wraps        bool
	HasIntroPage bool
	Closable     bool
}

func (c Config) grouped() bool { return c.GroupSize > 1 }

// View es lo que recibe el render: la página actual y su tajada de items.
type View[T any] struct {
	Index   int
	MaxPage int
	Intro   bool
	Items   []T
}

type RenderFunc[T any] func(View[T]) Page

// Navigator es la cara no genérica que usa el adapter de Discord.
type Navigator interface {
	Navigate(a Action) (Page, error)
	Render() Page
	Expire()
	State() State
	Actions() []Action
}

type Paginator[T any] struct {
	mu      sync.Mutex
	items   []T
	cfg     Config
	render  RenderFunc[T]
	current int
	maxPage int
	state   State
}

func New[T any](items []T, cfg Config, render RenderFunc[T]) (*Paginator[T], error) {
	if render == nil {
		return nil, errors.New("paginator: nil render func")
	}
	if !cfg.grouped() && !cfg.HasIntroPage && len(items) == 0 {
		return nil, ErrNoPages
	}

	// copia: el set no cambia durante la vida de la sesión
	own := make([]T, len(items))
	copy(own, items)

	return &Paginator[T]{
		items:   own,
		cfg:     cfg,
		render:  render,
		maxPage: maxPageFor(len(own), cfg),
	}, nil
}

func maxPageFor(n int, cfg Config) int {
	intro := 0
	if cfg.HasIntroPage {
		intro = 1
	}
	if cfg.grouped() {
		return n/cfg.GroupSize + intro
	}
	return n - 1 + intro
}

func (p *Paginator[T]) First() (Page, error) {
	return p.move(func(int) int { return 0 })
}

func (p *Paginator[T]) Last() (Page, error) {
	return p.move(func(int) int { return p.maxPage })
}

func (p *Paginator[T]) Previous() (Page, error) {
	return p.move(func(cur int) int {
		if cur > 0 {
			return cur - 1
		}
		if p.cfg.Wraps {
			return p.maxPage
		}
		return 0
	})
}

func (p *Paginator[T]) Next() (Page, error) {
	return p.move(func(cur int) int {
		if cur < p.maxPage {
			return cur + 1
		}
		if p.cfg.Wraps {
			return 0
		}
		return p.maxPage
	})
}

// Close marca la sesión como cerrada; el caller borra el mensaje.
func (p *Paginator[T]) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Active {
		return ErrInactive
	}
	p.state = Closed
	return nil
}

// Expire se llama desde el timer de inactividad. Los controles quedan
// muertos pero el último render sigue visible.
func (p *Paginator[T]) Expire() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Active {
		p.state = Expired
	}
}

func (p *Paginator[T]) Navigate(a Action) (Page, error) {
	switch a {
	case First:
		return p.First()
	case Previous:
		return p.Previous()
	case Next:
		return p.Next()
	case Last:
		return p.Last()
	case Close:
		if err := p.Close(); err != nil {
			return Page{}, err
		}
		return p.Render(), nil
	}
	return Page{}, errors.New("paginator: unknown action " + string(a))
}

func (p *Paginator[T]) move(step func(cur int) int) (Page, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Active {
		return Page{}, ErrInactive
	}
	p.current = clamp(step(p.current), 0, p.maxPage)
	return p.renderLocked(), nil
}

func (p *Paginator[T]) Render() Page {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.renderLocked()
}

func (p *Paginator[T]) renderLocked() Page {
	v := View[T]{Index: p.current, MaxPage: p.maxPage}
	if p.cfg.HasIntroPage && p.current == 0 {
		v.Intro = true
		return p.render(v)
	}

	idx := p.current
	if p.cfg.HasIntroPage {
		idx--
	}
	size := p.cfg.GroupSize
	if size < 1 {
		size = 1
	}
	start := idx * size
	end := start + size
	if start > len(p.items) {
		start = len(p.items)
	}
	if end > len(p.items) {
		end = len(p.items)
	}
	v.Items = p.items[start:end]
	return p.render(v)
}

func (p *Paginator[T]) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Paginator[T]) MaxPage() int { return p.maxPage }

func (p *Paginator[T]) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Actions: los botones que tiene sentido mostrar para esta config.
func (p *Paginator[T]) Actions() []Action {
	out := []Action{First, Previous, Next, Last}
	if p.cfg.Closable {
		out = append(out, Close)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
