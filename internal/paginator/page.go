package paginator

import "fmt"

// DefaultGroupSize: comandos por página en el help.
const DefaultGroupSize = 8

type Author struct {
	Name    string
	URL     string
	IconURL string
}

type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Page es el descriptor que pinta el adapter (en Discord, un embed).
type Page struct {
	Title       string
	Description string
	Author      *Author
	Thumbnail   string
	Color       int
	Fields      []Field
	Footer      string
}

func Footer(index, maxPage int) string {
	return fmt.Sprintf("Page %d/%d", index+1, maxPage+1)
}

// NewList: un item por página, sin wrap (se queda en los bordes).
func NewList[T any](items []T, page func(item T) Page) (*Paginator[T], error) {
	return New(items, Config{GroupSize: 1}, func(v View[T]) Page {
		p := page(v.Items[0])
		if p.Footer == "" {
			p.Footer = Footer(v.Index, v.MaxPage)
		}
		return p
	})
}

type GroupedOptions[T any] struct {
	GroupSize int
	Intro     Page
	Color     int
	Entry     func(item T) Field
	// Empty se muestra cuando la tajada queda vacía.
	Empty Field
}

// NewGrouped: GroupSize items por página, intro en la página 0, wrap en los
// bordes y botón de cerrar.
func NewGrouped[T any](items []T, opt GroupedOptions[T]) (*Paginator[T], error) {
	if opt.GroupSize <= 1 {
		opt.GroupSize = DefaultGroupSize
	}
	if opt.Entry == nil {
		return nil, fmt.Errorf("paginator: grouped view needs an entry func")
	}
	if opt.Empty.Name == "" {
		opt.Empty = Field{Name: "Nothing here", Value: "No more items to display!"}
	}

	cfg := Config{GroupSize: opt.GroupSize, Wraps: true, HasIntroPage: true, Closable: true}
	return New(items, cfg, func(v View[T]) Page {
		if v.Intro {
			return opt.Intro
		}
		p := Page{Color: opt.Color, Footer: Footer(v.Index, v.MaxPage)}
		if len(v.Items) == 0 {
			p.Fields = []Field{opt.Empty}
			return p
		}
		p.Fields = make([]Field, 0, len(v.Items))
		for _, it := range v.Items {
			p.Fields = append(p.Fields, opt.Entry(it))
		}
		return p
	})
}
