package service

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jose-valero/kino-bot/internal/domain"
)

var signs = []string{
	"aries", "taurus", "gemini", "cancer", "leo", "virgo",
	"libra", "scorpio", "sagittarius", "capricorn", "aquarius", "pisces",
}

// Sign: Value va a la API, Name es lo que ve el usuario.
type Sign struct {
	Value string
	Name  string
}

type HoroscopeService struct {
	api HoroscopeAPI
}

func NewHoroscopeService(api HoroscopeAPI) *HoroscopeService { return &HoroscopeService{api: api} }

func Signs() []Sign {
	title := cases.Title(language.English)
	out := make([]Sign, 0, len(signs))
	for _, s := range signs {
		out = append(out, Sign{Value: s, Name: title.String(s)})
	}
	return out
}

func (s *HoroscopeService) Daily(ctx context.Context, sign string) (domain.Horoscope, error) {
	sign = strings.ToLower(strings.TrimSpace(sign))
	known := false
	for _, v := range signs {
		if v == sign {
			known = true
			break
		}
	}
	if !known {
		return domain.Horoscope{}, ErrUnknownSign
	}

	h, err := s.api.Daily(ctx, sign)
	if err != nil {
		return domain.Horoscope{}, err
	}
	if strings.TrimSpace(h.Text) == "" {
		return domain.Horoscope{}, ErrNoResults
	}
	return h, nil
}
