package service

import (
	"context"
	"strconv"

	"github.com/jose-valero/kino-bot/internal/domain"
)

type WelcomeService struct {
	cards CardRenderer
}

func NewWelcomeService(cards CardRenderer) *WelcomeService { return &WelcomeService{cards: cards} }

func (s *WelcomeService) Card(ctx context.Context, avatar string, memberCount int, username string) ([]byte, error) {
	png, err := s.cards.Welcome(ctx, domain.WelcomeCard{
		Avatar:      avatar,
		MemberCount: strconv.Itoa(memberCount),
		Username:    username,
	})
	if err != nil {
		return nil, err
	}
	if len(png) == 0 {
		return nil, ErrNoResults
	}
	return png, nil
}
