package service

import (
	"context"
	"errors"
	"strings"
)

const DefaultVoice = "Brian"

// Voices disponibles en ttsmp3 (las que ofrece el comando).
var Voices = []string{"Brian", "Emma", "Ivy", "Joey", "Justin", "Kendra", "Kimberly", "Matthew", "Salli"}

var ErrEmptyText = errors.New("empty text")

type TTSService struct {
	api TTSAPI
}

func NewTTSService(api TTSAPI) *TTSService { return &TTSService{api: api} }

// Speak sintetiza text y devuelve el mp3. Una voz desconocida cae en DefaultVoice.
func (s *TTSService) Speak(ctx context.Context, text, voice string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	url, err := s.api.Synthesize(ctx, text, VoiceOrDefault(voice))
	if err != nil {
		return nil, err
	}
	return s.api.Download(ctx, url)
}

func VoiceOrDefault(voice string) string {
	for _, v := range Voices {
		if strings.EqualFold(v, voice) {
			return v
		}
	}
	return DefaultVoice
}
