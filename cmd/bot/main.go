package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jose-valero/kino-bot/internal/adapters/cardui"
	"github.com/jose-valero/kino-bot/internal/adapters/colormind"
	discordrouter "github.com/jose-valero/kino-bot/internal/adapters/discord"
	"github.com/jose-valero/kino-bot/internal/adapters/horoscope"
	"github.com/jose-valero/kino-bot/internal/adapters/httpapi"
	"github.com/jose-valero/kino-bot/internal/adapters/statsfm"
	"github.com/jose-valero/kino-bot/internal/adapters/tmdb"
	"github.com/jose-valero/kino-bot/internal/adapters/ttsmp3"
	"github.com/jose-valero/kino-bot/internal/app/service"
	"github.com/jose-valero/kino-bot/internal/infra/config"
	"github.com/jose-valero/kino-bot/internal/infra/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	envFile    string
}

func newRootCmd() *cobra.Command {
	var (
		f   flags
		cfg config.Config
	)

	root := &cobra.Command{
		Use:          "kino-bot",
		Short:        "Discord bot: help, movies, tts, horoscope, color schemes, listeners and AFK",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := godotenv.Load(f.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("env file %s: %w", f.envFile, err)
			}
			c, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			cfg = c
			config.InitLogger(cfg.LogLevel, cfg.LogFormat)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVar(&f.configPath, "config", "config.yml", "path to the YAML config file")
	root.PersistentFlags().StringVar(&f.envFile, "env-file", ".env", "path to a .env file")

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, _, err := openDB(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return db.Close()
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "commands",
		Short: "Register slash commands and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cfg)
			if err != nil {
				return err
			}
			if err := openSession(s); err != nil {
				return err
			}
			defer s.Close()
			return discordrouter.NewRouter(s, discordrouter.SettingsFrom(cfg), discordrouter.Services{}).Register()
		},
	})
	return root
}

// openDB abre y migra.
func openDB(ctx context.Context, cfg config.Config) (*sql.DB, storage.Dialect, error) {
	db, dialect, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, "", err
	}
	if err := storage.Migrate(db, dialect); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("migrate: %w", err)
	}
	log.Info().Str("dialect", string(dialect)).Msg("✅ DB lista y migrada")
	return db, dialect, nil
}

// newSession: GuildMembers y GuildPresences son privilegiados (welcome y
// /listeners), hay que habilitarlos en el portal.
func newSession(cfg config.Config) (*discordgo.Session, error) {
	s, err := discordgo.New(cfg.BotAuth())
	if err != nil {
		return nil, err
	}
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildPresences
	return s, nil
}

func openSession(s *discordgo.Session) error {
	if err := s.Open(); err != nil {
		return fmt.Errorf("discord open: %w", err)
	}
	log.Info().Str("user", s.State.User.Username).Str("id", s.State.User.ID).Msg("✅ Conectado")
	return nil
}

func run(ctx context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// DB
	db, dialect, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	afkRepo := storage.NewAFKRepo(db, dialect)

	// clientes HTTP
	movies := tmdb.New(cfg.TMDBAPIKey)
	tts := ttsmp3.New()
	astro := horoscope.New()
	palette := colormind.New()
	listeners := statsfm.New(cfg.StatsFMAPIKey)
	cards := cardui.New(cfg.CardServiceURL)

	svc := discordrouter.Services{
		AFK:       service.NewAFKService(afkRepo),
		Movies:    service.NewMovieService(movies),
		TTS:       service.NewTTSService(tts),
		Horoscope: service.NewHoroscopeService(astro),
		Palette:   service.NewPaletteService(palette),
		Listeners: service.NewListenerService(listeners),
		Welcome:   service.NewWelcomeService(cards),
	}

	// Discord
	var connected atomic.Bool
	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	s.AddHandler(func(*discordgo.Session, *discordgo.Ready) { connected.Store(true) })
	s.AddHandler(func(*discordgo.Session, *discordgo.Resumed) { connected.Store(true) })
	s.AddHandler(func(*discordgo.Session, *discordgo.Disconnect) { connected.Store(false) })

	r := discordrouter.NewRouter(s, discordrouter.SettingsFrom(cfg), svc)
	r.Handlers()
	if err := openSession(s); err != nil {
		return err
	}
	defer s.Close()

	if err := r.Register(); err != nil {
		return fmt.Errorf("registrando comandos: %w", err)
	}

	// health
	go func() {
		if err := httpapi.New(db, connected.Load).Start(ctx, cfg.HTTPAddr); err != nil {
			log.Error().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("apagando")
	return nil
}
