package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/jose-valero/bowling-bot/internal/adapters/bowling"
	discordrouter "github.com/jose-valero/bowling-bot/internal/adapters/discord"
	"github.com/jose-valero/bowling-bot/internal/adapters/httplane"
	"github.com/jose-valero/bowling-bot/internal/app/service"
	"github.com/jose-valero/bowling-bot/internal/infra/config"
	"github.com/jose-valero/bowling-bot/internal/infra/limiter"
	"github.com/jose-valero/bowling-bot/internal/infra/metrics"
	"github.com/jose-valero/bowling-bot/internal/infra/storage"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	// DB
	db, err := storage.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := storage.Migrate(db); err != nil {
		log.Fatal("migrate:", err)
	}
	log.Println("✅ DB lista y migrada")

	channelsRepo := storage.NewChannelGamesRepo(db)
	laneRepo := storage.NewLaneEventsRepo(db)

	// cliente del servicio de puntajes
	bc := bowling.New(cfg.BowlingAPIURL, bowling.WithObserver(metrics.ObserveBowling))
	log.Printf("[bowling] endpoint %s", bc.Endpoint())

	// Services
	gamesSvc := service.NewGameService(bc, channelsRepo)
	laneSvc := service.NewLaneService(bc, laneRepo)

	// HTTP: health, metrics y webhook de pistas (si hay secreto)
	web := httplane.New(cfg.LaneWebhookSecret, laneSvc)
	go web.Start(cfg.HTTPAddr)

	// Discord session
	auth := cfg.DiscordToken
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(auth)), "bot ") {
		auth = "Bot " + strings.TrimSpace(auth)
	}
	s, err := discordgo.New(auth)
	if err != nil {
		log.Fatal(err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	if err := s.Open(); err != nil {
		log.Fatal(err)
	}
	defer s.Close()
	log.Printf("✅ Conectado como %s (%s)", s.State.User.Username, s.State.User.ID)

	r := discordrouter.NewRouter(
		s,
		cfg.DiscordGuild,
		gamesSvc,
		limiter.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RollCooldown),
		cfg.AdminRoleIDs,
	)
	if err := r.Register(); err != nil {
		log.Fatalf("registrando comandos: %v", err)
	}
	r.Handlers()
	log.Printf("✅ comandos registrados en guild %s", cfg.DiscordGuild)

	// Esperar señal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop
}

