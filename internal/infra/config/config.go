package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	BowlingAPIURL string // base del servicio de puntajes, sin default
	DatabaseURL   string
	DiscordToken  string
	DiscordGuild  string
	HTTPAddr      string // opcional, default :8080
	AdminRoleIDs  []string

	// webhook de pistas (vacío = deshabilitado)
	LaneWebhookSecret string

	// cooldown de /bowl roll; sin REDIS_ADDR queda en memoria
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RollCooldown  time.Duration
}

func Load() Config {
	get := func(k string, req bool) string {
		v := os.Getenv(k)
		if v == "" && req {
			log.Fatalf("faltante env %s", k)
		}
		return v
	}

	cfg := Config{
		BowlingAPIURL:     get("BOWLING_API_URL", true),
		DatabaseURL:       get("DATABASE_URL", true),
		DiscordToken:      get("DISCORD_BOT_TOKEN", true),
		DiscordGuild:      get("DISCORD_GUILD_ID", true),
		HTTPAddr:          get("HTTP_ADDR", false),
		AdminRoleIDs:      splitList(get("ADMIN_ROLE_IDS", false)),
		LaneWebhookSecret: get("LANE_WEBHOOK_SECRET", false),
		RedisAddr:         get("REDIS_ADDR", false),
		RedisPassword:     get("REDIS_PASSWORD", false),
		RedisDB:           getInt("REDIS_DB", 0),
		RollCooldown:      time.Duration(getInt("ROLL_COOLDOWN_SECONDS", 2)) * time.Second,
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	return cfg
}

func getInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("env %s=%q inválido, uso %d", k, v, def)
		return def
	}
	return n
}

// splitList: ids separados por coma.
func splitList(raw string) []string {
	var out []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
