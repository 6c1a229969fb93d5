package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/bowling-bot/internal/app/service"
	"github.com/jose-valero/bowling-bot/internal/infra/limiter"
)

type Router struct {
	s       *discordgo.Session
	guildID string

	games        *service.GameService
	rollLimiter  limiter.Limiter
	adminRoleIDs []string
}

func NewRouter(
	s *discordgo.Session,
	guildID string,
	games *service.GameService,
	rollLimiter limiter.Limiter,
	adminRoleIDs []string,
) *Router {
	return &Router{
		s:            s,
		guildID:      guildID,
		games:        games,
		rollLimiter:  rollLimiter,
		adminRoleIDs: adminRoleIDs,
	}
}

func (r *Router) Register() error {
	appID := r.s.State.User.ID
	for _, cmd := range Commands {
		if _, err := r.s.ApplicationCommandCreate(appID, r.guildID, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		switch ic.Type {
		case discordgo.InteractionApplicationCommand:
			r.handleSlashCommand(s, ic)
		case discordgo.InteractionMessageComponent:
			r.handleMessageComponent(s, ic)
		default:
			log.Printf("interaction type %v ignorada", ic.Type)
		}
	})
}
