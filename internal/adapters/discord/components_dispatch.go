package discord

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
)

func (r *Router) handleMessageComponent(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	data := ic.MessageComponentData()

	gameID, ok := refreshGameID(data.CustomID)
	if !ok {
		log.Printf("component %q desconocido", data.CustomID)
		return
	}

	_ = DeferPublic(s, ic)
	ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()

	stop := step("component.bowl_refresh.total")
	defer stop()
	r.show(ctx, s, ic, gameID)
}
