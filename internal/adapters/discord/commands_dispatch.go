// aqui solo manejamos la interaccion del usuario y despachamos al GameService
package discord

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/bowling-bot/internal/app/service"
)

func (r *Router) handleSlashCommand(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	cmd := ic.ApplicationCommandData()
	uid := userID(ic)
	log.Printf("cmd: %s by=%s guild=%s channel=%s", cmd.Name, uid, ic.GuildID, ic.ChannelID)

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic in cmd /%s: %v", cmd.Name, rec)
			ReplyEphemeral(s, ic, "❌ Ocurrió un error inesperado procesando el comando.")
		}
	}()

	if cmd.Name == "ping" {
		_ = DeferEphemeral(s, ic)
		ReplyEphemeral(s, ic, "🏓 Pong!")
		return
	}
	if cmd.Name != "bowl" {
		return
	}

	_ = DeferPublic(s, ic)
	ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
	defer cancel()

	sub, _ := subcmdName(ic)
	switch sub {

	//--> crear partida; queda asociada al canal
	case "new":
		players, _ := optStr(ic, "players")
		msg, err := r.games.NewGame(ctx, ic.GuildID, ic.ChannelID, uid, players)
		if err != nil {
			msg = "⚠️ No se pudo crear la partida: " + service.ErrText(err)
		}
		Reply(s, ic, msg)

	case "show":
		game, _ := optStr(ic, "game")
		r.show(ctx, s, ic, game)

	case "roll":
		stop := step("cmd.bowl_roll.total")
		defer stop()
		if !r.rollLimiter.Allow(ctx, uid) {
			Reply(s, ic, "⏳ Esperá un segundo entre tiradas…")
			return
		}
		player, _ := optStr(ic, "player")
		pins, _ := optInt(ic, "pins")
		game, _ := optStr(ic, "game")

		msg, err := r.games.Roll(ctx, ic.GuildID, ic.ChannelID, game, player, pins)
		if err != nil {
			Reply(s, ic, "⚠️ No se pudo registrar la tirada: "+service.ErrText(err))
			return
		}
		if id, err := r.games.Resolve(ctx, ic.GuildID, ic.ChannelID, game); err == nil {
			Reply(s, ic, msg, refreshRow(id))
			return
		}
		Reply(s, ic, msg)

	case "end":
		msg, err := r.games.End(ctx, ic.GuildID, ic.ChannelID, uid, r.isAdmin(s, ic))
		if err != nil {
			msg = "⚠️ No se pudo liberar el canal: " + service.ErrText(err)
		}
		Reply(s, ic, msg)

	default:
		Reply(s, ic, "Usa `/bowl new`, `/bowl show`, `/bowl roll` o `/bowl end`.")
	}
}

func (r *Router) show(ctx context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate, game string) {
	msg, err := r.games.Show(ctx, ic.GuildID, ic.ChannelID, game)
	if err != nil {
		Reply(s, ic, "⚠️ No pude obtener la partida: "+service.ErrText(err))
		return
	}
	id, err := r.games.Resolve(ctx, ic.GuildID, ic.ChannelID, game)
	if err != nil {
		Reply(s, ic, msg)
		return
	}
	Reply(s, ic, msg, refreshRow(id))
}
