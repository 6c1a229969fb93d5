package discord

import "github.com/bwmarrin/discordgo"

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "ping",
		Description: "¿Está vivo el bot?",
	},
	{
		Name:        "bowl",
		Description: "Partidas de bolos en este canal",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "new",
				Description: "Crear partida y asociarla al canal",
				Options: []*discordgo.ApplicationCommandOption{{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "players",
					Description: "Nombres separados por coma, en orden de turno",
					Required:    true,
				}},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "show",
				Description: "Ver la partida del canal (u otra por id)",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "game", Description: "Id de partida (opcional)"},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "roll",
				Description: "Registrar una tirada",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "player", Description: "Id del jugador", Required: true},
					{Type: discordgo.ApplicationCommandOptionInteger, Name: "pins", Description: "Pinos derribados", Required: true},
					{Type: discordgo.ApplicationCommandOptionString, Name: "game", Description: "Id de partida (opcional)"},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "end",
				Description: "Liberar el canal (quien creó la partida o admins)",
			},
		},
	},
}
