// Package infractions - /infraction list command
package infractions

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/database"
	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createListCommand creates the /infraction list subcommand
func createListCommand() *discord.Command {
	return discord.NewCommand(
		"list",
		"Lista las infracciones del servidor",
		"infractions",
		listHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "tipos",
			Description: "Tipos a mostrar, separados por comas (note, warning, mute, kick, ban)",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages).
		RequiresDatabase()
}

// listHandler handles the /infraction list command
func listHandler(ctx *discord.CommandContext) error {
	types, err := parseTypeList(ctx.GetStringOption("tipos"))
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Tipo de infracción desconocido. Tipos válidos: %s.", typeNames()))
	}

	go func() {
		defer errors.RecoverMiddleware()()

		if err := ctx.Defer(); err != nil {
			logger.Error(fmt.Sprintf("Error difiriendo /infraction list: %v", err), "CMD-Infraction")
			return
		}

		reqCtx, cancel := commandContext()
		defer cancel()

		rows, err := database.GlobalInfractionStore.FindByGuild(reqCtx, ctx.Interaction.GuildID, types)
		if err != nil {
			logger.Error(fmt.Sprintf("Error en /infraction list: %v", err), "CMD-Infraction")
			ctx.EditReply("❌ Error al consultar la base de datos.")
			return
		}

		title := "📋 Infracciones del servidor"
		if len(types) > 0 {
			labels := make([]string, 0, len(types))
			for _, t := range types {
				labels = append(labels, fmt.Sprintf("%s %s", t.Emoji(), t.Label()))
			}
			title = fmt.Sprintf("📋 Infracciones del servidor: %s", strings.Join(labels, ", "))
		}

		if len(rows) == 0 {
			embed := &discordgo.MessageEmbed{
				Title:       title,
				Description: "No hay infracciones registradas.",
				Color:       0x00FF00, // Green
				Footer:      embedFooter(ctx),
				Timestamp:   time.Now().Format(time.RFC3339),
			}
			ctx.EditReplyEmbed(embed)
			return
		}

		var lines []string
		for i, inf := range rows {
			if i >= maxListLines {
				lines = append(lines, fmt.Sprintf("… y %d más", len(rows)-maxListLines))
				break
			}
			lines = append(lines, moderation.FormatListLine(inf, ctx.ResolveUserLabel(inf.UserID)))
		}

		embed := &discordgo.MessageEmbed{
			Title:       title,
			Description: strings.Join(lines, "\n"),
			Color:       0xFFA500, // Orange
			Footer:      embedFooter(ctx),
			Timestamp:   time.Now().Format(time.RFC3339),
		}
		ctx.EditReplyEmbed(embed)
	}()

	return nil
}
