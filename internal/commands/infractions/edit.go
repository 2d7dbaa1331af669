// Package infractions - /infraction edit command
package infractions

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createEditCommand creates the /infraction edit subcommand
func createEditCommand() *discord.Command {
	return discord.NewCommand(
		"edit",
		"Cambia la razón de una infracción",
		"infractions",
		editHandler,
	).WithOptions(
		idOptionSpec(),
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Nueva razón",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionAdministrator).
		RequiresDatabase()
}

// editHandler handles the /infraction edit command
func editHandler(ctx *discord.CommandContext) error {
	id := ctx.GetIntOption("id")
	reason := ctx.GetStringOption("razon")
	if reason == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar la nueva razón.")
	}

	go func() {
		defer errors.RecoverMiddleware()()

		if err := ctx.Defer(); err != nil {
			logger.Error(fmt.Sprintf("Error difiriendo /infraction edit: %v", err), "CMD-Infraction")
			return
		}

		reqCtx, cancel := commandContext()
		defer cancel()

		rows, err := service(ctx).EditReason(reqCtx, ctx.Interaction.GuildID, id, reason)
		if err != nil {
			logger.Error(fmt.Sprintf("Error en /infraction edit: %v", err), "CMD-Infraction")
			ctx.EditReply("❌ Error al actualizar la infracción.")
			return
		}
		if rows == 0 {
			ctx.EditReply(notFoundMessage(id))
			return
		}

		embed := &discordgo.MessageEmbed{
			Title: "✏ Infracción actualizada",
			Description: fmt.Sprintf(
				"La infracción `#%d` ahora tiene la razón:\n\n> %s",
				id, reason,
			),
			Color:     0x00FF00, // Green
			Footer:    embedFooter(ctx),
			Timestamp: time.Now().Format(time.RFC3339),
		}
		ctx.EditReplyEmbed(embed)
	}()

	return nil
}
