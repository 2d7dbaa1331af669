// Package infractions - /infraction delete command
package infractions

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createDeleteCommand creates the /infraction delete subcommand
func createDeleteCommand() *discord.Command {
	return discord.NewCommand(
		"delete",
		"Elimina una infracción del registro",
		"infractions",
		deleteHandler,
	).WithOptions(
		idOptionSpec(),
	).WithUserPermissions(discordgo.PermissionAdministrator).
		RequiresDatabase()
}

// deleteHandler handles the /infraction delete command. The id is
// never reused for later infractions.
func deleteHandler(ctx *discord.CommandContext) error {
	id := ctx.GetIntOption("id")

	go func() {
		defer errors.RecoverMiddleware()()

		if err := ctx.Defer(); err != nil {
			logger.Error(fmt.Sprintf("Error difiriendo /infraction delete: %v", err), "CMD-Infraction")
			return
		}

		reqCtx, cancel := commandContext()
		defer cancel()

		rows, err := service(ctx).DeleteInfraction(reqCtx, ctx.Interaction.GuildID, id)
		if err != nil {
			logger.Error(fmt.Sprintf("Error en /infraction delete: %v", err), "CMD-Infraction")
			ctx.EditReply("❌ Error al eliminar la infracción.")
			return
		}
		if rows == 0 {
			ctx.EditReply(notFoundMessage(id))
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       "🗑 Infracción eliminada",
			Description: fmt.Sprintf("La infracción `#%d` fue eliminada del registro.", id),
			Color:       0xFF0000, // Red
			Footer:      embedFooter(ctx),
			Timestamp:   time.Now().Format(time.RFC3339),
		}
		ctx.EditReplyEmbed(embed)
	}()

	return nil
}
