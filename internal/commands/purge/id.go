// Package purge - /purge id command
package purge

import (
	"fmt"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createIDCommand creates the /purge id subcommand. Unlike /purge user
// it takes raw ids, so it also reaches users who already left.
func createIDCommand() *discord.Command {
	return discord.NewCommand(
		"id",
		"Elimina mensajes de usuarios por id (funciona con usuarios que ya no están)",
		"purge",
		idHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "ids",
			Description: "Ids de usuarios, separados por espacios o comas",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages).
		WithBotPermissions(discordgo.PermissionManageMessages)
}

// idHandler handles the /purge id command. Always scans the last 1000
// messages of the channel.
func idHandler(ctx *discord.CommandContext) error {
	ids := parseIDList(ctx.GetStringOption("ids"))
	if len(ids) == 0 {
		return ctx.ReplyEphemeral("❌ Debes especificar al menos un id de usuario válido.")
	}

	go func() {
		defer errors.RecoverMiddleware()()

		if err := ctx.Defer(); err != nil {
			logger.Error(fmt.Sprintf("Error difiriendo /purge id: %v", err), "CMD-Purge")
			return
		}

		deleted, err := purger(ctx).PurgeByAuthorIDs(ctx.Interaction.ChannelID, ids)
		if err != nil {
			logger.Error(fmt.Sprintf("Error en /purge id: %v", err), "CMD-Purge")
			ctx.EditReply(fmt.Sprintf("❌ Error al eliminar mensajes (%d eliminados): %v", deleted, err))
			return
		}

		replyPurged(ctx, deleted, fmt.Sprintf("Ids afectados: %s (escaneados los últimos 1000 mensajes).", formatIDList(ids)))
	}()

	return nil
}
