// Package purge - /purge all command
package purge

import (
	"fmt"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createAllCommand creates the /purge all subcommand
func createAllCommand() *discord.Command {
	return discord.NewCommand(
		"all",
		"Elimina los mensajes más recientes del canal",
		"purge",
		allHandler,
	).WithOptions(
		amountOptionSpec("Cantidad de mensajes a eliminar (por defecto 100)"),
	).WithUserPermissions(discordgo.PermissionManageMessages).
		WithBotPermissions(discordgo.PermissionManageMessages)
}

// allHandler handles the /purge all command
func allHandler(ctx *discord.CommandContext) error {
	amount := amountOption(ctx)

	go func() {
		defer errors.RecoverMiddleware()()

		if err := ctx.Defer(); err != nil {
			logger.Error(fmt.Sprintf("Error difiriendo /purge all: %v", err), "CMD-Purge")
			return
		}

		deleted, err := purger(ctx).Purge(ctx.Interaction.ChannelID, amount)
		if err != nil {
			logger.Error(fmt.Sprintf("Error en /purge all: %v", err), "CMD-Purge")
			ctx.EditReply(fmt.Sprintf("❌ Error al eliminar mensajes (%d eliminados): %v", deleted, err))
			return
		}

		replyPurged(ctx, deleted, "")
	}()

	return nil
}
