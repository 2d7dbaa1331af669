// Package purge - /purge containing command
package purge

import (
	"fmt"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createContainingCommand creates the /purge containing subcommand
func createContainingCommand() *discord.Command {
	return discord.NewCommand(
		"containing",
		"Elimina mensajes que contengan un texto",
		"purge",
		containingHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "texto",
			Description: "Texto a buscar (literal, distingue mayúsculas)",
			Required:    true,
		},
		amountOptionSpec("Cantidad de mensajes a revisar (por defecto 100)"),
	).WithUserPermissions(discordgo.PermissionManageMessages).
		WithBotPermissions(discordgo.PermissionManageMessages)
}

// containingHandler handles the /purge containing command
func containingHandler(ctx *discord.CommandContext) error {
	contents := ctx.GetStringOption("texto")
	if contents == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar el texto a buscar.")
	}
	amount := amountOption(ctx)

	go func() {
		defer errors.RecoverMiddleware()()

		if err := ctx.Defer(); err != nil {
			logger.Error(fmt.Sprintf("Error difiriendo /purge containing: %v", err), "CMD-Purge")
			return
		}

		deleted, err := purger(ctx).PurgeContaining(ctx.Interaction.ChannelID, amount, contents)
		if err != nil {
			logger.Error(fmt.Sprintf("Error en /purge containing: %v", err), "CMD-Purge")
			ctx.EditReply(fmt.Sprintf("❌ Error al eliminar mensajes (%d eliminados): %v", deleted, err))
			return
		}

		replyPurged(ctx, deleted, fmt.Sprintf("Filtro: mensajes que contienen `%s`.", contents))
	}()

	return nil
}
