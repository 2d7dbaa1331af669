// Package purge - /purge user command
package purge

import (
	"fmt"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createUserCommand creates the /purge user subcommand
func createUserCommand() *discord.Command {
	return discord.NewCommand(
		"user",
		"Elimina mensajes de usuarios concretos",
		"purge",
		userHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario cuyos mensajes eliminar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario2",
			Description: "Otro usuario (opcional)",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario3",
			Description: "Otro usuario (opcional)",
			Required:    false,
		},
		amountOptionSpec("Cantidad de mensajes a revisar (por defecto 100)"),
	).WithUserPermissions(discordgo.PermissionManageMessages).
		WithBotPermissions(discordgo.PermissionManageMessages)
}

// userHandler handles the /purge user command
func userHandler(ctx *discord.CommandContext) error {
	var members []*discordgo.User
	for _, name := range []string{"usuario", "usuario2", "usuario3"} {
		if user := ctx.GetUserOption(name); user != nil {
			members = append(members, user)
		}
	}
	if len(members) == 0 {
		return ctx.ReplyEphemeral("❌ Debes especificar al menos un usuario.")
	}
	amount := amountOption(ctx)

	go func() {
		defer errors.RecoverMiddleware()()

		if err := ctx.Defer(); err != nil {
			logger.Error(fmt.Sprintf("Error difiriendo /purge user: %v", err), "CMD-Purge")
			return
		}

		deleted, err := purger(ctx).PurgeByMembers(ctx.Interaction.ChannelID, amount, members)
		if err != nil {
			logger.Error(fmt.Sprintf("Error en /purge user: %v", err), "CMD-Purge")
			ctx.EditReply(fmt.Sprintf("❌ Error al eliminar mensajes (%d eliminados): %v", deleted, err))
			return
		}

		replyPurged(ctx, deleted, fmt.Sprintf("Usuarios afectados: %s.", formatUserList(members)))
	}()

	return nil
}
