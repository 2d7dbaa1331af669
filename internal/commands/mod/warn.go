// Package mod - /mod warn command
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Advierte a un usuario",
		"mod",
		warnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a advertir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la advertencia",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		RequiresDatabase()
}

// warnHandler handles the /mod warn command. A warning only writes the
// ledger row; it never touches the member.
func warnHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}
	reason := ctx.GetStringOption("razon")
	if reason == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar una razón.")
	}

	go func() {
		defer errors.RecoverMiddleware()()

		if err := ctx.Defer(); err != nil {
			logger.Error(fmt.Sprintf("Error difiriendo /mod warn: %v", err), "CMD-Warn")
			return
		}

		reqCtx, cancel := commandContext()
		defer cancel()

		id, err := service(ctx).Warn(reqCtx, ctx.Interaction.GuildID, user.ID, ctx.User().ID, reason)
		if err != nil {
			logger.Error(fmt.Sprintf("Error en /mod warn: %v", err), "CMD-Warn")
			ctx.EditReply("❌ No se pudo registrar la advertencia.")
			return
		}

		embed := &discordgo.MessageEmbed{
			Title: "⚠ Usuario advertido",
			Description: fmt.Sprintf(
				"**%s** (`%s`) ha sido advertido.\n\n> **Razón:** %s\n> **Moderador:** %s\n> **Infracción:** `#%d`",
				user.Username, user.ID, reason, ctx.UserTag(), id,
			),
			Color:     0xFFFF00, // Yellow
			Footer:    embedFooter(ctx),
			Timestamp: time.Now().Format(time.RFC3339),
		}
		ctx.EditReplyEmbed(embed)
	}()

	return nil
}
