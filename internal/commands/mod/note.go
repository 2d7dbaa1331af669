// Package mod - /mod note command
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createNoteCommand creates the /mod note subcommand
func createNoteCommand() *discord.Command {
	return discord.NewCommand(
		"note",
		"Añade una nota interna sobre un usuario",
		"mod",
		noteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario sobre el que anotar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "nota",
			Description: "Contenido de la nota",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		RequiresDatabase()
}

// noteHandler handles the /mod note command. Notes are staff-only
// annotations; the target is never notified.
func noteHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}
	text := ctx.GetStringOption("nota")
	if text == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar el contenido de la nota.")
	}

	go func() {
		defer errors.RecoverMiddleware()()

		if err := ctx.Defer(); err != nil {
			logger.Error(fmt.Sprintf("Error difiriendo /mod note: %v", err), "CMD-Note")
			return
		}

		reqCtx, cancel := commandContext()
		defer cancel()

		id, err := service(ctx).Note(reqCtx, ctx.Interaction.GuildID, user.ID, ctx.User().ID, text)
		if err != nil {
			logger.Error(fmt.Sprintf("Error en /mod note: %v", err), "CMD-Note")
			ctx.EditReply("❌ No se pudo guardar la nota.")
			return
		}

		embed := &discordgo.MessageEmbed{
			Title: "📔 Nota guardada",
			Description: fmt.Sprintf(
				"Nota sobre **%s** (`%s`) registrada.\n\n> **Nota:** %s\n> **Infracción:** `#%d`",
				user.Username, user.ID, text, id,
			),
			Color:     0x3498DB, // Blue
			Footer:    embedFooter(ctx),
			Timestamp: time.Now().Format(time.RFC3339),
		}
		ctx.EditReplyEmbed(embed)
	}()

	return nil
}
