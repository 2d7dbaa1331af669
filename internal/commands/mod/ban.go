// Package mod - /mod ban command
package mod

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createBanCommand creates the /mod ban subcommand
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Banea a un usuario del servidor",
		"mod",
		banHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a banear",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del baneo",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers).
		RequiresDatabase()
}

// banHandler handles the /mod ban command. The ban also removes the
// target's messages of the last 7 days.
func banHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}
	reason := ctx.GetStringOption("razon")

	go func() {
		defer errors.RecoverMiddleware()()

		if err := ctx.Defer(); err != nil {
			logger.Error(fmt.Sprintf("Error difiriendo /mod ban: %v", err), "CMD-Ban")
			return
		}

		actor, target, self, err := ranks(ctx, user.ID)
		if err != nil {
			ctx.EditReply("❌ No se pudo resolver al usuario en este servidor.")
			return
		}

		reqCtx, cancel := commandContext()
		defer cancel()

		res, err := service(ctx).Ban(reqCtx, moderation.ActionRequest{
			GuildID:      ctx.Interaction.GuildID,
			TargetID:     user.ID,
			ModeratorID:  ctx.User().ID,
			ModeratorTag: ctx.UserTag(),
			Reason:       reason,
			ActorRank:    actor,
			TargetRank:   target,
			SelfRank:     self,
		})

		switch {
		case stderrors.Is(err, moderation.ErrHierarchy):
			ctx.EditReply("❌ No puedo banear a ese usuario: su rol es igual o superior al tuyo o al mío.")
			return
		case stderrors.Is(err, moderation.ErrLedgerWrite):
			ctx.EditReply("⚠ El usuario fue baneado, pero no se pudo registrar la infracción.")
			return
		case err != nil:
			logger.Error(fmt.Sprintf("Error en /mod ban: %v", err), "CMD-Ban")
			ctx.EditReply(fmt.Sprintf("❌ Error al banear: %v", err))
			return
		}

		embed := &discordgo.MessageEmbed{
			Title: "🔨 Usuario baneado",
			Description: fmt.Sprintf(
				"**%s** (`%s`) ha sido baneado del servidor. Sus mensajes de los últimos 7 días fueron eliminados.\n\n> **Razón:** %s\n> **Infracción:** `#%d`",
				user.Username, user.ID, displayReason(reason), res.InfractionID,
			),
			Color:     0xFF0000, // Red
			Footer:    embedFooter(ctx),
			Timestamp: time.Now().Format(time.RFC3339),
		}
		ctx.EditReplyEmbed(embed)
	}()

	return nil
}
