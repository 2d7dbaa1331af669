// Package mod - /mod kick command
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

// createKickCommand creates the /mod kick subcommand
func createKickCommand() *discord.Command {
	return discord.NewCommand(
		"kick",
		"Expulsa a un usuario del servidor",
		"mod",
		kickHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a expulsar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la expulsión",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionKickMembers).
		WithBotPermissions(discordgo.PermissionKickMembers).
		RequiresDatabase()
}

// kickHandler handles the /mod kick command
func kickHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}
	reason := ctx.GetStringOption("razon")

	go func() {
		defer errors.RecoverMiddleware()()

		if err := ctx.Defer(); err != nil {
			logger.Error(fmt.Sprintf("Error difiriendo /mod kick: %v", err), "CMD-Kick")
			return
		}

		actor, target, self, err := ranks(ctx, user.ID)
		if err != nil {
			ctx.EditReply("❌ No se pudo resolver al usuario en este servidor.")
			return
		}

		reqCtx, cancel := commandContext()
		defer cancel()

		res, err := service(ctx).Kick(reqCtx, moderation.ActionRequest{
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
			ctx.EditReply("❌ No puedo expulsar a ese usuario: su rol es igual o superior al tuyo o al mío.")
			return
		case stderrors.Is(err, moderation.ErrLedgerWrite):
			ctx.EditReply("⚠ El usuario fue expulsado, pero no se pudo registrar la infracción.")
			return
		case err != nil:
			logger.Error(fmt.Sprintf("Error en /mod kick: %v", err), "CMD-Kick")
			ctx.EditReply(fmt.Sprintf("❌ Error al expulsar: %v", err))
			return
		}

		embed := &discordgo.MessageEmbed{
			Title: "👢 Usuario expulsado",
			Description: fmt.Sprintf(
				"**%s** (`%s`) ha sido expulsado del servidor.\n\n> **Razón:** %s\n> **Infracción:** `#%d`",
				user.Username, user.ID, displayReason(reason), res.InfractionID,
			),
			Color:     0xFFA500, // Orange
			Footer:    embedFooter(ctx),
			Timestamp: time.Now().Format(time.RFC3339),
		}
		ctx.EditReplyEmbed(embed)
	}()

	return nil
}
