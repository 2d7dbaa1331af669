// Package infractions - /infraction detail command
package infractions

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/database"
	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createDetailCommand creates the /infraction detail subcommand
func createDetailCommand() *discord.Command {
	return discord.NewCommand(
		"detail",
		"Muestra una infracción por id",
		"infractions",
		detailHandler,
	).WithOptions(
		idOptionSpec(),
	).WithUserPermissions(discordgo.PermissionManageMessages).
		RequiresDatabase()
}

// detailHandler handles the /infraction detail command
func detailHandler(ctx *discord.CommandContext) error {
	id := ctx.GetIntOption("id")

	go func() {
		defer errors.RecoverMiddleware()()

		if err := ctx.Defer(); err != nil {
			logger.Error(fmt.Sprintf("Error difiriendo /infraction detail: %v", err), "CMD-Infraction")
			return
		}

		reqCtx, cancel := commandContext()
		defer cancel()

		inf, err := database.GlobalInfractionStore.FindByID(reqCtx, ctx.Interaction.GuildID, id)
		if err != nil {
			logger.Error(fmt.Sprintf("Error en /infraction detail: %v", err), "CMD-Infraction")
			ctx.EditReply("❌ Error al consultar la base de datos.")
			return
		}
		if inf == nil {
			ctx.EditReply(notFoundMessage(id))
			return
		}

		reason := inf.Reason
		if reason == "" {
			reason = "*Sin razón registrada*"
		}

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("%s Infracción `#%d`: %s", inf.Type.Emoji(), inf.ID, inf.Type.Label()),
			Color: 0x3498DB, // Blue
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "Usuario",
					Value:  ctx.ResolveUserLabel(inf.UserID),
					Inline: true,
				},
				{
					Name:   "Moderador",
					Value:  ctx.ResolveUserLabel(inf.ModeratorID),
					Inline: true,
				},
				{
					Name:   "Razón",
					Value:  reason,
					Inline: false,
				},
				{
					Name:   "Creada",
					Value:  fmt.Sprintf("<t:%d>", inf.CreatedOn.Unix()),
					Inline: true,
				},
			},
			Footer:    embedFooter(ctx),
			Timestamp: time.Now().Format(time.RFC3339),
		}

		if inf.EditedOn != nil {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   "Editada",
				Value:  fmt.Sprintf("<t:%d>", inf.EditedOn.Unix()),
				Inline: true,
			})
		}

		ctx.EditReplyEmbed(embed)
	}()

	return nil
}
