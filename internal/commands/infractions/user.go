// Package infractions - /infraction user command
package infractions

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/database"
	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createUserCommand creates the /infraction user subcommand
func createUserCommand() *discord.Command {
	return discord.NewCommand(
		"user",
		"Historial de infracciones de un usuario",
		"infractions",
		userHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages).
		RequiresDatabase()
}

// userHandler handles the /infraction user command. The history is
// shown in one section per type, in creation order within each.
func userHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	go func() {
		defer errors.RecoverMiddleware()()

		if err := ctx.Defer(); err != nil {
			logger.Error(fmt.Sprintf("Error difiriendo /infraction user: %v", err), "CMD-Infraction")
			return
		}

		reqCtx, cancel := commandContext()
		defer cancel()

		rows, err := database.GlobalInfractionStore.FindByUser(reqCtx, ctx.Interaction.GuildID, user.ID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error en /infraction user: %v", err), "CMD-Infraction")
			ctx.EditReply("❌ Error al consultar la base de datos.")
			return
		}

		title := fmt.Sprintf("🔖 Historial de %s (%s)", user.Username, user.ID)
		history := moderation.BuildUserHistory(rows)

		if history == nil {
			embed := &discordgo.MessageEmbed{
				Title:       title,
				Description: "Este usuario no tiene infracciones en este servidor.",
				Color:       0x00FF00, // Green
				Footer:      embedFooter(ctx),
				Timestamp:   time.Now().Format(time.RFC3339),
			}
			ctx.EditReplyEmbed(embed)
			return
		}

		embed := &discordgo.MessageEmbed{
			Title: title,
			Description: fmt.Sprintf(
				"> 💫 - **Total de infracciones:** %d\n> 🕒 - **Más reciente:** `#%d` el <t:%d>",
				history.Total, history.MostRecent.ID, history.MostRecent.CreatedOn.Unix(),
			),
			Color:     0xFFA500, // Orange
			Footer:    embedFooter(ctx),
			Timestamp: time.Now().Format(time.RFC3339),
		}

		for _, group := range history.Groups {
			var lines []string
			for i, inf := range group.Infractions {
				if i >= maxListLines {
					lines = append(lines, fmt.Sprintf("… y %d más", len(group.Infractions)-maxListLines))
					break
				}
				lines = append(lines, moderation.FormatHistoryLine(inf))
			}

			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   fmt.Sprintf("%s %s (%d)", group.Type.Emoji(), group.Type.Label(), len(group.Infractions)),
				Value:  strings.Join(lines, "\n"),
				Inline: false,
			})
		}

		ctx.EditReplyEmbed(embed)
	}()

	return nil
}
