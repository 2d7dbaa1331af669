// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"context"
	"fmt"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/config"
	"github.com/PancyStudios/PancyModGo/pkg/database"
	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/PancyStudios/PancyModGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

const commandTimeout = 10 * time.Second

// service builds the action dispatcher for one invocation.
func service(ctx *discord.CommandContext) *moderation.Service {
	return moderation.NewService(
		database.GlobalInfractionStore,
		ctx.Session,
		mqtt.NewAuditPublisher(mqtt.Get(), config.Get().Environment),
	)
}

// commandContext returns the timeout-bounded context for store calls.
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

// guildMember resolves a member from the state cache, falling back to
// the REST API for members the cache has not seen.
func guildMember(ctx *discord.CommandContext, userID string) (*discordgo.Member, error) {
	member, err := ctx.Session.State.Member(ctx.Interaction.GuildID, userID)
	if err == nil && member != nil {
		return member, nil
	}
	return ctx.Session.GuildMember(ctx.Interaction.GuildID, userID)
}

// ranks resolves the three role ranks the hierarchy gate compares:
// the invoking moderator, the target and the bot itself.
func ranks(ctx *discord.CommandContext, targetID string) (actor, target, self int, err error) {
	guild := ctx.Guild()
	if guild == nil {
		guild, err = ctx.Session.Guild(ctx.Interaction.GuildID)
		if err != nil {
			return 0, 0, 0, err
		}
	}

	targetMember, err := guildMember(ctx, targetID)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("el usuario no es miembro de este servidor: %w", err)
	}

	selfMember, err := guildMember(ctx, ctx.Session.State.User.ID)
	if err != nil {
		return 0, 0, 0, err
	}

	actor = moderation.TopRolePosition(guild, ctx.Member())
	target = moderation.TopRolePosition(guild, targetMember)
	self = moderation.TopRolePosition(guild, selfMember)
	return actor, target, self, nil
}

// displayReason renders a possibly-empty reason for embeds.
func displayReason(reason string) string {
	if reason == "" {
		return "Sin razón especificada"
	}
	return reason
}

// embedFooter is the shared footer of moderation embeds.
func embedFooter(ctx *discord.CommandContext) *discordgo.MessageEmbedFooter {
	footer := &discordgo.MessageEmbedFooter{
		Text: "💫 - Developed by PancyStudios",
	}
	if guild := ctx.Guild(); guild != nil {
		footer.IconURL = guild.IconURL("")
	}
	return footer
}
