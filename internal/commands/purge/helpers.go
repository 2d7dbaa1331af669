// Package purge provides bulk message deletion commands under /purge
package purge

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// snowflakePattern extracts ids from a free-form id list, so both
// "1 2 3" and "1, 2, 3" work.
var snowflakePattern = regexp.MustCompile(`\d{15,21}`)

// parseIDList extracts every snowflake from the given text.
func parseIDList(raw string) []string {
	return snowflakePattern.FindAllString(raw, -1)
}

// maxEchoedIDs caps how many ids the summary lists before truncating.
const maxEchoedIDs = 15

// formatIDList renders the targeted ids for the deletion summary.
func formatIDList(ids []string) string {
	shown := ids
	var extra int
	if len(shown) > maxEchoedIDs {
		extra = len(shown) - maxEchoedIDs
		shown = shown[:maxEchoedIDs]
	}

	quoted := make([]string, 0, len(shown))
	for _, id := range shown {
		quoted = append(quoted, "`"+id+"`")
	}
	out := strings.Join(quoted, ", ")
	if extra > 0 {
		out += fmt.Sprintf(" y %d más", extra)
	}
	return out
}

// formatUserList renders the targeted users for the deletion summary.
func formatUserList(users []*discordgo.User) string {
	labels := make([]string, 0, len(users))
	for _, user := range users {
		labels = append(labels, fmt.Sprintf("**%s** (`%s`)", user.Username, user.ID))
	}
	return strings.Join(labels, ", ")
}

// purger builds the purge engine over the invoking session.
func purger(ctx *discord.CommandContext) *moderation.Purger {
	return moderation.NewPurger(ctx.Session)
}

// amountOption reads the optional "cantidad" option, leaving 0 for the
// engine default when absent.
func amountOption(ctx *discord.CommandContext) int {
	return int(ctx.GetIntOption("cantidad"))
}

// replyPurged edits the deferred response with the deletion summary.
func replyPurged(ctx *discord.CommandContext, deleted int, detail string) {
	description := fmt.Sprintf("Se eliminaron **%d** mensajes.", deleted)
	if detail != "" {
		description += "\n\n> " + detail
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🧹 Limpieza completada",
		Description: description,
		Color:       0x00FF00, // Green
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	ctx.EditReplyEmbed(embed)
}

// amountOptionSpec is the shared optional "cantidad" option.
func amountOptionSpec(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "cantidad",
		Description: description,
		Required:    false,
		MinValue:    &minAmount,
		MaxValue:    1000,
	}
}

var minAmount = float64(1)
