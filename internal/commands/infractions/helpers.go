// Package infractions provides ledger commands under /infraction
package infractions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/config"
	"github.com/PancyStudios/PancyModGo/pkg/database"
	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/models"
	"github.com/PancyStudios/PancyModGo/pkg/moderation"
	"github.com/PancyStudios/PancyModGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

const commandTimeout = 10 * time.Second

// maxListLines caps embed descriptions well under Discord's 4096 limit.
const maxListLines = 30

// service builds the dispatcher for edit/delete. The guild actions are
// never used by this package, so the session can double for them.
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

// idOptionSpec is the shared required "id" option.
func idOptionSpec() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "id",
		Description: "Id de la infracción",
		Required:    true,
		MinValue:    &minID,
	}
}

var minID = float64(1)

// parseTypeList splits a comma/space separated list of type names into
// a deduplicated type set. Returns nil for an empty input.
func parseTypeList(raw string) ([]models.InfractionType, error) {
	var types []models.InfractionType
	seen := make(map[models.InfractionType]bool)

	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' '
	})
	for _, field := range fields {
		t, err := models.ParseInfractionType(field)
		if err != nil {
			return nil, err
		}
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	return types, nil
}

// typeNames lists the valid type names for option descriptions and
// error replies.
func typeNames() string {
	names := make([]string, 0, len(models.AllInfractionTypes))
	for _, t := range models.AllInfractionTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// embedFooter is the shared footer of infraction embeds.
func embedFooter(ctx *discord.CommandContext) *discordgo.MessageEmbedFooter {
	footer := &discordgo.MessageEmbedFooter{
		Text: "💫 - Developed by PancyStudios",
	}
	if guild := ctx.Guild(); guild != nil {
		footer.IconURL = guild.IconURL("")
	}
	return footer
}

// notFoundMessage is the shared miss response. An id belonging to
// another guild answers exactly like a nonexistent one.
func notFoundMessage(id int64) string {
	return fmt.Sprintf("❌ No existe la infracción `#%d` en este servidor.", id)
}
