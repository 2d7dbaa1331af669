// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (mod, purge, infractions, utils, dev)
package commands

import (
	"github.com/PancyStudios/PancyModGo/internal/commands/dev"
	"github.com/PancyStudios/PancyModGo/internal/commands/infractions"
	"github.com/PancyStudios/PancyModGo/internal/commands/mod"
	"github.com/PancyStudios/PancyModGo/internal/commands/purge"
	"github.com/PancyStudios/PancyModGo/internal/commands/utils"
	"github.com/PancyStudios/PancyModGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Utility commands (/utils ping, /utils status, /utils help, /utils stats)
	utils.RegisterUtilsCommands(client)

	// Moderation actions (/mod kick, /mod ban, /mod warn, /mod note)
	mod.RegisterModCommands(client)

	// Message cleanup (/purge all, /purge id, /purge containing, /purge user)
	purge.RegisterPurgeCommands(client)

	// Ledger queries and management (/infraction detail, list, user, edit, delete)
	infractions.RegisterInfractionCommands(client)

	// Dev-guild-only commands (/dev blacklist add, /dev blacklist remove)
	dev.Register(client)
}
