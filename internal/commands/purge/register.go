// Package purge provides bulk message deletion commands under /purge
package purge

import (
	"github.com/PancyStudios/PancyModGo/pkg/discord"
)

// RegisterPurgeCommands registers all purge commands as /purge subcommands
func RegisterPurgeCommands(client *discord.ExtendedClient) {
	allCmd := createAllCommand()
	idCmd := createIDCommand()
	containingCmd := createContainingCommand()
	userCmd := createUserCommand()

	// Build the /purge command group with all subcommands
	purgeGroup := client.CommandHandler.BuildCommandGroup(
		"purge",
		"Comandos de limpieza de mensajes",
		allCmd,
		idCmd,
		containingCmd,
		userCmd,
	)

	// Register the command group
	client.CommandHandler.AddGlobalCommand(purgeGroup)
}
