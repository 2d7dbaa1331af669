// Package infractions provides ledger commands under /infraction
package infractions

import (
	"github.com/PancyStudios/PancyModGo/pkg/discord"
)

// RegisterInfractionCommands registers the /infraction command group
func RegisterInfractionCommands(client *discord.ExtendedClient) {
	detailCmd := createDetailCommand()
	editCmd := createEditCommand()
	deleteCmd := createDeleteCommand()
	listCmd := createListCommand()
	userCmd := createUserCommand()

	// Build the /infraction command group with all subcommands
	infractionGroup := client.CommandHandler.BuildCommandGroup(
		"infraction",
		"Consulta y gestión del registro de infracciones",
		detailCmd,
		editCmd,
		deleteCmd,
		listCmd,
		userCmd,
	)

	// Register the command group
	client.CommandHandler.AddGlobalCommand(infractionGroup)
}
