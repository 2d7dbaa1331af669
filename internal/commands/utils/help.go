package utils

import (
	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/errors"
)

// createHelpCommand creates the /utils help subcommand
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Muestra información de ayuda",
		"utils",
		helpHandler,
	)
}

// helpHandler handles the /utils help command
func helpHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		ctx.Reply(
			"📖 **Ayuda de PancyMod Go**\n\n" +
				"**Comandos disponibles:**\n" +
				"• `/utils ping` - Comprueba la latencia\n" +
				"• `/utils status` - Estado del bot\n" +
				"• `/utils stats` - Estadísticas del bot\n" +
				"• `/mod kick <usuario> [razón]` - Expulsa a un usuario\n" +
				"• `/mod ban <usuario> [razón]` - Banea a un usuario\n" +
				"• `/mod warn <usuario> <razón>` - Advierte a un usuario\n" +
				"• `/mod note <usuario> <nota>` - Nota interna sobre un usuario\n" +
				"• `/purge all [cantidad]` - Limpia los mensajes recientes\n" +
				"• `/purge user <usuario> [cantidad]` - Limpia mensajes de usuarios\n" +
				"• `/purge id <ids>` - Limpia mensajes por id de usuario\n" +
				"• `/purge containing <texto> [cantidad]` - Limpia mensajes por contenido\n" +
				"• `/infraction detail <id>` - Muestra una infracción\n" +
				"• `/infraction list [tipos]` - Lista las infracciones del servidor\n" +
				"• `/infraction user <usuario>` - Historial de un usuario\n" +
				"• `/infraction edit <id> <razón>` - Edita una infracción\n" +
				"• `/infraction delete <id>` - Elimina una infracción",
		)
	}()
	return nil
}
