// Package discord - pre-dispatch permission guard. Every command's
// declared requirements are evaluated here, before its handler runs,
// so no command body needs its own permission boilerplate.
package discord

import (
	"github.com/PancyStudios/PancyModGo/pkg/database"
	"github.com/bwmarrin/discordgo"
)

// GuardDecision is the outcome of the pre-dispatch checks.
type GuardDecision struct {
	Allowed bool
	Reason  string
}

func allow() GuardDecision {
	return GuardDecision{Allowed: true}
}

func deny(reason string) GuardDecision {
	return GuardDecision{Allowed: false, Reason: reason}
}

// HasPermissionBits reports whether have covers every bit of want.
// Administrator implies everything, matching Discord's own model.
func HasPermissionBits(have, want int64) bool {
	if have&discordgo.PermissionAdministrator != 0 {
		return true
	}
	return have&want == want
}

// CheckPreconditions evaluates a command's declared requirements
// against the invocation context and returns an allow/deny decision
// with a user-facing reason.
func (c *ExtendedClient) CheckPreconditions(ctx *CommandContext, cmd *Command) GuardDecision {
	// Permission-gated commands only make sense inside a guild.
	if (cmd.UserPermissions != 0 || cmd.BotPermissions != 0) && ctx.Interaction.GuildID == "" {
		return deny("❌ Este comando solo puede usarse dentro de un servidor.")
	}

	if cmd.UserPermissions != 0 {
		member := ctx.Member()
		if member == nil || !HasPermissionBits(member.Permissions, cmd.UserPermissions) {
			return deny("❌ No tienes los permisos necesarios para usar este comando.")
		}
	}

	if cmd.BotPermissions != 0 {
		perms, err := ctx.Session.UserChannelPermissions(
			ctx.Session.State.User.ID,
			ctx.Interaction.ChannelID,
		)
		if err != nil {
			perms = 0
		}
		if !HasPermissionBits(perms, cmd.BotPermissions) {
			return deny("❌ El bot no tiene los permisos necesarios para ejecutar esta acción.")
		}
	}

	if cmd.RequiresDB {
		db := database.Get()
		if db == nil || !db.Connected() {
			return deny("❌ La base de datos no está disponible en este momento.")
		}
	}

	return allow()
}
