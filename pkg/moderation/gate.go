// Package moderation implements the infraction ledger logic: the
// hierarchy gate, the action dispatcher, the purge filter engine and
// the history presentation helpers. Commands under internal/commands
// are thin wrappers around this package.
package moderation

import (
	"github.com/bwmarrin/discordgo"
)

// CanActOn is the hierarchy-safety check for kick/ban. The action is
// allowed only when both the invoking moderator and the bot itself hold
// a strictly higher top role than the target. Equal rank is a denial.
// The coarse permission bits are checked earlier, at command dispatch.
func CanActOn(actorRank, targetRank, selfRank int) bool {
	return actorRank > targetRank && selfRank > targetRank
}

// TopRolePosition returns the highest role position a member holds on
// the guild. Members with only the @everyone role rank at 0.
func TopRolePosition(guild *discordgo.Guild, member *discordgo.Member) int {
	if guild == nil || member == nil {
		return 0
	}

	positions := make(map[string]int, len(guild.Roles))
	for _, role := range guild.Roles {
		positions[role.ID] = role.Position
	}

	top := 0
	for _, roleID := range member.Roles {
		if pos, ok := positions[roleID]; ok && pos > top {
			top = pos
		}
	}
	return top
}
