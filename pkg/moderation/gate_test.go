package moderation

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestCanActOn(t *testing.T) {
	tests := []struct {
		name                   string
		actor, target, selfPos int
		want                   bool
	}{
		{"actor and bot above target", 5, 3, 4, true},
		{"actor equal to target", 3, 3, 4, false},
		{"actor below target", 2, 3, 4, false},
		{"bot equal to target", 5, 3, 3, false},
		{"bot below target", 5, 3, 2, false},
		{"everyone at zero", 0, 0, 0, false},
		{"target at zero", 1, 0, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanActOn(tt.actor, tt.target, tt.selfPos); got != tt.want {
				t.Errorf("CanActOn(%d, %d, %d) = %v, want %v",
					tt.actor, tt.target, tt.selfPos, got, tt.want)
			}
		})
	}
}

func TestTopRolePosition(t *testing.T) {
	guild := &discordgo.Guild{
		Roles: []*discordgo.Role{
			{ID: "everyone", Position: 0},
			{ID: "mod", Position: 5},
			{ID: "admin", Position: 9},
			{ID: "color", Position: 2},
		},
	}

	tests := []struct {
		name   string
		member *discordgo.Member
		want   int
	}{
		{"no roles", &discordgo.Member{}, 0},
		{"single role", &discordgo.Member{Roles: []string{"mod"}}, 5},
		{"highest of several", &discordgo.Member{Roles: []string{"color", "admin", "mod"}}, 9},
		{"unknown role id ignored", &discordgo.Member{Roles: []string{"deleted-role"}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TopRolePosition(guild, tt.member); got != tt.want {
				t.Errorf("TopRolePosition() = %d, want %d", got, tt.want)
			}
		})
	}

	if got := TopRolePosition(nil, &discordgo.Member{}); got != 0 {
		t.Errorf("TopRolePosition(nil guild) = %d, want 0", got)
	}
	if got := TopRolePosition(guild, nil); got != 0 {
		t.Errorf("TopRolePosition(nil member) = %d, want 0", got)
	}
}
