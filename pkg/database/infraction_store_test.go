package database

import (
	"testing"

	"github.com/PancyStudios/PancyModGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

func TestGuildScopedFilter(t *testing.T) {
	filter := guildScopedFilter("guild-1", 42)

	if filter["guildId"] != "guild-1" {
		t.Errorf("guildId = %v, want guild-1", filter["guildId"])
	}
	if filter["_id"] != int64(42) {
		t.Errorf("_id = %v, want 42", filter["_id"])
	}
}

func TestGuildTypeFilterWithoutTypes(t *testing.T) {
	filter := guildTypeFilter("guild-1", nil)

	if filter["guildId"] != "guild-1" {
		t.Errorf("guildId = %v, want guild-1", filter["guildId"])
	}
	if _, hasType := filter["type"]; hasType {
		t.Error("filter should not constrain type when no types are given")
	}
}

func TestGuildTypeFilterWithTypes(t *testing.T) {
	types := []models.InfractionType{models.InfractionNote, models.InfractionBan}
	filter := guildTypeFilter("guild-1", types)

	typeFilter, ok := filter["type"].(bson.M)
	if !ok {
		t.Fatalf("type filter = %T, want bson.M", filter["type"])
	}

	in, ok := typeFilter["$in"].([]models.InfractionType)
	if !ok {
		t.Fatalf("$in = %T, want []models.InfractionType", typeFilter["$in"])
	}
	if len(in) != 2 || in[0] != models.InfractionNote || in[1] != models.InfractionBan {
		t.Errorf("$in = %v, want [note ban]", in)
	}
}
