package moderation

import (
	"strings"
	"testing"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/models"
)

func infraction(id int64, typ models.InfractionType, created time.Time) *models.Infraction {
	return &models.Infraction{
		ID:        id,
		Type:      typ,
		GuildID:   "guild-1",
		UserID:    "42",
		CreatedOn: created,
	}
}

func TestBuildUserHistoryEmpty(t *testing.T) {
	if history := BuildUserHistory(nil); history != nil {
		t.Errorf("BuildUserHistory(nil) = %v, want nil", history)
	}
	if history := BuildUserHistory([]*models.Infraction{}); history != nil {
		t.Errorf("BuildUserHistory(empty) = %v, want nil", history)
	}
}

func TestBuildUserHistoryGroupsByType(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []*models.Infraction{
		infraction(1, models.InfractionNote, base),
		infraction(2, models.InfractionNote, base.Add(time.Hour)),
		infraction(3, models.InfractionWarning, base.Add(2*time.Hour)),
	}

	history := BuildUserHistory(rows)
	if history == nil {
		t.Fatal("BuildUserHistory returned nil for non-empty rows")
	}

	if history.Total != 3 {
		t.Errorf("Total = %d, want 3", history.Total)
	}
	if history.MostRecent == nil || history.MostRecent.ID != 3 {
		t.Errorf("MostRecent = %v, want infraction 3", history.MostRecent)
	}

	if len(history.Groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(history.Groups))
	}
	if history.Groups[0].Type != models.InfractionNote || len(history.Groups[0].Infractions) != 2 {
		t.Errorf("first group = %v with %d entries, want 2 notes",
			history.Groups[0].Type, len(history.Groups[0].Infractions))
	}
	if history.Groups[1].Type != models.InfractionWarning || len(history.Groups[1].Infractions) != 1 {
		t.Errorf("second group = %v with %d entries, want 1 warning",
			history.Groups[1].Type, len(history.Groups[1].Infractions))
	}
}

func TestBuildUserHistoryDoesNotRequireSortedInput(t *testing.T) {
	// Rows arrive interleaved; the bucketing pass must not rely on the
	// store having clustered the types already.
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []*models.Infraction{
		infraction(5, models.InfractionBan, base.Add(4*time.Hour)),
		infraction(1, models.InfractionNote, base),
		infraction(4, models.InfractionBan, base.Add(3*time.Hour)),
		infraction(2, models.InfractionNote, base.Add(time.Hour)),
	}

	history := BuildUserHistory(rows)
	if len(history.Groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(history.Groups))
	}
	for _, group := range history.Groups {
		for i := 1; i < len(group.Infractions); i++ {
			if group.Infractions[i].CreatedOn.Before(group.Infractions[i-1].CreatedOn) {
				t.Errorf("group %v entries out of creation order", group.Type)
			}
		}
	}
	if history.MostRecent.ID != 5 {
		t.Errorf("MostRecent.ID = %d, want 5", history.MostRecent.ID)
	}
}

func TestFormatListLine(t *testing.T) {
	inf := infraction(7, models.InfractionBan, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	line := FormatListLine(inf, "`Guy#1337` (`42`)")

	if !strings.Contains(line, "[`7`]") {
		t.Errorf("line %q should contain the id", line)
	}
	if !strings.Contains(line, "🔨") {
		t.Errorf("line %q should contain the ban glyph", line)
	}
	if !strings.Contains(line, "Guy#1337") {
		t.Errorf("line %q should contain the user label", line)
	}
}

func TestFormatHistoryLine(t *testing.T) {
	inf := infraction(3, models.InfractionNote, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	line := FormatHistoryLine(inf)

	if !strings.Contains(line, "[`3`]") {
		t.Errorf("line %q should contain the id", line)
	}
}
