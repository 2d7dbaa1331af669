package moderation

import (
	"fmt"
	"sort"

	"github.com/PancyStudios/PancyModGo/pkg/models"
)

// TypeGroup is one section of a user's history: all infractions that
// share a type, in creation order.
type TypeGroup struct {
	Type        models.InfractionType
	Infractions []*models.Infraction
}

// UserHistory summarizes a user's infractions on a guild.
type UserHistory struct {
	Total      int
	MostRecent *models.Infraction
	Groups     []TypeGroup
}

// BuildUserHistory groups infraction rows by type. The rows are sorted
// here before bucketing, so the grouping does not depend on the store's
// ordering. Returns nil for an empty row set.
func BuildUserHistory(rows []*models.Infraction) *UserHistory {
	if len(rows) == 0 {
		return nil
	}

	sorted := make([]*models.Infraction, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Type != sorted[j].Type {
			return sorted[i].Type < sorted[j].Type
		}
		return sorted[i].CreatedOn.Before(sorted[j].CreatedOn)
	})

	history := &UserHistory{Total: len(sorted)}

	buckets := make(map[models.InfractionType]int)
	for _, inf := range sorted {
		if history.MostRecent == nil || inf.CreatedOn.After(history.MostRecent.CreatedOn) {
			history.MostRecent = inf
		}

		idx, seen := buckets[inf.Type]
		if !seen {
			idx = len(history.Groups)
			buckets[inf.Type] = idx
			history.Groups = append(history.Groups, TypeGroup{Type: inf.Type})
		}
		history.Groups[idx].Infractions = append(history.Groups[idx].Infractions, inf)
	}

	return history
}

// FormatListLine renders one infraction for the guild-wide list.
// userLabel is the already-resolved display of the target user.
func FormatListLine(inf *models.Infraction, userLabel string) string {
	return fmt.Sprintf("• [`%d`] %s sobre %s, creada el <t:%d>",
		inf.ID, inf.Type.Emoji(), userLabel, inf.CreatedOn.Unix())
}

// FormatHistoryLine renders one infraction inside a history section,
// where the type is already given by the section header.
func FormatHistoryLine(inf *models.Infraction) string {
	return fmt.Sprintf("• [`%d`] el <t:%d>", inf.ID, inf.CreatedOn.Unix())
}
