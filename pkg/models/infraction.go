// Package models contains the persistent document types stored in MongoDB.
package models

import (
	"fmt"
	"time"
)

// InfractionType is the closed set of moderation action types.
type InfractionType string

const (
	InfractionNote    InfractionType = "note"
	InfractionWarning InfractionType = "warning"
	InfractionMute    InfractionType = "mute"
	InfractionKick    InfractionType = "kick"
	InfractionBan     InfractionType = "ban"
)

// AllInfractionTypes lists every valid type, in display order.
var AllInfractionTypes = []InfractionType{
	InfractionNote,
	InfractionWarning,
	InfractionMute,
	InfractionKick,
	InfractionBan,
}

// infractionTypeEmoji is the total glyph mapping for the closed type set.
var infractionTypeEmoji = map[InfractionType]string{
	InfractionNote:    "📔",
	InfractionWarning: "⚠",
	InfractionMute:    "🔇",
	InfractionKick:    "👢",
	InfractionBan:     "🔨",
}

// infractionTypeLabel is the total Spanish label mapping for embeds.
var infractionTypeLabel = map[InfractionType]string{
	InfractionNote:    "Nota",
	InfractionWarning: "Advertencia",
	InfractionMute:    "Silencio",
	InfractionKick:    "Expulsión",
	InfractionBan:     "Baneo",
}

// ParseInfractionType converts user input into an InfractionType.
func ParseInfractionType(s string) (InfractionType, error) {
	t := InfractionType(s)
	if _, ok := infractionTypeEmoji[t]; !ok {
		return "", fmt.Errorf("tipo de infracción desconocido: %q", s)
	}
	return t, nil
}

// Valid reports whether the type belongs to the closed set.
func (t InfractionType) Valid() bool {
	_, ok := infractionTypeEmoji[t]
	return ok
}

// Emoji returns the glyph used when rendering this type.
func (t InfractionType) Emoji() string {
	if e, ok := infractionTypeEmoji[t]; ok {
		return e
	}
	return "❔"
}

// Label returns the human-readable Spanish label for this type.
func (t InfractionType) Label() string {
	if l, ok := infractionTypeLabel[t]; ok {
		return l
	}
	return string(t)
}

// Infraction is a single entry of the moderation ledger.
// The _id is a bot-assigned monotonic integer, not a Mongo ObjectID,
// so that moderators can reference infractions by short numbers.
type Infraction struct {
	ID          int64          `bson:"_id" json:"id"`
	Type        InfractionType `bson:"type" json:"type"`
	GuildID     string         `bson:"guildId" json:"guildId"`
	UserID      string         `bson:"userId" json:"userId"`
	ModeratorID string         `bson:"moderatorId" json:"moderatorId"`
	Reason      string         `bson:"reason" json:"reason"`
	CreatedOn   time.Time      `bson:"createdOn" json:"createdOn"`
	EditedOn    *time.Time     `bson:"editedOn,omitempty" json:"editedOn,omitempty"`
}
