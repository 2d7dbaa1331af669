package moderation

import (
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	// DefaultPurgeLimit is scanned when the caller gives no amount.
	DefaultPurgeLimit = 100

	// AuthorScanLimit is the fixed ceiling for purges by author id;
	// useful for users who already left and can't be mentioned.
	AuthorScanLimit = 1000

	fetchPageSize   = 100
	bulkDeleteChunk = 100
)

// ErrNoTargets is returned when a targeted purge receives an empty
// target set. It is a usage error: no message is scanned.
var ErrNoTargets = errors.New("debes especificar al menos un objetivo")

// ChannelHistory is the subset of the Discord session the purge engine
// needs. *discordgo.Session satisfies it.
type ChannelHistory interface {
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	ChannelMessagesBulkDelete(channelID string, messages []string, options ...discordgo.RequestOption) error
}

// MessageFilter selects which scanned messages are deleted.
type MessageFilter func(*discordgo.Message) bool

// Purger bulk-deletes channel messages matching a filter, scanning
// newest-first up to a caller-supplied ceiling. Deletion is best
// effort: Discord silently skips messages older than its bulk-delete
// age limit and this engine does not compensate.
type Purger struct {
	session ChannelHistory
}

// NewPurger creates a purge engine over the given session.
func NewPurger(session ChannelHistory) *Purger {
	return &Purger{session: session}
}

// Purge deletes the first limit messages unconditionally.
func (p *Purger) Purge(channelID string, limit int) (int, error) {
	return p.run(channelID, limit, nil)
}

// PurgeByAuthorIDs deletes messages whose author id is in the given
// set, scanning at most AuthorScanLimit messages.
func (p *Purger) PurgeByAuthorIDs(channelID string, authorIDs []string) (int, error) {
	if len(authorIDs) == 0 {
		return 0, ErrNoTargets
	}

	targets := make(map[string]bool, len(authorIDs))
	for _, id := range authorIDs {
		targets[id] = true
	}

	return p.run(channelID, AuthorScanLimit, func(m *discordgo.Message) bool {
		return m.Author != nil && targets[m.Author.ID]
	})
}

// PurgeContaining deletes, among the first amount messages, those whose
// content contains the given substring. Literal, case-sensitive match.
func (p *Purger) PurgeContaining(channelID string, amount int, contents string) (int, error) {
	return p.run(channelID, amount, func(m *discordgo.Message) bool {
		return strings.Contains(m.Content, contents)
	})
}

// PurgeByMembers deletes, among the first amount messages, those
// authored by any of the given resolved users.
func (p *Purger) PurgeByMembers(channelID string, amount int, members []*discordgo.User) (int, error) {
	if len(members) == 0 {
		return 0, ErrNoTargets
	}

	ids := make([]string, 0, len(members))
	for _, member := range members {
		if member != nil {
			ids = append(ids, member.ID)
		}
	}
	if len(ids) == 0 {
		return 0, ErrNoTargets
	}

	targets := make(map[string]bool, len(ids))
	for _, id := range ids {
		targets[id] = true
	}

	return p.run(channelID, amount, func(m *discordgo.Message) bool {
		return m.Author != nil && targets[m.Author.ID]
	})
}

// run scans at most limit messages newest-first, collects the ids
// matching the filter (nil matches everything) and bulk-deletes them.
// Returns the count of messages actually removed.
func (p *Purger) run(channelID string, limit int, match MessageFilter) (int, error) {
	if limit <= 0 {
		limit = DefaultPurgeLimit
	}

	var matched []string
	scanned := 0
	beforeID := ""

	for scanned < limit {
		page := fetchPageSize
		if remaining := limit - scanned; remaining < page {
			page = remaining
		}

		messages, err := p.session.ChannelMessages(channelID, page, beforeID, "", "")
		if err != nil {
			return 0, err
		}
		if len(messages) == 0 {
			break
		}

		for _, m := range messages {
			scanned++
			if match == nil || match(m) {
				matched = append(matched, m.ID)
			}
		}

		beforeID = messages[len(messages)-1].ID
		if len(messages) < page {
			break
		}
	}

	return p.deleteAll(channelID, matched)
}

// deleteAll removes the collected ids in bulk-delete sized chunks.
// On a failing chunk it reports how many messages were already gone.
func (p *Purger) deleteAll(channelID string, messageIDs []string) (int, error) {
	deleted := 0
	for start := 0; start < len(messageIDs); start += bulkDeleteChunk {
		end := start + bulkDeleteChunk
		if end > len(messageIDs) {
			end = len(messageIDs)
		}

		if err := p.session.ChannelMessagesBulkDelete(channelID, messageIDs[start:end]); err != nil {
			return deleted, err
		}
		deleted += end - start
	}
	return deleted, nil
}
