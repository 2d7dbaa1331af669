package moderation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// fakeChannel serves a fixed newest-first message history with the same
// paging contract as the Discord API.
type fakeChannel struct {
	messages []*discordgo.Message
	fetches  int
	deleted  []string
	chunks   int
	bulkErr  error
}

func (f *fakeChannel) ChannelMessages(_ string, limit int, beforeID, _, _ string, _ ...discordgo.RequestOption) ([]*discordgo.Message, error) {
	f.fetches++

	start := 0
	if beforeID != "" {
		for i, m := range f.messages {
			if m.ID == beforeID {
				start = i + 1
				break
			}
		}
	}

	end := start + limit
	if end > len(f.messages) {
		end = len(f.messages)
	}
	if start >= len(f.messages) {
		return nil, nil
	}
	return f.messages[start:end], nil
}

func (f *fakeChannel) ChannelMessagesBulkDelete(_ string, ids []string, _ ...discordgo.RequestOption) error {
	if f.bulkErr != nil {
		return f.bulkErr
	}
	f.chunks++
	f.deleted = append(f.deleted, ids...)
	return nil
}

func message(i int, authorID, content string) *discordgo.Message {
	return &discordgo.Message{
		ID:      fmt.Sprintf("m%04d", i),
		Author:  &discordgo.User{ID: authorID},
		Content: content,
	}
}

func channelWith(n int, authorID string) *fakeChannel {
	ch := &fakeChannel{}
	for i := 0; i < n; i++ {
		ch.messages = append(ch.messages, message(i, authorID, "hola"))
	}
	return ch
}

func TestPurgeDefaultsToHundred(t *testing.T) {
	ch := channelWith(250, "a")
	purger := NewPurger(ch)

	total, err := purger.Purge("chan", 0)
	if err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if total != DefaultPurgeLimit {
		t.Errorf("total = %d, want %d", total, DefaultPurgeLimit)
	}
}

func TestPurgeHonorsLimit(t *testing.T) {
	ch := channelWith(250, "a")
	purger := NewPurger(ch)

	total, err := purger.Purge("chan", 30)
	if err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if total != 30 {
		t.Errorf("total = %d, want 30", total)
	}
	if ch.fetches != 1 {
		t.Errorf("fetches = %d, a 30-message scan needs a single page", ch.fetches)
	}
}

func TestPurgePagesThroughHistory(t *testing.T) {
	ch := channelWith(250, "a")
	purger := NewPurger(ch)

	total, err := purger.Purge("chan", 250)
	if err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if total != 250 {
		t.Errorf("total = %d, want 250", total)
	}
	if ch.fetches != 3 {
		t.Errorf("fetches = %d, want 3 pages of at most 100", ch.fetches)
	}
	if ch.chunks != 3 {
		t.Errorf("bulk delete chunks = %d, want 3", ch.chunks)
	}
}

func TestPurgeShortHistory(t *testing.T) {
	ch := channelWith(12, "a")
	purger := NewPurger(ch)

	total, err := purger.Purge("chan", 50)
	if err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if total != 12 {
		t.Errorf("total = %d, want the 12 messages that exist", total)
	}
}

func TestPurgeByAuthorIDsRejectsEmptySet(t *testing.T) {
	ch := channelWith(10, "a")
	purger := NewPurger(ch)

	_, err := purger.PurgeByAuthorIDs("chan", nil)
	if !errors.Is(err, ErrNoTargets) {
		t.Fatalf("error = %v, want ErrNoTargets", err)
	}
	if ch.fetches != 0 {
		t.Error("usage error must be reported before any message is scanned")
	}
}

func TestPurgeByMembersRejectsEmptySet(t *testing.T) {
	ch := channelWith(10, "a")
	purger := NewPurger(ch)

	_, err := purger.PurgeByMembers("chan", 10, nil)
	if !errors.Is(err, ErrNoTargets) {
		t.Fatalf("error = %v, want ErrNoTargets", err)
	}
	if ch.fetches != 0 {
		t.Error("usage error must be reported before any message is scanned")
	}
}

func TestPurgeByAuthorIDsFiltersAuthors(t *testing.T) {
	ch := &fakeChannel{}
	for i := 0; i < 20; i++ {
		author := "keep"
		if i%4 == 0 {
			author = "spammer"
		}
		ch.messages = append(ch.messages, message(i, author, "hola"))
	}
	purger := NewPurger(ch)

	total, err := purger.PurgeByAuthorIDs("chan", []string{"spammer", "gone-user"})
	if err != nil {
		t.Fatalf("PurgeByAuthorIDs() error = %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	for _, id := range ch.deleted {
		for _, m := range ch.messages {
			if m.ID == id && m.Author.ID != "spammer" {
				t.Errorf("deleted message %s from author %s", id, m.Author.ID)
			}
		}
	}
}

func TestPurgeContainingIsCaseSensitive(t *testing.T) {
	ch := &fakeChannel{
		messages: []*discordgo.Message{
			message(0, "a", "contains X here"),
			message(1, "a", "contains x here"),
			message(2, "a", "no match"),
			message(3, "a", "X"),
		},
	}
	purger := NewPurger(ch)

	total, err := purger.PurgeContaining("chan", 10, "X")
	if err != nil {
		t.Fatalf("PurgeContaining() error = %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2 (literal case-sensitive match)", total)
	}
	for _, id := range ch.deleted {
		if id == "m0001" {
			t.Error("lowercase 'x' message must be preserved")
		}
	}
}

func TestPurgeByMembersFiltersAuthors(t *testing.T) {
	ch := &fakeChannel{
		messages: []*discordgo.Message{
			message(0, "u1", "a"),
			message(1, "u2", "b"),
			message(2, "u3", "c"),
			message(3, "u1", "d"),
		},
	}
	purger := NewPurger(ch)

	members := []*discordgo.User{{ID: "u1"}, {ID: "u3"}}
	total, err := purger.PurgeByMembers("chan", 4, members)
	if err != nil {
		t.Fatalf("PurgeByMembers() error = %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
}

func TestPurgeReportsCountBeforeBulkFailure(t *testing.T) {
	ch := channelWith(10, "a")
	ch.bulkErr = errors.New("messages too old")
	purger := NewPurger(ch)

	total, err := purger.Purge("chan", 10)
	if err == nil {
		t.Fatal("expected bulk delete error to propagate")
	}
	if total != 0 {
		t.Errorf("total = %d, want 0 when the first chunk fails", total)
	}
}
