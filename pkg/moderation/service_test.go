package moderation

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// fakeLedger mimics the Mongo store: counter-based ids that are never
// reused, guild-scoped updates/deletes returning row counts.
type fakeLedger struct {
	rows      map[int64]*models.Infraction
	lastID    int64
	clock     time.Time
	insertErr error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		rows:  make(map[int64]*models.Infraction),
		clock: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeLedger) Insert(_ context.Context, inf *models.Infraction) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.lastID++
	f.clock = f.clock.Add(time.Minute)
	inf.ID = f.lastID
	inf.CreatedOn = f.clock
	stored := *inf
	f.rows[inf.ID] = &stored
	return inf.ID, nil
}

func (f *fakeLedger) UpdateReason(_ context.Context, guildID string, id int64, reason string) (int64, error) {
	row, ok := f.rows[id]
	if !ok || row.GuildID != guildID {
		return 0, nil
	}
	now := f.clock.Add(time.Hour)
	row.Reason = reason
	row.EditedOn = &now
	return 1, nil
}

func (f *fakeLedger) Delete(_ context.Context, guildID string, id int64) (int64, error) {
	row, ok := f.rows[id]
	if !ok || row.GuildID != guildID {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func (f *fakeLedger) FindByID(_ context.Context, guildID string, id int64) (*models.Infraction, error) {
	row, ok := f.rows[id]
	if !ok || row.GuildID != guildID {
		return nil, nil
	}
	return row, nil
}

func (f *fakeLedger) FindByGuild(_ context.Context, guildID string, types []models.InfractionType) ([]*models.Infraction, error) {
	var result []*models.Infraction
	for _, row := range f.rows {
		if row.GuildID != guildID {
			continue
		}
		if len(types) > 0 {
			found := false
			for _, t := range types {
				if row.Type == t {
					found = true
				}
			}
			if !found {
				continue
			}
		}
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedOn.Before(result[j].CreatedOn) })
	return result, nil
}

func (f *fakeLedger) FindByUser(_ context.Context, guildID, userID string) ([]*models.Infraction, error) {
	var result []*models.Infraction
	for _, row := range f.rows {
		if row.GuildID == guildID && row.UserID == userID {
			result = append(result, row)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Type != result[j].Type {
			return result[i].Type < result[j].Type
		}
		return result[i].CreatedOn.Before(result[j].CreatedOn)
	})
	return result, nil
}

// fakeGuild records platform calls.
type fakeGuild struct {
	kicks   []string
	bans    []string
	reasons []string
	banDays []int
	err     error
}

func (f *fakeGuild) GuildMemberDeleteWithReason(guildID, userID, reason string, _ ...discordgo.RequestOption) error {
	if f.err != nil {
		return f.err
	}
	f.kicks = append(f.kicks, userID)
	f.reasons = append(f.reasons, reason)
	return nil
}

func (f *fakeGuild) GuildBanCreateWithReason(guildID, userID, reason string, days int, _ ...discordgo.RequestOption) error {
	if f.err != nil {
		return f.err
	}
	f.bans = append(f.bans, userID)
	f.reasons = append(f.reasons, reason)
	f.banDays = append(f.banDays, days)
	return nil
}

type fakeAudit struct {
	events []AuditEvent
}

func (f *fakeAudit) PublishInfraction(event AuditEvent) {
	f.events = append(f.events, event)
}

func kickRequest() ActionRequest {
	return ActionRequest{
		GuildID:      "guild-1",
		TargetID:     "target",
		ModeratorID:  "mod",
		ModeratorTag: "Mod#0001",
		ActorRank:    5,
		TargetRank:   2,
		SelfRank:     8,
	}
}

func TestKickDeniedByHierarchy(t *testing.T) {
	ledger := newFakeLedger()
	guild := &fakeGuild{}
	svc := NewService(ledger, guild, nil)

	req := kickRequest()
	req.TargetRank = 5 // equal to actor

	_, err := svc.Kick(context.Background(), req)
	if !errors.Is(err, ErrHierarchy) {
		t.Fatalf("Kick() error = %v, want ErrHierarchy", err)
	}
	if len(guild.kicks) != 0 {
		t.Error("denied kick must not call the platform")
	}
	if len(ledger.rows) != 0 {
		t.Error("denied kick must not write a ledger row")
	}
}

func TestKickSuccessRecordsInfraction(t *testing.T) {
	ledger := newFakeLedger()
	guild := &fakeGuild{}
	audit := &fakeAudit{}
	svc := NewService(ledger, guild, audit)

	res, err := svc.Kick(context.Background(), kickRequest())
	if err != nil {
		t.Fatalf("Kick() error = %v", err)
	}
	if res.InfractionID != 1 {
		t.Errorf("InfractionID = %d, want 1", res.InfractionID)
	}

	row := ledger.rows[1]
	if row == nil {
		t.Fatal("expected ledger row with id 1")
	}
	if row.Type != models.InfractionKick {
		t.Errorf("row type = %v, want kick", row.Type)
	}
	if row.Reason != "" {
		t.Errorf("row reason = %q, want empty when none supplied", row.Reason)
	}
	if row.EditedOn != nil {
		t.Error("editedOn must be nil on insert")
	}

	// Audit log description carries the default phrase even though the
	// stored reason stays empty.
	if len(guild.reasons) != 1 || !strings.Contains(guild.reasons[0], defaultAuditReason) {
		t.Errorf("audit reason = %v, want default phrase", guild.reasons)
	}
	if !strings.Contains(guild.reasons[0], "Mod#0001") {
		t.Errorf("audit reason = %q, should embed the moderator tag", guild.reasons[0])
	}

	if len(audit.events) != 1 || audit.events[0].Action != "created" {
		t.Errorf("audit events = %v, want one created event", audit.events)
	}
}

func TestBanDeletesSevenDaysOfMessages(t *testing.T) {
	ledger := newFakeLedger()
	guild := &fakeGuild{}
	svc := NewService(ledger, guild, nil)

	req := kickRequest()
	req.Reason = "spam"

	res, err := svc.Ban(context.Background(), req)
	if err != nil {
		t.Fatalf("Ban() error = %v", err)
	}
	if len(guild.banDays) != 1 || guild.banDays[0] != 7 {
		t.Errorf("ban days = %v, want [7]", guild.banDays)
	}
	if ledger.rows[res.InfractionID].Reason != "spam" {
		t.Errorf("stored reason = %q, want spam", ledger.rows[res.InfractionID].Reason)
	}
	if !strings.Contains(guild.reasons[0], "spam") {
		t.Errorf("audit reason = %q, should embed the given reason", guild.reasons[0])
	}
}

func TestPlatformFailureSkipsLedger(t *testing.T) {
	ledger := newFakeLedger()
	guild := &fakeGuild{err: errors.New("missing permissions")}
	svc := NewService(ledger, guild, nil)

	if _, err := svc.Kick(context.Background(), kickRequest()); err == nil {
		t.Fatal("Kick() should propagate the platform error")
	}
	if len(ledger.rows) != 0 {
		t.Error("failed platform action must not write a ledger row")
	}

	if _, err := svc.Ban(context.Background(), kickRequest()); err == nil {
		t.Fatal("Ban() should propagate the platform error")
	}
	if len(ledger.rows) != 0 {
		t.Error("failed platform action must not write a ledger row")
	}
}

func TestLedgerFailureAfterPlatformSuccess(t *testing.T) {
	ledger := newFakeLedger()
	ledger.insertErr = errors.New("db offline")
	guild := &fakeGuild{}
	svc := NewService(ledger, guild, nil)

	_, err := svc.Kick(context.Background(), kickRequest())
	if !errors.Is(err, ErrLedgerWrite) {
		t.Fatalf("Kick() error = %v, want ErrLedgerWrite", err)
	}
	if len(guild.kicks) != 1 {
		t.Error("platform action should have run before the ledger failure")
	}
}

func TestNoteAndWarnAreLedgerOnly(t *testing.T) {
	ledger := newFakeLedger()
	guild := &fakeGuild{}
	svc := NewService(ledger, guild, nil)

	noteID, err := svc.Note(context.Background(), "guild-1", "42", "7", "likes ducks")
	if err != nil {
		t.Fatalf("Note() error = %v", err)
	}
	warnID, err := svc.Warn(context.Background(), "guild-1", "42", "7", "spamming")
	if err != nil {
		t.Fatalf("Warn() error = %v", err)
	}

	if len(guild.kicks) != 0 || len(guild.bans) != 0 {
		t.Error("note/warn must not touch the platform")
	}
	if noteID != 1 || warnID != 2 {
		t.Errorf("ids = %d, %d, want strictly increasing 1, 2", noteID, warnID)
	}
	if ledger.rows[noteID].Type != models.InfractionNote {
		t.Errorf("first row type = %v, want note", ledger.rows[noteID].Type)
	}
	if ledger.rows[warnID].Type != models.InfractionWarning {
		t.Errorf("second row type = %v, want warning", ledger.rows[warnID].Type)
	}
}

func TestIDsAreUniqueAndIncreasing(t *testing.T) {
	ledger := newFakeLedger()
	svc := NewService(ledger, &fakeGuild{}, nil)

	var previous int64
	for i := 0; i < 5; i++ {
		guild := "guild-1"
		if i%2 == 1 {
			guild = "guild-2"
		}
		id, err := svc.Note(context.Background(), guild, "user", "mod", "n")
		if err != nil {
			t.Fatalf("Note() error = %v", err)
		}
		if id <= previous {
			t.Errorf("id %d not strictly greater than previous %d", id, previous)
		}
		previous = id
	}
}

func TestEditScopedByGuild(t *testing.T) {
	ledger := newFakeLedger()
	audit := &fakeAudit{}
	svc := NewService(ledger, &fakeGuild{}, audit)

	id, _ := svc.Note(context.Background(), "guild-1", "42", "7", "likes ducks")

	rows, err := svc.EditReason(context.Background(), "guild-2", id, "likes geese")
	if err != nil {
		t.Fatalf("EditReason() error = %v", err)
	}
	if rows != 0 {
		t.Errorf("cross-guild edit affected %d rows, want 0", rows)
	}
	if ledger.rows[id].Reason != "likes ducks" {
		t.Error("cross-guild edit must not modify the row")
	}

	rows, err = svc.EditReason(context.Background(), "guild-1", id, "likes geese")
	if err != nil {
		t.Fatalf("EditReason() error = %v", err)
	}
	if rows != 1 {
		t.Errorf("same-guild edit affected %d rows, want 1", rows)
	}
	if ledger.rows[id].Reason != "likes geese" {
		t.Errorf("reason = %q, want likes geese", ledger.rows[id].Reason)
	}
	if ledger.rows[id].EditedOn == nil {
		t.Error("editedOn must be set after the first edit")
	}

	// The missing id case.
	rows, _ = svc.EditReason(context.Background(), "guild-1", 999, "x")
	if rows != 0 {
		t.Errorf("edit of unknown id affected %d rows, want 0", rows)
	}

	if len(audit.events) != 2 { // created + edited, nothing for the misses
		t.Errorf("audit events = %d, want 2", len(audit.events))
	}
}

func TestDeleteScopedByGuild(t *testing.T) {
	ledger := newFakeLedger()
	svc := NewService(ledger, &fakeGuild{}, nil)

	id, _ := svc.Note(context.Background(), "guild-1", "42", "7", "n")

	rows, _ := svc.DeleteInfraction(context.Background(), "guild-2", id)
	if rows != 0 {
		t.Errorf("cross-guild delete affected %d rows, want 0", rows)
	}
	if _, ok := ledger.rows[id]; !ok {
		t.Fatal("cross-guild delete must not remove the row")
	}

	rows, _ = svc.DeleteInfraction(context.Background(), "guild-1", id)
	if rows != 1 {
		t.Errorf("same-guild delete affected %d rows, want 1", rows)
	}
	if _, ok := ledger.rows[id]; ok {
		t.Error("row should be gone after delete")
	}
}
