package mqtt

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/models"
)

// fakeLedger implements LedgerReader over an in-memory slice.
type fakeLedger struct {
	rows    []*models.Infraction
	err     error
	gotType []models.InfractionType
}

func (f *fakeLedger) FindByID(_ context.Context, guildID string, id int64) (*models.Infraction, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, inf := range f.rows {
		if inf.GuildID == guildID && inf.ID == id {
			return inf, nil
		}
	}
	return nil, nil
}

func (f *fakeLedger) FindByGuild(_ context.Context, guildID string, types []models.InfractionType) ([]*models.Infraction, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotType = types

	allowed := make(map[models.InfractionType]bool)
	for _, t := range types {
		allowed[t] = true
	}

	var out []*models.Infraction
	for _, inf := range f.rows {
		if inf.GuildID != guildID {
			continue
		}
		if len(allowed) > 0 && !allowed[inf.Type] {
			continue
		}
		out = append(out, inf)
	}
	return out, nil
}

func sampleRows() []*models.Infraction {
	return []*models.Infraction{
		{ID: 1, Type: models.InfractionWarning, GuildID: "g1", UserID: "u1", CreatedOn: time.Now()},
		{ID: 2, Type: models.InfractionBan, GuildID: "g1", UserID: "u2", CreatedOn: time.Now()},
		{ID: 3, Type: models.InfractionNote, GuildID: "g2", UserID: "u1", CreatedOn: time.Now()},
	}
}

func TestQueryHandleGet(t *testing.T) {
	svc := NewQueryService(nil, &fakeLedger{rows: sampleRows()})

	data, err := svc.handleGet(map[string]interface{}{"guildId": "g1", "id": float64(2)})
	if err != nil {
		t.Fatalf("handleGet returned error: %v", err)
	}

	inf, ok := data.(*models.Infraction)
	if !ok {
		t.Fatalf("handleGet returned %T, want *models.Infraction", data)
	}
	if inf.ID != 2 || inf.Type != models.InfractionBan {
		t.Errorf("handleGet returned id=%d type=%s, want id=2 type=ban", inf.ID, inf.Type)
	}
}

func TestQueryHandleGetGuildScoped(t *testing.T) {
	svc := NewQueryService(nil, &fakeLedger{rows: sampleRows()})

	// Id 3 exists, but in another guild
	if _, err := svc.handleGet(map[string]interface{}{"guildId": "g1", "id": float64(3)}); err == nil {
		t.Error("handleGet answered an id belonging to another guild")
	}
}

func TestQueryHandleGetValidatesPayload(t *testing.T) {
	svc := NewQueryService(nil, &fakeLedger{rows: sampleRows()})

	payloads := []map[string]interface{}{
		{"id": float64(1)},                  // missing guildId
		{"guildId": "g1"},                   // missing id
		{"guildId": "g1", "id": "2"},        // id not a number
		{"guildId": "g1", "id": float64(0)}, // id below range
		{"guildId": "", "id": float64(1)},   // empty guildId
	}
	for _, payload := range payloads {
		if _, err := svc.handleGet(payload); err == nil {
			t.Errorf("handleGet(%v) expected an error", payload)
		}
	}
}

func TestQueryHandleList(t *testing.T) {
	ledger := &fakeLedger{rows: sampleRows()}
	svc := NewQueryService(nil, ledger)

	data, err := svc.handleList(map[string]interface{}{
		"guildId": "g1",
		"types":   []interface{}{"warning", "ban"},
	})
	if err != nil {
		t.Fatalf("handleList returned error: %v", err)
	}

	rows, ok := data.([]*models.Infraction)
	if !ok {
		t.Fatalf("handleList returned %T, want []*models.Infraction", data)
	}
	if len(rows) != 2 {
		t.Errorf("handleList returned %d rows, want 2", len(rows))
	}

	wantTypes := []models.InfractionType{models.InfractionWarning, models.InfractionBan}
	if !reflect.DeepEqual(ledger.gotType, wantTypes) {
		t.Errorf("handleList passed types %v to the store, want %v", ledger.gotType, wantTypes)
	}
}

func TestQueryHandleListUnknownType(t *testing.T) {
	svc := NewQueryService(nil, &fakeLedger{rows: sampleRows()})

	if _, err := svc.handleList(map[string]interface{}{
		"guildId": "g1",
		"types":   []interface{}{"bogus"},
	}); err == nil {
		t.Error("handleList accepted an unknown type")
	}
}

func TestQueryHandleListEmptyGuild(t *testing.T) {
	svc := NewQueryService(nil, &fakeLedger{})

	data, err := svc.handleList(map[string]interface{}{"guildId": "g9"})
	if err != nil {
		t.Fatalf("handleList returned error: %v", err)
	}

	rows, ok := data.([]*models.Infraction)
	if !ok {
		t.Fatalf("handleList returned %T, want []*models.Infraction", data)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("handleList returned %v, want an empty non-nil slice", rows)
	}
}

func TestQueryHandleListStoreError(t *testing.T) {
	svc := NewQueryService(nil, &fakeLedger{err: fmt.Errorf("mongo caído")})

	if _, err := svc.handleList(map[string]interface{}{"guildId": "g1"}); err == nil {
		t.Error("handleList swallowed a store error")
	}
}
