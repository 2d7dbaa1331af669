// Package database - InfractionStore, the persistence service for the
// moderation ledger.
package database

import (
	"context"
	"sync"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	infractionsCollection = "infractions"
	countersCollection    = "counters"

	// Document _id in the counters collection that holds the ledger sequence.
	infractionCounterKey = "infractions"
)

// counterDoc is the sequence document used for id allocation.
type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// InfractionStore provides CRUD access to the infraction ledger.
// Ids are allocated from a single counter document, so they are unique
// and strictly increasing across the whole store, not just per guild.
type InfractionStore struct {
	infractions *mongo.Collection
	counters    *mongo.Collection
	dbInstance  *Database
}

// GlobalInfractionStore is the shared store instance used by commands.
var GlobalInfractionStore *InfractionStore

var storeOnce sync.Once

// InitInfractionStore initializes the shared InfractionStore.
func InitInfractionStore(db *Database) *InfractionStore {
	storeOnce.Do(func() {
		GlobalInfractionStore = NewInfractionStore(db)
	})
	return GlobalInfractionStore
}

// NewInfractionStore creates an InfractionStore over the given database.
func NewInfractionStore(db *Database) *InfractionStore {
	return &InfractionStore{
		infractions: db.GetCollection(infractionsCollection),
		counters:    db.GetCollection(countersCollection),
		dbInstance:  db,
	}
}

// nextID reserves the next ledger id. The counter is only ever
// incremented, so ids are never reused even after deletes.
func (s *InfractionStore) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc counterDoc
	err := s.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": infractionCounterKey},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

// Insert writes a new infraction, assigning its id and creation time.
// The assigned id is returned and also set on the passed record.
func (s *InfractionStore) Insert(ctx context.Context, inf *models.Infraction) (int64, error) {
	id, err := s.nextID(ctx)
	if err != nil {
		return 0, err
	}

	inf.ID = id
	inf.CreatedOn = time.Now().UTC()
	inf.EditedOn = nil

	if _, err := s.infractions.InsertOne(ctx, inf); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateReason changes the reason of an infraction and stamps editedOn.
// The update is scoped by guild: an id that exists on another guild is
// reported as zero rows, never touched. Returns the matched-row count.
func (s *InfractionStore) UpdateReason(ctx context.Context, guildID string, id int64, reason string) (int64, error) {
	now := time.Now().UTC()
	res, err := s.infractions.UpdateOne(
		ctx,
		guildScopedFilter(guildID, id),
		bson.M{"$set": bson.M{"reason": reason, "editedOn": now}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Delete removes an infraction, scoped by guild like UpdateReason.
// Returns the deleted-row count.
func (s *InfractionStore) Delete(ctx context.Context, guildID string, id int64) (int64, error) {
	res, err := s.infractions.DeleteOne(ctx, guildScopedFilter(guildID, id))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// FindByID fetches a single infraction scoped by guild.
// Returns nil, nil when no row matches.
func (s *InfractionStore) FindByID(ctx context.Context, guildID string, id int64) (*models.Infraction, error) {
	var inf models.Infraction
	err := s.infractions.FindOne(ctx, guildScopedFilter(guildID, id)).Decode(&inf)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &inf, nil
}

// FindByGuild lists a guild's infractions ordered by creation time,
// optionally restricted to the given types.
func (s *InfractionStore) FindByGuild(ctx context.Context, guildID string, types []models.InfractionType) ([]*models.Infraction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdOn", Value: 1}})
	return s.find(ctx, guildTypeFilter(guildID, types), opts)
}

// FindByUser lists a user's infractions on a guild, ordered by type and
// then by creation time within each type.
func (s *InfractionStore) FindByUser(ctx context.Context, guildID, userID string) ([]*models.Infraction, error) {
	filter := bson.M{"guildId": guildID, "userId": userID}
	opts := options.Find().SetSort(bson.D{
		{Key: "type", Value: 1},
		{Key: "createdOn", Value: 1},
	})
	return s.find(ctx, filter, opts)
}

func (s *InfractionStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.Infraction, error) {
	cursor, err := s.infractions.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var results []*models.Infraction
	for cursor.Next(ctx) {
		var inf models.Infraction
		if err := cursor.Decode(&inf); err != nil {
			return nil, err
		}
		results = append(results, &inf)
	}
	return results, cursor.Err()
}

// guildScopedFilter matches a single row by (guildId, id).
func guildScopedFilter(guildID string, id int64) bson.M {
	return bson.M{"_id": id, "guildId": guildID}
}

// guildTypeFilter matches a guild's rows, optionally by type set.
func guildTypeFilter(guildID string, types []models.InfractionType) bson.M {
	filter := bson.M{"guildId": guildID}
	if len(types) > 0 {
		filter["type"] = bson.M{"$in": types}
	}
	return filter
}
