// Package database - blacklist service with an in-memory cache so the
// middleware check on every command never waits on Mongo.
package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/PancyStudios/PancyModGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const blacklistCollection = "blacklist"

var (
	ErrBlacklistNotInitialized = errors.New("blacklist service not initialized")
	ErrBlacklistEntryNotFound  = errors.New("entrada de blacklist no encontrada")
	ErrBlacklistEntryExists    = errors.New("la entrada ya existe en la blacklist")
)

// BlacklistService stores blocked users/guilds in Mongo and mirrors
// them in memory, refreshed on an interval.
type BlacklistService struct {
	dbInstance *Database
	entries    map[string]*models.BlacklistEntry
	mu         sync.RWMutex
	ticker     *time.Ticker
	done       chan struct{}
	stopOnce   sync.Once
}

var blacklistService *BlacklistService

// InitBlacklistService creates the global service and loads the cache.
func InitBlacklistService(db *Database) (*BlacklistService, error) {
	blacklistService = &BlacklistService{
		dbInstance: db,
		entries:    make(map[string]*models.BlacklistEntry),
		done:       make(chan struct{}),
	}
	return blacklistService, blacklistService.Refresh()
}

// GetBlacklistService returns the global service, which may be nil when
// the bot runs without a database.
func GetBlacklistService() *BlacklistService {
	return blacklistService
}

// StartAutoRefresh reloads the cache every interval until Stop.
func (s *BlacklistService) StartAutoRefresh(interval time.Duration) {
	s.ticker = time.NewTicker(interval)

	go func() {
		for {
			select {
			case <-s.done:
				return
			case <-s.ticker.C:
				if err := s.Refresh(); err != nil {
					logger.Error("Error refrescando caché de blacklist: "+err.Error(), "Blacklist")
				} else {
					logger.Debug("Caché de blacklist refrescada automáticamente", "Blacklist")
				}
			}
		}
	}()

	logger.System("Sistema de caché de blacklist iniciado", "Blacklist")
}

// Stop ends the refresh goroutine.
func (s *BlacklistService) Stop() {
	s.stopOnce.Do(func() {
		if s.ticker != nil {
			s.ticker.Stop()
		}
		close(s.done)
	})
}

// Refresh reloads every entry from the database into the cache.
func (s *BlacklistService) Refresh() error {
	col := s.dbInstance.GetCollection(blacklistCollection)
	if col == nil {
		return ErrBlacklistNotInitialized
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer func() { _ = cursor.Close(ctx) }()

	fresh := make(map[string]*models.BlacklistEntry)
	for cursor.Next(ctx) {
		var entry models.BlacklistEntry
		if err := cursor.Decode(&entry); err != nil {
			continue
		}
		fresh[entry.ID] = &entry
	}
	if err := cursor.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.entries = fresh
	s.mu.Unlock()

	logger.Info(fmt.Sprintf("Caché de blacklist cargada: %d entradas", len(fresh)), "Blacklist")
	return nil
}

// Add blocks a user or guild.
func (s *BlacklistService) Add(id string, blacklistType models.BlacklistType, reason, createdBy string) (*models.BlacklistEntry, error) {
	if _, exists := s.get(id); exists {
		return nil, ErrBlacklistEntryExists
	}

	entry := &models.BlacklistEntry{
		ID:        id,
		Type:      blacklistType,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
		CreatedBy: createdBy,
	}

	col := s.dbInstance.GetCollection(blacklistCollection)
	if col == nil {
		return nil, ErrBlacklistNotInitialized
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	if _, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": entry}, opts); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entries[id] = entry
	s.mu.Unlock()

	return entry, nil
}

// Remove unblocks a user or guild.
func (s *BlacklistService) Remove(id string) error {
	if _, exists := s.get(id); !exists {
		return ErrBlacklistEntryNotFound
	}

	col := s.dbInstance.GetCollection(blacklistCollection)
	if col == nil {
		return ErrBlacklistNotInitialized
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()

	return nil
}

// All returns every cached entry.
func (s *BlacklistService) All() []*models.BlacklistEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*models.BlacklistEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	return entries
}

// Entry returns a cached entry by id.
func (s *BlacklistService) Entry(id string) (*models.BlacklistEntry, bool) {
	return s.get(id)
}

func (s *BlacklistService) get(id string) (*models.BlacklistEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, exists := s.entries[id]
	return entry, exists
}

// IsUserBlacklisted checks a user against the cache (no DB round trip).
func IsUserBlacklisted(userID string) (bool, *models.BlacklistEntry) {
	if blacklistService == nil {
		return false, nil
	}
	entry, exists := blacklistService.get(userID)
	return exists, entry
}

// IsGuildBlacklisted checks a guild against the cache.
func IsGuildBlacklisted(guildID string) (bool, *models.BlacklistEntry) {
	if blacklistService == nil {
		return false, nil
	}
	entry, exists := blacklistService.get(guildID)
	return exists, entry
}
