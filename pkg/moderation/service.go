package moderation

import (
	"context"
	"errors"
	"fmt"

	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/PancyStudios/PancyModGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// Ban removes the last week of messages from the banned member.
const banPurgeDays = 7

// defaultAuditReason appears in the Discord audit log when the
// moderator gave no reason. The ledger still stores the empty string.
const defaultAuditReason = "Sin razón especificada"

var (
	// ErrHierarchy is returned when the hierarchy gate denies an action.
	// Nothing has happened yet when this is returned: no platform call,
	// no ledger row.
	ErrHierarchy = errors.New("la jerarquía de roles no permite esta acción")

	// ErrLedgerWrite is returned when the platform action succeeded but
	// the ledger insert failed afterwards. The action is NOT rolled
	// back; the member stays kicked/banned with no row recorded.
	ErrLedgerWrite = errors.New("la acción se aplicó pero no se pudo registrar la infracción")
)

// Ledger is the store contract the dispatcher and the query commands
// depend on. *database.InfractionStore satisfies it.
type Ledger interface {
	Insert(ctx context.Context, inf *models.Infraction) (int64, error)
	UpdateReason(ctx context.Context, guildID string, id int64, reason string) (int64, error)
	Delete(ctx context.Context, guildID string, id int64) (int64, error)
	FindByID(ctx context.Context, guildID string, id int64) (*models.Infraction, error)
	FindByGuild(ctx context.Context, guildID string, types []models.InfractionType) ([]*models.Infraction, error)
	FindByUser(ctx context.Context, guildID, userID string) ([]*models.Infraction, error)
}

// GuildActions is the subset of the Discord session the dispatcher
// invokes. *discordgo.Session satisfies it.
type GuildActions interface {
	GuildMemberDeleteWithReason(guildID, userID, reason string, options ...discordgo.RequestOption) error
	GuildBanCreateWithReason(guildID, userID, reason string, days int, options ...discordgo.RequestOption) error
}

// AuditEvent describes an infraction lifecycle change for external
// audit consumers (published over MQTT).
type AuditEvent struct {
	Action       string                `json:"action"`
	GuildID      string                `json:"guildId"`
	InfractionID int64                 `json:"infractionId"`
	Type         models.InfractionType `json:"type,omitempty"`
	UserID       string                `json:"userId,omitempty"`
	ModeratorID  string                `json:"moderatorId,omitempty"`
	Reason       string                `json:"reason,omitempty"`
}

// AuditPublisher receives infraction lifecycle events. Publishing is
// fire-and-forget; it never influences the outcome of a command.
type AuditPublisher interface {
	PublishInfraction(event AuditEvent)
}

// Service is the moderation action dispatcher. Each action runs the
// hierarchy gate where required, performs the platform call, and writes
// the ledger row only after the platform call succeeded. The two steps
// are causally ordered, not transactional.
type Service struct {
	ledger Ledger
	guild  GuildActions
	audit  AuditPublisher
}

// NewService creates a dispatcher. audit may be nil.
func NewService(ledger Ledger, guild GuildActions, audit AuditPublisher) *Service {
	return &Service{ledger: ledger, guild: guild, audit: audit}
}

// ActionRequest carries everything a kick/ban needs: identities for the
// ledger row and audit string, and the three role ranks for the gate.
type ActionRequest struct {
	GuildID      string
	TargetID     string
	ModeratorID  string
	ModeratorTag string
	Reason       string

	ActorRank  int
	TargetRank int
	SelfRank   int
}

// ActionResult reports a completed kick/ban.
type ActionResult struct {
	InfractionID int64
}

// auditDescription composes the audit-log-visible reason string.
func auditDescription(moderatorTag, reason string) string {
	if reason == "" {
		reason = defaultAuditReason
	}
	return fmt.Sprintf("Comando invocado por %s, razón: %s.", moderatorTag, reason)
}

// Kick runs the gate, removes the member and records the infraction.
func (s *Service) Kick(ctx context.Context, req ActionRequest) (*ActionResult, error) {
	if !CanActOn(req.ActorRank, req.TargetRank, req.SelfRank) {
		return nil, ErrHierarchy
	}

	err := s.guild.GuildMemberDeleteWithReason(
		req.GuildID,
		req.TargetID,
		auditDescription(req.ModeratorTag, req.Reason),
	)
	if err != nil {
		return nil, fmt.Errorf("error al expulsar: %w", err)
	}

	return s.record(ctx, models.InfractionKick, req)
}

// Ban runs the gate, bans the member (deleting the last 7 days of
// messages) and records the infraction.
func (s *Service) Ban(ctx context.Context, req ActionRequest) (*ActionResult, error) {
	if !CanActOn(req.ActorRank, req.TargetRank, req.SelfRank) {
		return nil, ErrHierarchy
	}

	err := s.guild.GuildBanCreateWithReason(
		req.GuildID,
		req.TargetID,
		auditDescription(req.ModeratorTag, req.Reason),
		banPurgeDays,
	)
	if err != nil {
		return nil, fmt.Errorf("error al banear: %w", err)
	}

	return s.record(ctx, models.InfractionBan, req)
}

// Note records a note. No gate, no platform call.
func (s *Service) Note(ctx context.Context, guildID, userID, moderatorID, text string) (int64, error) {
	res, err := s.record(ctx, models.InfractionNote, ActionRequest{
		GuildID:     guildID,
		TargetID:    userID,
		ModeratorID: moderatorID,
		Reason:      text,
	})
	if err != nil {
		return 0, err
	}
	return res.InfractionID, nil
}

// Warn records a warning. No gate, no platform call.
func (s *Service) Warn(ctx context.Context, guildID, userID, moderatorID, reason string) (int64, error) {
	res, err := s.record(ctx, models.InfractionWarning, ActionRequest{
		GuildID:     guildID,
		TargetID:    userID,
		ModeratorID: moderatorID,
		Reason:      reason,
	})
	if err != nil {
		return 0, err
	}
	return res.InfractionID, nil
}

// record writes the ledger row and publishes the audit event. For
// kick/ban the platform call already succeeded at this point, so an
// insert failure here is the documented partial-consistency case.
func (s *Service) record(ctx context.Context, typ models.InfractionType, req ActionRequest) (*ActionResult, error) {
	inf := &models.Infraction{
		Type:        typ,
		GuildID:     req.GuildID,
		UserID:      req.TargetID,
		ModeratorID: req.ModeratorID,
		Reason:      req.Reason,
	}

	id, err := s.ledger.Insert(ctx, inf)
	if err != nil {
		logger.Warn(fmt.Sprintf("Infracción %s no registrada (guild %s, user %s): %v",
			typ, req.GuildID, req.TargetID, err), "Moderation")
		return nil, fmt.Errorf("%w: %v", ErrLedgerWrite, err)
	}

	s.publish(AuditEvent{
		Action:       "created",
		GuildID:      req.GuildID,
		InfractionID: id,
		Type:         typ,
		UserID:       req.TargetID,
		ModeratorID:  req.ModeratorID,
		Reason:       req.Reason,
	})

	return &ActionResult{InfractionID: id}, nil
}

// EditReason updates an infraction's reason, scoped by guild.
// Returns the affected-row count (0 means not found on this guild).
func (s *Service) EditReason(ctx context.Context, guildID string, id int64, reason string) (int64, error) {
	rows, err := s.ledger.UpdateReason(ctx, guildID, id, reason)
	if err != nil {
		return 0, err
	}
	if rows > 0 {
		s.publish(AuditEvent{
			Action:       "edited",
			GuildID:      guildID,
			InfractionID: id,
			Reason:       reason,
		})
	}
	return rows, nil
}

// DeleteInfraction removes an infraction, scoped by guild.
// Returns the affected-row count (0 means not found on this guild).
func (s *Service) DeleteInfraction(ctx context.Context, guildID string, id int64) (int64, error) {
	rows, err := s.ledger.Delete(ctx, guildID, id)
	if err != nil {
		return 0, err
	}
	if rows > 0 {
		s.publish(AuditEvent{
			Action:       "deleted",
			GuildID:      guildID,
			InfractionID: id,
		})
	}
	return rows, nil
}

// Ledger exposes the underlying store for the read-only query commands.
func (s *Service) Ledger() Ledger {
	return s.ledger
}

func (s *Service) publish(event AuditEvent) {
	if s.audit != nil {
		s.audit.PublishInfraction(event)
	}
}
