package mqtt

import (
	"context"
	"fmt"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/PancyStudios/PancyModGo/pkg/models"
)

// queryTimeout bounds every store lookup answered over MQTT.
const queryTimeout = 10 * time.Second

// LedgerReader is the read-only store surface the query service exposes
// to external audit consumers.
type LedgerReader interface {
	FindByID(ctx context.Context, guildID string, id int64) (*models.Infraction, error)
	FindByGuild(ctx context.Context, guildID string, types []models.InfractionType) ([]*models.Infraction, error)
}

// QueryService answers infraction lookups over the request/response
// channel, so audit consumers that follow the event stream can also
// fetch ledger state on demand.
type QueryService struct {
	mc     *MqttCommunicator
	ledger LedgerReader
}

// NewQueryService creates a query service over the given communicator.
func NewQueryService(mc *MqttCommunicator, ledger LedgerReader) *QueryService {
	return &QueryService{mc: mc, ledger: ledger}
}

// Listen registers the query topics on the broker.
func (s *QueryService) Listen() {
	if s.mc == nil || s.ledger == nil {
		logger.Warn("Servicio de consultas MQTT sin broker o sin base de datos, no se registran topics.", "MQTT")
		return
	}

	s.mc.On("infractions/get", s.handleGet)
	s.mc.On("infractions/list", s.handleList)
	logger.Info("Topics de consulta de infracciones registrados.", "MQTT")
}

// handleGet answers infractions/get: {guildId, id} -> infraction.
func (s *QueryService) handleGet(payload map[string]interface{}) (interface{}, error) {
	guildID, _ := payload["guildId"].(string)
	if guildID == "" {
		return nil, fmt.Errorf("falta el campo guildId")
	}

	// JSON numbers arrive as float64
	rawID, ok := payload["id"].(float64)
	if !ok || rawID < 1 {
		return nil, fmt.Errorf("falta un campo id válido")
	}
	id := int64(rawID)

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	inf, err := s.ledger.FindByID(ctx, guildID, id)
	if err != nil {
		return nil, err
	}
	if inf == nil {
		return nil, fmt.Errorf("no existe la infracción %d en el servidor %s", id, guildID)
	}
	return inf, nil
}

// handleList answers infractions/list: {guildId, types?} -> rows.
func (s *QueryService) handleList(payload map[string]interface{}) (interface{}, error) {
	guildID, _ := payload["guildId"].(string)
	if guildID == "" {
		return nil, fmt.Errorf("falta el campo guildId")
	}

	var types []models.InfractionType
	if raw, ok := payload["types"].([]interface{}); ok {
		for _, item := range raw {
			name, _ := item.(string)
			t, err := models.ParseInfractionType(name)
			if err != nil {
				return nil, err
			}
			types = append(types, t)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := s.ledger.FindByGuild(ctx, guildID, types)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*models.Infraction{}
	}
	return rows, nil
}
