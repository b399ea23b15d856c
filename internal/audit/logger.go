package audit

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const ringSize = 500

type Entry struct {
	At       time.Time `json:"at"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID *uint     `json:"entity_id,omitempty"`
	Metadata any       `json:"metadata,omitempty"`
}

// Logger escreve a trilha de auditoria no log estruturado e mantém um
// anel limitado em memória para consulta pelo painel.
type Logger struct {
	log zerolog.Logger

	mu      sync.RWMutex
	entries []Entry
}

func New(log zerolog.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Log(action, entity string, entityID *uint, metadata any) error {
	entry := Entry{
		At:       time.Now(),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metadata,
	}

	ev := l.log.Info().
		Str("audit_action", action).
		Str("entity", entity).
		Time("at", entry.At)
	if entityID != nil {
		ev = ev.Uint("entity_id", *entityID)
	}
	if metadata != nil {
		ev = ev.Interface("metadata", metadata)
	}
	ev.Msg("audit")

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	if len(l.entries) > ringSize {
		l.entries = l.entries[len(l.entries)-ringSize:]
	}
	l.mu.Unlock()

	return nil
}

// Recent devolve as entradas mais novas primeiro, com filtros opcionais
// por action e entity.
func (l *Logger) Recent(limit int, action, entity string) []Entry {
	if limit <= 0 || limit > ringSize {
		limit = 50
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []Entry{}
	for i := len(l.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := l.entries[i]
		if action != "" && e.Action != action {
			continue
		}
		if entity != "" && e.Entity != entity {
			continue
		}
		out = append(out, e)
	}

	return out
}
