package appointment

import (
	"sync"

	"github.com/google/uuid"

	"github.com/StudioBellaVista/salon-admin/internal/models"
)

// LocalStore guarda os agendamentos salvos só localmente enquanto o
// backend estava fora do ar. Vive em memória, morre com o processo:
// disponibilidade sobre consistência, sempre sinalizada como tal.
type LocalStore struct {
	mu      sync.RWMutex
	records map[string]models.Appointment
}

func NewLocalStore() *LocalStore {
	return &LocalStore{
		records: make(map[string]models.Appointment),
	}
}

// Add marca o registro como local-only com um id gerado no cliente
// e devolve a cópia marcada.
func (s *LocalStore) Add(ap models.Appointment, cause string) models.Appointment {
	ap.LocalOnly = true
	ap.LocalOnlyID = uuid.NewString()
	ap.LocalOnlyCause = cause

	s.mu.Lock()
	s.records[ap.LocalOnlyID] = ap
	s.mu.Unlock()

	return ap
}

func (s *LocalStore) List() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Appointment, 0, len(s.records))
	for _, ap := range s.records {
		out = append(out, ap)
	}
	return out
}

func (s *LocalStore) Remove(localID string) {
	s.mu.Lock()
	delete(s.records, localID)
	s.mu.Unlock()
}
