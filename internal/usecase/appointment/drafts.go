package appointment

import (
	"sync"

	"github.com/google/uuid"

	domain "github.com/StudioBellaVista/salon-admin/internal/domain/appointment"
	"github.com/StudioBellaVista/salon-admin/internal/httperr"
	"github.com/StudioBellaVista/salon-admin/internal/models"
)

// DraftSessions segura os rascunhos abertos do painel. Um rascunho só
// existe entre abrir e submeter/cancelar o formulário.
type DraftSessions struct {
	mu     sync.Mutex
	drafts map[string]*domain.Draft
}

func NewDraftSessions() *DraftSessions {
	return &DraftSessions{
		drafts: make(map[string]*domain.Draft),
	}
}

// StartNew abre um rascunho de criação, sem profissional pré-selecionado.
func (s *DraftSessions) StartNew() *domain.Draft {
	d := domain.NewDraft(uuid.NewString())

	s.mu.Lock()
	s.drafts[d.ID] = d
	s.mu.Unlock()

	return d
}

// StartEdit abre um rascunho a partir do detalhe completo do backend.
func (s *DraftSessions) StartEdit(ap *models.Appointment) *domain.Draft {
	d := domain.EditDraft(uuid.NewString(), ap)

	s.mu.Lock()
	s.drafts[d.ID] = d
	s.mu.Unlock()

	return d
}

// Mutate roda fn com o rascunho travado; todo acesso de handler passa
// por aqui.
func (s *DraftSessions) Mutate(id string, fn func(*domain.Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return httperr.ErrBusiness("draft_not_found")
	}

	return fn(d)
}

// Discard encerra a sessão descartando todo o estado do rascunho,
// inclusive mensagem de conflito e profissional memorizado.
func (s *DraftSessions) Discard(id string) {
	s.mu.Lock()
	delete(s.drafts, id)
	s.mu.Unlock()
}
