package appointment

import (
	"fmt"

	"github.com/StudioBellaVista/salon-admin/internal/models"
)

// ServiceOption é uma opção de serviço pronta para o select do painel.
type ServiceOption struct {
	Value uint   `json:"value"`
	Label string `json:"label"`
}

// ServiceOptions devolve, na ordem do catálogo, os serviços que o
// profissional pode executar. Sem profissional selecionado (id zero ou
// desconhecido) a lista sai vazia, forçando o painel a pedir a seleção
// antes.
func ServiceOptions(
	teamMemberID uint,
	members []models.TeamMember,
	services []models.Service,
) []ServiceOption {

	options := []ServiceOption{}

	if teamMemberID == 0 {
		return options
	}

	var member *models.TeamMember
	for i := range members {
		if members[i].ID == teamMemberID {
			member = &members[i]
			break
		}
	}

	if member == nil || len(member.Specialties) == 0 {
		return options
	}

	for _, svc := range services {
		if !member.Specialties.Contains(svc.ID) {
			continue
		}
		options = append(options, ServiceOption{
			Value: svc.ID,
			Label: fmt.Sprintf("%s - R$ %.2f", svc.Name, svc.Price.Float64()),
		})
	}

	return options
}

// Totals recalcula preço e duração a partir dos serviços selecionados.
// Ids fora do catálogo contribuem zero.
func Totals(serviceIDs models.IDList, catalog []models.Service) (price float64, durationMin int) {
	byID := make(map[uint]models.Service, len(catalog))
	for _, svc := range catalog {
		byID[svc.ID] = svc
	}

	for _, id := range serviceIDs {
		if svc, ok := byID[id]; ok {
			price += svc.Price.Float64()
			durationMin += svc.DurationMinutes
		}
	}

	return price, durationMin
}

// EligibleOnly filtra a seleção atual mantendo só os serviços que
// continuam dentro das especialidades do profissional escolhido.
func EligibleOnly(
	selected models.IDList,
	teamMemberID uint,
	members []models.TeamMember,
) models.IDList {

	options := models.IDList{}

	var member *models.TeamMember
	for i := range members {
		if members[i].ID == teamMemberID {
			member = &members[i]
			break
		}
	}

	if member == nil {
		return options
	}

	for _, id := range selected {
		if member.Specialties.Contains(id) {
			options = append(options, id)
		}
	}

	return options
}
