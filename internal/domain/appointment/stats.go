package appointment

import (
	"time"

	"github.com/StudioBellaVista/salon-admin/internal/dateutil"
	"github.com/StudioBellaVista/salon-admin/internal/models"
)

// ======================================================
// FILTER
// ======================================================

// Filter restringe uma coleção de agendamentos antes da agregação.
// Os filtros são conjuntivos; campo vazio = sem restrição.
type Filter struct {
	StartDate string
	EndDate   string
	Status    string
}

// Apply devolve o subconjunto que passa em todos os filtros. O limite
// superior do intervalo é tratado como fim de dia, então um filtro com
// start == end do mesmo dia inclui o dia inteiro.
func (f Filter) Apply(
	list []models.Appointment,
	loc *time.Location,
) []models.Appointment {

	var start, end time.Time
	hasStart, hasEnd := false, false

	if f.StartDate != "" {
		if t, err := dateutil.ParseLocalDate(f.StartDate, loc); err == nil {
			start, hasStart = t, true
		}
	}

	if f.EndDate != "" {
		if t, err := dateutil.ParseLocalDate(f.EndDate, loc); err == nil {
			end, hasEnd = dateutil.EndOfDay(t), true
		}
	}

	out := []models.Appointment{}

	for _, ap := range list {
		if f.Status != "" && ap.Status != f.Status {
			continue
		}

		if hasStart || hasEnd {
			d, err := dateutil.ParseLocalDate(ap.AppointmentDate, loc)
			if err != nil {
				continue
			}
			if hasStart && d.Before(start) {
				continue
			}
			if hasEnd && d.After(end) {
				continue
			}
		}

		out = append(out, ap)
	}

	return out
}

// ======================================================
// STATS
// ======================================================

type Stats struct {
	TotalAppointments     int     `json:"total_appointments"`
	TodayAppointments     int     `json:"today_appointments"`
	ConfirmedAppointments int     `json:"confirmed_appointments"`
	TotalRevenue          float64 `json:"total_revenue"`
	TotalDuration         int     `json:"total_duration"`
}

// Compute agrega a coleção já filtrada. Coleção vazia devolve tudo
// zerado; preço ausente ou não numérico já chega como 0 via models.Money.
func Compute(list []models.Appointment, now time.Time) Stats {
	var s Stats

	for _, ap := range list {
		s.TotalAppointments++

		if d, err := dateutil.ParseLocalDate(ap.AppointmentDate, now.Location()); err == nil {
			if dateutil.IsSameDay(d, now) {
				s.TodayAppointments++
			}
		}

		if ap.Status == string(StatusConfirmed) {
			s.ConfirmedAppointments++
		}

		s.TotalRevenue += ap.TotalPrice.Float64()
		s.TotalDuration += ap.TotalDuration
	}

	return s
}

// ======================================================
// REVENUE WINDOWS
// ======================================================

type RevenueWindow string

const (
	RevenueDaily   RevenueWindow = "daily"
	RevenueMonthly RevenueWindow = "monthly"
)

// Revenue soma total_price dos agendamentos concluídos dentro da janela.
// Diária = mesmo dia de calendário que now; mensal = últimos 30 dias.
func Revenue(list []models.Appointment, window RevenueWindow, now time.Time) float64 {
	loc := now.Location()

	var cutoff time.Time
	if window == RevenueMonthly {
		c := now.AddDate(0, 0, -30)
		cutoff = time.Date(c.Year(), c.Month(), c.Day(), 0, 0, 0, 0, loc)
	}

	var total float64

	for _, ap := range list {
		if ap.Status != string(StatusCompleted) {
			continue
		}

		d, err := dateutil.ParseLocalDate(ap.AppointmentDate, loc)
		if err != nil {
			continue
		}

		switch window {
		case RevenueDaily:
			if !dateutil.IsSameDay(d, now) {
				continue
			}
		case RevenueMonthly:
			if d.Before(cutoff) || d.After(dateutil.EndOfDay(now)) {
				continue
			}
		}

		total += ap.TotalPrice.Float64()
	}

	return total
}
