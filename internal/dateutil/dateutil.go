package dateutil

import (
	"strconv"
	"strings"
	"time"
)

// ParseLocalDate interpreta "YYYY-MM-DD" como uma data de calendário na
// location informada. Um time.Parse direto interpretaria a string como
// meia-noite UTC, deslocando o dia exibido em fusos negativos; montar a
// data a partir dos componentes evita essa classe de bug inteira.
// Strings fora do formato de 3 partes caem num parse genérico.
func ParseLocalDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) == 3 {
		year, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(parts[1])
		day, err3 := strconv.Atoi(parts[2])
		if err1 == nil && err2 == nil && err3 == nil {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), nil
		}
	}

	return time.ParseInLocation("2006-01-02", s, loc)
}

// IsSameDay compara só ano, mês e dia.
func IsSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() &&
		a.Month() == b.Month() &&
		a.Day() == b.Day()
}

// EndOfDay leva a data para 23:59:59.999, para que um limite superior
// de filtro no mesmo dia seja inclusivo.
func EndOfDay(t time.Time) time.Time {
	return time.Date(
		t.Year(), t.Month(), t.Day(),
		23, 59, 59, int(999*time.Millisecond),
		t.Location(),
	)
}
