package models

import (
	"encoding/json"
	"strconv"
)

// Money é um valor monetário vindo do backend. O backend ora envia número,
// ora string numérica, ora null; qualquer coisa fora disso vira 0.
type Money float64

func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)

	if s == "null" {
		*m = 0
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*m = Money(f)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if f, err := strconv.ParseFloat(str, 64); err == nil {
			*m = Money(f)
			return nil
		}
	}

	*m = 0
	return nil
}

func (m Money) Float64() float64 {
	return float64(m)
}
