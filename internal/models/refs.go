package models

import "encoding/json"

// Ref é uma referência para outra entidade. O backend envia ora o id puro,
// ora o objeto aninhado {id, name, ...}; normalizamos os dois na borda.
type Ref struct {
	ID   uint
	Name string
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	var id uint
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		return nil
	}

	var obj struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		r.ID = obj.ID
		r.Name = obj.Name
		return nil
	}

	*r = Ref{}
	return nil
}

// MarshalJSON emite apenas o id: é o formato que o backend aceita
// em create/update.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// IDList é uma lista de referências: aceita [1, 2] ou [{id: 1}, {id: 2}].
type IDList []uint

func (l *IDList) UnmarshalJSON(data []byte) error {
	var ids []uint
	if err := json.Unmarshal(data, &ids); err == nil {
		*l = ids
		return nil
	}

	var objs []struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(data, &objs); err == nil {
		out := make(IDList, 0, len(objs))
		for _, o := range objs {
			out = append(out, o.ID)
		}
		*l = out
		return nil
	}

	*l = IDList{}
	return nil
}

func (l IDList) Contains(id uint) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}
