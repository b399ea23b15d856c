package backend

import (
	"encoding/json"
	"errors"
)

// ErrUnknownShape marca um corpo de lista que não bate com nenhum
// formato conhecido. O caller degrada para coleção vazia e só loga.
var ErrUnknownShape = errors.New("unrecognized list response shape")

// UnmarshalList normaliza os três formatos de lista que o backend emite:
// array puro, envelope paginado {results: [...]} e envelope {data: [...]}.
// out deve ser um *[]T.
func UnmarshalList(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err == nil {
		return nil
	}

	var envelope struct {
		Results json.RawMessage `json:"results"`
		Data    json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return ErrUnknownShape
	}

	if len(envelope.Results) > 0 {
		if err := json.Unmarshal(envelope.Results, out); err == nil {
			return nil
		}
	}

	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err == nil {
			return nil
		}
	}

	return ErrUnknownShape
}
