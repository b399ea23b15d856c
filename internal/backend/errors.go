package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// TransportError cobre backend inalcançável, timeout e afins. O caller
// decide a recuperação local (fallback otimista, coleção vazia).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// ValidationError é o corpo estruturado de erro do backend (ex.: conflito
// detectado do lado do servidor). Não é recuperado: a primeira mensagem
// sobe verbatim para o formulário.
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewConflictError embala a mensagem de conflito no mesmo canal dos
// erros de validação: o formulário mostra os dois do mesmo jeito.
func NewConflictError(message string) error {
	return &ValidationError{Status: 409, Message: message}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func ValidationMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return ""
}

// firstMessage extrai a primeira mensagem de erro dos formatos
// conhecidos: non_field_errors, array, objeto chaveado ou string pura.
func firstMessage(body []byte) string {
	var asString string
	if err := json.Unmarshal(body, &asString); err == nil {
		return asString
	}

	var asArray []string
	if err := json.Unmarshal(body, &asArray); err == nil && len(asArray) > 0 {
		return asArray[0]
	}

	var asMap map[string]json.RawMessage
	if err := json.Unmarshal(body, &asMap); err == nil {
		if raw, ok := asMap["non_field_errors"]; ok {
			if msg := firstMessage(raw); msg != "" {
				return msg
			}
		}

		// Ordem estável para o restante das chaves.
		keys := make([]string, 0, len(asMap))
		for k := range asMap {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			if msg := firstMessage(asMap[k]); msg != "" {
				return msg
			}
		}
	}

	return ""
}
