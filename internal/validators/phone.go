package validators

import (
	"fmt"
	"strings"
	"unicode"
)

// PhoneDigits remove máscara e mantém só os dígitos; é o formato
// que o backend armazena.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone aplica a máscara brasileira (DD) DDDDD-DDDD. Números de
// 10 dígitos (fixo) viram (DD) DDDD-DDDD; qualquer outro tamanho volta
// como veio.
func FormatPhone(phone string) string {
	digits := PhoneDigits(phone)

	switch len(digits) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:6], digits[6:])
	default:
		return phone
	}
}

// IsValidPhone aceita fixo (10) ou celular (11 dígitos).
func IsValidPhone(phone string) bool {
	n := len(PhoneDigits(phone))
	return n == 10 || n == 11
}
