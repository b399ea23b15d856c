package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid confere se o domínio do e-mail existe de verdade:
// registro MX ou, na falta dele, qualquer endereço resolvível. Sem a
// parte do domínio o e-mail já reprova direto.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	host := email[at+1:]

	if mx, err := net.LookupMX(host); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(host); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
