package cache

import (
	"context"
	"time"
)

// Store é o cache de respostas de leitura. Chave = assinatura da request,
// valor = corpo bruto. Existe para cortar leituras redundantes dentro de
// uma sessão, não para corretude: perder uma entrada nunca é erro.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	DeletePrefix(ctx context.Context, prefix string)
}
