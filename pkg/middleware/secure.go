package middleware

import (
	"net/http"

	"github.com/unrolled/secure"
	"github.com/vfg2006/campaign-tracker-api/pkg/log"
)

// SecureHeaders adiciona os cabeçalhos de segurança padrão. A API só
// devolve JSON, então a CSP bloqueia qualquer conteúdo ativo.
func SecureHeaders() func(http.Handler) http.Handler {
	return secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
		IsDevelopment:         log.IsDevelopment(),
	}).Handler
}
