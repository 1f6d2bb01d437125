// Package device parses the caller's User-Agent into request-scoped device info.
package device

import (
	"net/http"

	"github.com/mssola/useragent"

	"caseregistry/pkg/requestcontext"
)

// Parse summarizes a User-Agent string.
func Parse(ua string) requestcontext.DeviceInfo {
	if ua == "" {
		return requestcontext.DeviceInfo{}
	}
	parsed := useragent.New(ua)
	browser, _ := parsed.Browser()
	return requestcontext.DeviceInfo{
		Browser: browser,
		OS:      parsed.OS(),
		Mobile:  parsed.Mobile(),
		Bot:     parsed.Bot(),
	}
}

// Middleware stores the parsed device of the request in its context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithDevice(r.Context(), Parse(r.Header.Get("User-Agent")))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
