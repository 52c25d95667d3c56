// Package version tags requests with the API version of the route group serving them.
package version

import (
	"net/http"

	"unistats/pkg/domain"
	"unistats/pkg/requestcontext"
)

// VersionHeader echoes the serving API version back to clients.
const VersionHeader = "X-API-Version"

// ExtractVersion marks every request under a chi subrouter with version.
//
//	r.Route("/v1", func(v1 chi.Router) {
//	    v1.Use(version.ExtractVersion(domain.APIVersionV1))
//	})
func ExtractVersion(version domain.APIVersion) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(VersionHeader, version.String())
			ctx := requestcontext.WithAPIVersion(r.Context(), version)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
