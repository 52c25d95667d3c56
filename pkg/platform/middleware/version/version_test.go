package version

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"unistats/pkg/domain"
	"unistats/pkg/requestcontext"
)

func TestExtractVersion(t *testing.T) {
	var got domain.APIVersion
	h := ExtractVersion(domain.APIVersionV1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = requestcontext.APIVersion(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/admissions", nil))

	assert.Equal(t, domain.APIVersionV1, got)
	assert.Equal(t, "v1", rr.Header().Get(VersionHeader))
}
