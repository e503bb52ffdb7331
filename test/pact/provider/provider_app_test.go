//go:build pact
// +build pact

package provider_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	pacttest "github.com/Apurer/go-gin-shop-services/test/pact"
)

// swappableApp serves whichever router was installed last, so provider states can start from a clean store.
type swappableApp struct {
	router atomic.Pointer[gin.Engine]
	server *httptest.Server
}

func newSwappableApp(t testing.TB) *swappableApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app := &swappableApp{}
	app.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.router.Load().ServeHTTP(w, r)
	}))
	t.Cleanup(app.server.Close)
	return app
}

func (a *swappableApp) install(router *gin.Engine) {
	a.router.Store(router)
}

func requirePactFile(t *testing.T, provider string) string {
	t.Helper()
	pactFile := filepath.ToSlash(pacttest.PactFile(t, provider))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}
	return pactFile
}
