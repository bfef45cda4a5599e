package spa_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"pet-web-api/internal/spa"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFrontend(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "static"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static", "app.js"), []byte("console.log(1)"), 0o644))
	return dir
}

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	body, _ := io.ReadAll(rec.Result().Body)
	return rec.Code, string(body)
}

func TestHandler_ServesExistingFile(t *testing.T) {
	h := spa.Handler(setupFrontend(t))

	st, body := get(t, h, "/static/app.js")
	assert.Equal(t, http.StatusOK, st)
	assert.Equal(t, "console.log(1)", body)
}

func TestHandler_FallsBackToIndex(t *testing.T) {
	h := spa.Handler(setupFrontend(t))

	// rota de cliente (não existe no disco) cai no index.html
	st, body := get(t, h, "/cadastro/novo")
	assert.Equal(t, http.StatusOK, st)
	assert.Equal(t, "<html>app</html>", body)

	// diretório também cai no index.html
	st, body = get(t, h, "/static")
	assert.Equal(t, http.StatusOK, st)
	assert.Equal(t, "<html>app</html>", body)
}

func TestHandler_BlocksTraversal(t *testing.T) {
	dir := setupFrontend(t)
	outside := filepath.Join(filepath.Dir(dir), "segredo.txt")
	require.NoError(t, os.WriteFile(outside, []byte("nope"), 0o644))

	h := spa.Handler(dir)

	st, body := get(t, h, "/../segredo.txt")
	assert.Equal(t, http.StatusOK, st)
	assert.NotContains(t, body, "nope")
}
