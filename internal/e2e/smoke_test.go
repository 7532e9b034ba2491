package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	backend := newBackend(t)

	stdout, stderr, err := runTSL(t, binaryPath, home, backend.URL, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, stdout)

	stdout, stderr, err = runTSL(t, binaryPath, home, backend.URL,
		"auth", "login",
		"--email", "grace@example.com",
		"--password", "secret",
	)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Signed in as Grace Hopper")

	stdout, stderr, err = runTSL(t, binaryPath, home, backend.URL, "auth", "whoami", "--refresh")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Grace Hopper (me)")

	_, err = os.Stat(filepath.Join(home, ".techsillies", "session.toml"))
	require.NoError(t, err)
}

func TestSmokeSignedOutHint(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	backend := newBackend(t)

	_, stderr, err := runTSL(t, binaryPath, home, backend.URL, "auth", "whoami")
	require.Error(t, err)
	assert.Contains(t, stderr, "tsl auth login")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "tsl-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/tsl")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build tsl binary: %s", string(output))
	return binaryPath
}

func runTSL(t *testing.T, binaryPath, home, baseURL string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = home
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"TSL_API_BASE_URL="+baseURL,
		"TSL_CREDENTIALS_BACKEND=file",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	user := map[string]any{"_id": "me", "firstName": "Grace", "lastName": "Hopper"}
	router := mux.NewRouter()
	router.HandleFunc("/signin", func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "tok-e2e", Path: "/"})
		_ = json.NewEncoder(w).Encode(map[string]any{"user": user})
	}).Methods(http.MethodPost)
	router.HandleFunc("/profile/view", func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("token"); err != nil || cookie.Value != "tok-e2e" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"user": user})
	}).Methods(http.MethodGet)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}
