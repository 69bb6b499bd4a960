package cli

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dicky/portfolio/internal/infrastructure/auth"
	"github.com/dicky/portfolio/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd(io.Discard)
	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "token")
	assert.Contains(t, names, "render")
	assert.Contains(t, names, "chat")
	assert.Contains(t, names, "migrate")
}

func TestTokenCmd_WithSecret(t *testing.T) {
	const secret = "0123456789abcdef0123456789abcdef"

	out, err := run(t, "", "token", "--secret", secret, "--subject", "dicky", "--ttl", "1h")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "expires "))

	svc := auth.NewJWTService(config.JWTConfig{Secret: secret, Issuer: defaultIssuer, TokenExpiration: time.Hour})
	claims, err := svc.ValidateAdminToken(lines[0])
	require.NoError(t, err)
	assert.Equal(t, "dicky", claims.Subject)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
}

func TestTokenCmd_RejectsArgs(t *testing.T) {
	_, err := run(t, "", "token", "extra")
	assert.Error(t, err)
}

func TestRenderCmd(t *testing.T) {
	markup := "### Layanan\n* **Backend** API\n* Frontend\n\n| Paket | Harga |\n| --- | --- |\n| Basic | 1jt |\nTerima kasih"

	t.Run("stdin", func(t *testing.T) {
		out, err := run(t, markup, "render")
		require.NoError(t, err)
		assert.Contains(t, out, "Layanan")
		assert.Contains(t, out, "•")
		assert.Contains(t, out, "Backend")
		assert.Contains(t, out, "Basic")
		assert.Contains(t, out, "Terima kasih")
		assert.NotContains(t, out, "###")
		assert.NotContains(t, out, "**")
	})

	t.Run("file as json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reply.md")
		require.NoError(t, os.WriteFile(path, []byte(markup), 0o600))

		out, err := run(t, "", "render", "--json", path)
		require.NoError(t, err)
		kinds := make([]string, 0)
		for _, k := range gjson.Get(out, "#.kind").Array() {
			kinds = append(kinds, k.String())
		}
		require.NotEmpty(t, kinds)
		assert.Equal(t, "heading", kinds[0])
		assert.Contains(t, kinds, "list")
		assert.Contains(t, kinds, "table")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "", "render", filepath.Join(t.TempDir(), "nope.md"))
		assert.Error(t, err)
	})
}

func TestChatCmd(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, chatPath, r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		gotPrompt = gjson.GetBytes(body, "messages.0.content").String()
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "### Halo\n* **Go** backend")
	}))
	defer srv.Close()

	out, err := run(t, "", "chat", "--server", srv.URL+"/", "Apa layananmu?")
	require.NoError(t, err)
	assert.Equal(t, "Apa layananmu?", gotPrompt)
	assert.Contains(t, out, "### Halo")

	out, err = run(t, "", "chat", "--render", "--server", srv.URL, "Apa layananmu?")
	require.NoError(t, err)
	assert.NotContains(t, out, "###")
	assert.Contains(t, out, "Halo")
}

func TestChatCmd_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":"Server Configuration Error: API Key missing"}`)
	}))
	defer srv.Close()

	_, err := run(t, "", "chat", "--server", srv.URL, "halo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "API Key missing")
}
