package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "mdu.db"))
	t.Setenv("AUTH_JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("EXPORT_BUCKET", "")
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestImportThenStats(t *testing.T) {
	dir := setupEnv(t)
	csvPath := filepath.Join(dir, "enderecos.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("cidade,status\nRecife,Ativo\nOlinda,\n"), 0o600))

	out, err := execute(t, "", "import", csvPath)
	require.NoError(t, err)
	assert.Equal(t, "imported 2 of 2 records\n", out)

	out, err = execute(t, `[{"cidade":"Recife","projeto":"P1"}]`, "import", "-", "--format", "json", "--report")
	require.NoError(t, err)
	var report struct {
		Success bool `json:"success"`
		Data    struct {
			Imported int      `json:"imported"`
			IDs      []string `json:"ids"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Success)
	assert.Equal(t, 1, report.Data.Imported)
	assert.Len(t, report.Data.IDs, 1)

	out, err = execute(t, "", "stats")
	require.NoError(t, err)
	var stats struct {
		Success bool `json:"success"`
		Data    struct {
			Total     int            `json:"total"`
			PorCidade map[string]int `json:"porCidade"`
			PorStatus map[string]int `json:"porStatus"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 3, stats.Data.Total)
	assert.Equal(t, 2, stats.Data.PorCidade["Recife"])
	assert.Equal(t, 2, stats.Data.PorStatus["Não definido"])
}

func TestExportToFile(t *testing.T) {
	dir := setupEnv(t)
	_, err := execute(t, "cidade: Recife\n---\n", "import", "-", "-f", "yaml")
	require.Error(t, err, "a YAML stream of a mapping is not a list of records")

	_, err = execute(t, "- cidade: Recife\n- cidade: Olinda\n", "import", "-", "-f", "yml")
	require.NoError(t, err)

	out := filepath.Join(dir, "export.json")
	_, err = execute(t, "", "export", "--out", out)
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var addresses []map[string]any
	require.NoError(t, json.Unmarshal(raw, &addresses))
	require.Len(t, addresses, 2)
	assert.Equal(t, "Olinda", addresses[0]["cidade"], "newest first")
}

func TestGestaoSetAndGet(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "", "gestao", "set", "cidades", "Recife", "Olinda")
	require.NoError(t, err)

	out, err := execute(t, "", "gestao", "get")
	require.NoError(t, err)
	var got struct {
		Data map[string][]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []any{"Recife", "Olinda"}, got.Data["cidades"])
	assert.Equal(t, []any{}, got.Data["equipes"])
}

func TestBootstrapRequiresDynamoDB(t *testing.T) {
	setupEnv(t)
	_, err := execute(t, "", "bootstrap")
	assert.ErrorContains(t, err, "bootstrap requires STORE_DRIVER=dynamodb")
}

func TestMissingSecretFailsBeforeRunning(t *testing.T) {
	setupEnv(t)
	t.Setenv("AUTH_JWT_SECRET", "")
	_, err := execute(t, "", "stats")
	assert.ErrorContains(t, err, "invalid configuration")
}
