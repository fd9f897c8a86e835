package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"folio/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	bookPath   string
}

func setupCLITestEnv(t *testing.T, llmURL string) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	cfg := fmt.Sprintf(`[paths]
data_dir = %q
log_dir = %q

[llm]
api_key = "test-key"
base_url = %q
model = "test-model"

[logging]
format = "json"
level = "warn"
`, filepath.Join(base, "data"), filepath.Join(base, "logs"), llmURL)
	if err := os.WriteFile(configPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	bookPath := filepath.Join(base, "book.epub")
	if err := os.WriteFile(bookPath, testsupport.SimpleEPUB(t), 0o644); err != nil {
		t.Fatalf("write book: %v", err)
	}

	return &cliTestEnv{baseDir: base, configPath: configPath, bookPath: bookPath}
}

func runCommand(t *testing.T, env *cliTestEnv, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func newStubLLMServer(t *testing.T, response string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": response}},
			},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestParseCommand(t *testing.T) {
	env := setupCLITestEnv(t, "http://127.0.0.1:0")

	out, err := runCommand(t, env, "parse", env.bookPath)
	if err != nil {
		t.Fatalf("parse: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Test Book") {
		t.Fatalf("expected title in output:\n%s", out)
	}
	if !strings.Contains(out, "chapter1.xhtml") || !strings.Contains(out, "chapter2.xhtml") {
		t.Fatalf("expected spine entries in output:\n%s", out)
	}
}

func TestParseCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t, "http://127.0.0.1:0")

	out, err := runCommand(t, env, "parse", env.bookPath, "--json")
	if err != nil {
		t.Fatalf("parse --json: %v\n%s", err, out)
	}
	var payload struct {
		Metadata struct {
			Title string
		}
		Spine []struct {
			Href string
		}
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if payload.Metadata.Title != "Test Book" || len(payload.Spine) != 2 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestTOCCommand(t *testing.T) {
	env := setupCLITestEnv(t, "http://127.0.0.1:0")

	out, err := runCommand(t, env, "toc", env.bookPath)
	if err != nil {
		t.Fatalf("toc: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Chapter One") || !strings.Contains(out, "Chapter Two") {
		t.Fatalf("expected toc labels:\n%s", out)
	}
}

func TestSummarizeAndSummariesCommands(t *testing.T) {
	server := newStubLLMServer(t, "A concise stubbed summary.")
	env := setupCLITestEnv(t, server.URL)

	out, err := runCommand(t, env, "summarize", env.bookPath, "--chapters", "1")
	if err != nil {
		t.Fatalf("summarize: %v\n%s", err, out)
	}
	if !strings.Contains(out, "A concise stubbed summary.") {
		t.Fatalf("expected summary text:\n%s", out)
	}
	if !strings.Contains(out, "Book ID: ") {
		t.Fatalf("expected book id in output:\n%s", out)
	}
	bookID := strings.TrimSpace(strings.Split(strings.Split(out, "Book ID: ")[1], "\n")[0])

	out, err = runCommand(t, env, "summaries", bookID)
	if err != nil {
		t.Fatalf("summaries: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Chapter One") || !strings.Contains(out, "test-model") {
		t.Fatalf("expected stored summary row:\n%s", out)
	}

	out, err = runCommand(t, env, "summaries", bookID, "--json")
	if err != nil {
		t.Fatalf("summaries --json: %v\n%s", err, out)
	}
	var rows []struct {
		ChapterIndex int
		Summary      string
	}
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if len(rows) != 1 || rows[0].Summary != "A concise stubbed summary." {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestSummarizeRequiresConfiguredLLM(t *testing.T) {
	env := setupCLITestEnv(t, "http://127.0.0.1:0")
	// Rewrite the config without credentials.
	cfg := fmt.Sprintf("[paths]\ndata_dir = %q\nlog_dir = %q\n",
		filepath.Join(env.baseDir, "data"), filepath.Join(env.baseDir, "logs"))
	if err := os.WriteFile(env.configPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := runCommand(t, env, "summarize", env.bookPath); err == nil {
		t.Fatal("expected configuration error")
	}
}

func TestCacheCleanupCommand(t *testing.T) {
	env := setupCLITestEnv(t, "http://127.0.0.1:0")

	out, err := runCommand(t, env, "cache", "cleanup", "--days", "30")
	if err != nil {
		t.Fatalf("cache cleanup: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Removed 0") {
		t.Fatalf("expected removal count:\n%s", out)
	}
}

func TestConfigInitCommand(t *testing.T) {
	env := setupCLITestEnv(t, "http://127.0.0.1:0")
	target := filepath.Join(env.baseDir, "fresh-config.toml")

	out, err := runCommand(t, env, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected sample config at %s: %v", target, err)
	}

	if _, err := runCommand(t, env, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error without --overwrite")
	}
	if _, err := runCommand(t, env, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}
