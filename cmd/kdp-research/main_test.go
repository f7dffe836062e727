package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/selivandex/kdp-autostudio/internal/adapters/config"
	"github.com/selivandex/kdp-autostudio/internal/research"
	"github.com/selivandex/kdp-autostudio/pkg/models"
)

// isolateEnv makes sure no real credentials or config files are picked up
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	for _, key := range []string{"OPENAI_API_KEY", "KDP_AI_OPENAI_API_KEY"} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
	t.Setenv("KDP_CONFIG_FILE", filepath.Join(dir, "config.json"))
	t.Setenv("KDP_LOGGING_LOG_LEVEL", "error")
	return dir
}

func TestRootCmd_RequiresKeywords(t *testing.T) {
	isolateEnv(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("expected error without --keywords")
	}
}

func TestRunResearch_MissingAPIKey(t *testing.T) {
	dir := isolateEnv(t)
	output := filepath.Join(dir, "output.json")

	err := runResearch(context.Background(), researchOptions{keywords: "gardening", output: output})
	if !errors.Is(err, config.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("no output must be written when configuration fails")
	}
}

func TestRunResearch_EmptyKeywords(t *testing.T) {
	isolateEnv(t)

	if err := runResearch(context.Background(), researchOptions{keywords: " , ", output: "unused.json"}); err == nil {
		t.Error("expected error for empty keyword list")
	}
}

func TestRunMetadata_MissingAPIKey(t *testing.T) {
	isolateEnv(t)

	err := runMetadata(context.Background(), metadataOptions{keyword: "chess", output: "unused.json"})
	if !errors.Is(err, config.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestRunMetadataBatch_NoApprovedIdeasSkipsSetup(t *testing.T) {
	dir := isolateEnv(t)
	from := filepath.Join(dir, "output.json")
	ideas := []models.ScoredIdea{{Keyword: "chess", Title: "Chess", Status: models.IdeaPending}}
	if err := research.WriteIdeas(from, ideas); err != nil {
		t.Fatal(err)
	}

	// no API key is configured, so reaching initApp would fail
	if err := runMetadata(context.Background(), metadataOptions{from: from, output: filepath.Join(dir, "metadata.json")}); err != nil {
		t.Fatalf("expected nothing to do, got %v", err)
	}
}

func TestRunMetadataBatch_ApprovedIdeaNeedsAPIKey(t *testing.T) {
	dir := isolateEnv(t)
	from := filepath.Join(dir, "output.json")
	ideas := []models.ScoredIdea{{Keyword: "chess", Title: "Chess", Status: models.IdeaApproved}}
	if err := research.WriteIdeas(from, ideas); err != nil {
		t.Fatal(err)
	}

	err := runMetadata(context.Background(), metadataOptions{from: from, output: filepath.Join(dir, "metadata.json")})
	if !errors.Is(err, config.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}

	got, err := research.ReadIdeas(from)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Status != models.IdeaApproved {
		t.Errorf("status must stay approved when nothing was generated, got %q", got[0].Status)
	}
}

func TestMetadataCmd_KeywordAndFromExclusive(t *testing.T) {
	isolateEnv(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"metadata", "--keyword", "chess", "--from", "output.json"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("expected error when both --keyword and --from are given")
	}
}
