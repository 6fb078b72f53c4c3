package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedanta-labs/vichara-cli/internal/core/domain"
)

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
}

func TestAskCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAskCmd_HasTopKFlag(t *testing.T) {
	flag := askCmd.Flags().Lookup("top-k")
	require.NotNil(t, flag, "top-k flag should exist")
	assert.Equal(t, "k", flag.Shorthand)
}

func TestAskCmd_RendersAnswer(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "Should I tell my friend the truth?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Recommendation")
	assert.Contains(t, out, "Principles (retrieved)")
	assert.Contains(t, out, "Options")
	assert.Contains(t, out, "Trade-offs")
	assert.Contains(t, out, "Citations")
	assert.Contains(t, out, "Confidence (rough):")
}

func TestAskCmd_RiskyQueryRefused(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "is this illegal?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	// A refusal is policy, not a failure.
	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, domain.RefusalMessage)
	assert.NotContains(t, out, "Citations")
}

func TestAskCmd_BlankQuestion(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "   "})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "type a question first")
}

func TestAskCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "--json", "Should I tell the truth?"})
	defer func() {
		rootCmd.SetArgs(nil)
		askJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "\"recommendation\"")
	assert.Contains(t, out, "\"confidence\"")
	assert.Contains(t, out, "\"citations\"")
}

func TestAskCmd_ServiceError(t *testing.T) {
	oldService := askService
	askService = &mockAskServiceError{}
	defer func() {
		askService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "anything"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ask failed")
}

func TestAskCmd_MissingCorpusIsFatal(t *testing.T) {
	oldCorpus := flagCorpus
	flagCorpus = filepath.Join(t.TempDir(), "missing.jsonl")
	defer func() {
		flagCorpus = oldCorpus
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "--config-dir", t.TempDir(), "a question"})
	defer func() {
		rootCmd.SetArgs(nil)
		flagConfigDir = ""
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCorpusMissing)
}

func TestAskCmd_EndToEndWithCorpusFile(t *testing.T) {
	dir := t.TempDir()
	corpusPath := filepath.Join(dir, "corpus.jsonl")
	content := `{"id":"p-1","source":"Text One","theme":["truth"],"passage":"Speak the truth and practice virtue."}
{"id":"p-2","source":"Text Two","theme":["duty"],"passage":"Do your duty without attachment."}
`
	require.NoError(t, os.WriteFile(corpusPath, []byte(content), 0600))

	oldCorpusFlag := flagCorpus
	flagCorpus = corpusPath
	defer func() {
		flagCorpus = oldCorpusFlag
		askService = nil
		retrievalService = nil
		guardService = nil
		corpusStore = nil
		configStore = nil
		flagConfigDir = ""
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "--config-dir", dir, "should I speak the truth?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "p-1 — Text One")
}
