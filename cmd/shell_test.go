package main

import (
	"bytes"
	"context"
	"loanbook/internal/config"
	"loanbook/internal/logic"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Storage.AddressBookPath = filepath.Join(dir, "addressbook.json")
	cfg.Storage.UserPrefsPath = filepath.Join(dir, "preferences.json")
	cfg.Shell.Prompt = "> "

	return cfg
}

func TestShell_Session(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	l, err := setupLogic(ctx, cfg, logic.Options{})
	require.NoError(t, err)

	in := strings.NewReader("markloan 9\nview 1\nmarkloan 1\nbogus\nexit\nlist\n")
	var out bytes.Buffer
	runShell(ctx, l, in, &out, cfg.Shell.Prompt)
	require.NoError(t, l.Shutdown(ctx))

	text := out.String()
	require.Contains(t, text, "1. Alex Yeoh; Phone: 87438807")
	require.Contains(t, text, "No loan has been found for loan number: 9")
	require.Contains(t, text, "Loans of Alex Yeoh:")
	require.Contains(t, text, "Loan marked.\nLoan: $50.00 for lunch (paid)")
	require.Contains(t, text, "Unknown command")
	require.Contains(t, text, "Exiting Address Book as requested ...")
	require.NotContains(t, text, "Listed all persons", "nothing runs after exit")

	_, err = os.Stat(cfg.Storage.AddressBookPath)
	require.NoError(t, err, "the marked loan was saved")

	prefs := readPrefs(ctx, cfg)
	require.Equal(t, cfg.Storage.AddressBookPath, prefs.AddressBookFilePath)
	require.Equal(t, "Alex Yeoh", string(prefs.ViewedPerson))

	// the next session restores the saved state
	l, err = setupLogic(ctx, cfg, logic.Options{})
	require.NoError(t, err)
	p, ok := l.PersonInView()
	require.True(t, ok)
	require.Equal(t, "Alex Yeoh", string(p.Name))
	require.Equal(t, "paid", l.SortedLoanList()[1].Status())
}

func TestShell_EndOfInput(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	l, err := setupLogic(ctx, cfg, logic.Options{DryRun: true})
	require.NoError(t, err)

	var out bytes.Buffer
	runShell(ctx, l, strings.NewReader("delete 1\n"), &out, cfg.Shell.Prompt)
	require.Contains(t, out.String(), "Deleted Person: Alex Yeoh")

	_, err = os.Stat(cfg.Storage.AddressBookPath)
	require.ErrorIs(t, err, os.ErrNotExist, "dry run never writes")
}

func TestSeed(t *testing.T) {
	cfg := testConfig(t)

	cmd := seedCommand(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), cfg.Storage.AddressBookPath)

	cmd = seedCommand(cfg)
	cmd.SetArgs([]string{})
	require.ErrorContains(t, cmd.Execute(), "already exists")

	cmd = seedCommand(cfg)
	cmd.SetArgs([]string{"--force"})
	require.NoError(t, cmd.Execute())
}

func TestConfigArgs(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"shell"}, nil},
		{[]string{"shell", "-c", "my.yml"}, []string{"-c", "my.yml"}},
		{[]string{"--config", "my.yml", "exec", "list"}, []string{"-c", "my.yml"}},
		{[]string{"exec", "--config=my.yml"}, []string{"-c", "my.yml"}},
		{[]string{"-c=my.yml"}, []string{"-c=my.yml"}},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, configArgs(tt.args), tt.args)
	}
}
