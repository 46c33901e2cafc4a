package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handrank/internal/config"
	"github.com/lox/handrank/internal/showdown"
	"github.com/lox/handrank/poker"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newTestApp(t *testing.T, stdin string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &App{
		Ctx:    context.Background(),
		Config: config.Default(),
		Logger: zerolog.New(zerolog.NewTestWriter(t)),
		In:     strings.NewReader(stdin),
		Out:    &out,
	}, &out
}

func outputLines(out *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestParseCommandLine(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--debug", "--no-color", "winners", "-w", "4", "AS KH QD 9S 7C", "2S 2H 3D 4S 6H"})
	require.NoError(t, err)
	assert.True(t, cli.Debug)
	assert.True(t, cli.NoColor)
	assert.Equal(t, 4, cli.Winners.Workers)
	assert.Equal(t, []string{"AS KH QD 9S 7C", "2S 2H 3D 4S 6H"}, cli.Winners.Hands)
}

func TestClassifyCmd(t *testing.T) {
	t.Parallel()

	app, out := newTestApp(t, "")
	cmd := &ClassifyCmd{Hands: []string{
		"AS KH QD 9S 7C",
		"KS KH 3D 3S 3H",
		"4S 5H 2D 3C AH",
		"9S 9H 4D 4S AH",
		"5S 5H 5D 5C 9H",
	}}
	require.NoError(t, cmd.Run(app))

	assert.Equal(t, []string{
		"AS KH QD 9S 7C  High Card  A K Q 9 7",
		"KS KH 3D 3S 3H  Full House  Threes full of Kings",
		"4S 5H 2D 3C AH  Straight  Five high",
		"9S 9H 4D 4S AH  Two Pair  Nines and Fours, A kicker",
		"5S 5H 5D 5C 9H  Four of a Kind  four Fives, 9 kicker",
	}, outputLines(out))
}

func TestClassifyCmdMalformed(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, "")
	err := (&ClassifyCmd{Hands: []string{"AS KH QD 9S 7C", "AS KH"}}).Run(app)
	require.ErrorIs(t, err, poker.ErrMalformedHand)
	assert.Contains(t, err.Error(), "hand 1")
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hand string
		want string
	}{
		{"6S 6H AD KS 4H", "pair of Sixes, kickers A K 4"},
		{"7S 7H 7D AS 2H", "three Sevens, kickers A 2"},
		{"TD JD QD KD AD", "Ace high"},
		{"2S 4S 6S 8S TS", "T 8 6 4 2"},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			t.Parallel()
			s, err := poker.Evaluate(tt.hand)
			require.NoError(t, err)
			assert.Equal(t, tt.want, describe(s))
		})
	}
}

func TestWinnersCmd(t *testing.T) {
	t.Parallel()

	app, out := newTestApp(t, "")
	cmd := &WinnersCmd{Hands: []string{"4D 5S 6S 8D 3C", "2S 4C 7S 9H 10H", "3S 4S 5D 6H JH", "3H 4H 5C 6C JD"}}
	require.NoError(t, cmd.Run(app))
	assert.Equal(t, []string{"3S 4S 5D 6H JH", "3H 4H 5C 6C JD"}, outputLines(out))
}

func TestWinnersCmdStdin(t *testing.T) {
	t.Parallel()

	stdin := "# river\n4S 5H 6D 7C 8H\n\n2S 3H 4D 5C 6H\n"
	for _, workers := range []int{1, 4} {
		app, out := newTestApp(t, stdin)
		require.NoError(t, (&WinnersCmd{Workers: workers}).Run(app))
		assert.Equal(t, []string{"4S 5H 6D 7C 8H"}, outputLines(out))
	}
}

func TestEncodeCmd(t *testing.T) {
	t.Parallel()

	app, out := newTestApp(t, "")
	require.NoError(t, (&EncodeCmd{Hand: "4S 5H 6D 7C 8H"}).Run(app))

	text := out.String()
	assert.Contains(t, text, "Score: Straight")
	assert.Contains(t, text, "A    K    Q    J    T    9    8    7    6    5    4    3    2")
	assert.Contains(t, text, "ranks  0    0    0    0    0    0    1    1    1    1    1    0    0")
	assert.Contains(t, text, "suits  1111")
	assert.Contains(t, text, "raw    5")
}

func TestDealCmdDeterministic(t *testing.T) {
	t.Parallel()

	seed := int64(7)
	deal := func() []string {
		app, out := newTestApp(t, "")
		require.NoError(t, (&DealCmd{Count: 12, Seed: &seed}).Run(app))
		return outputLines(out)
	}

	first := deal()
	require.Len(t, first, 12)
	for _, line := range first {
		_, err := poker.ParseHand(line)
		require.NoError(t, err, line)
	}
	assert.Equal(t, first, deal())

	app, _ := newTestApp(t, "")
	require.Error(t, (&DealCmd{Count: 0}).Run(app))
}

func TestShowdownCmd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "river.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[showdown]]
name  = "straights"
hands = ["4S 5H 6D 7C 8H", "2S 3H 4D 5C 6H"]
`), 0o644))

	app, out := newTestApp(t, "")
	app.Config.Showdown.ReportDir = filepath.Join(dir, "reports")
	require.NoError(t, (&ShowdownCmd{File: path}).Run(app))
	assert.Equal(t, "straights  4S 5H 6D 7C 8H\n", out.String())

	f, err := os.Open(filepath.Join(dir, "reports", "river.report.toml"))
	require.NoError(t, err)
	defer f.Close()
	rep, err := showdown.DecodeReport(f)
	require.NoError(t, err)
	require.Len(t, rep.Results, 1)
	assert.Equal(t, []string{"4S 5H 6D 7C 8H"}, rep.Results[0].Winners)
}

func TestShowdownCmdFailures(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[showdown]]
name  = "ok"
hands = ["AS KH QD 9S 7C"]

[[showdown]]
name  = "short"
hands = ["AS KH QD"]
`), 0o644))

	app, out := newTestApp(t, "")
	err := (&ShowdownCmd{File: path}).Run(app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 showdowns failed")
	assert.Contains(t, out.String(), `run_id = `)

	app, _ = newTestApp(t, "")
	err = (&ShowdownCmd{File: path, FailFast: true}).Run(app)
	require.ErrorIs(t, err, poker.ErrCardCount)
}

func TestNewAppAppliesFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handrank.hcl")
	require.NoError(t, os.WriteFile(path, []byte("workers = 3\nlog_level = \"warn\"\n"), 0o644))

	var logs bytes.Buffer
	app, err := NewApp(&CLI{Config: path, Debug: true, JSONLogs: true}, strings.NewReader(""), &bytes.Buffer{}, &logs)
	require.NoError(t, err)
	assert.Equal(t, 3, app.Config.Workers)
	assert.Equal(t, zerolog.DebugLevel, app.Config.Level())
	assert.Equal(t, config.FormatJSON, app.Config.LogFormat)
	assert.Contains(t, logs.String(), `"message":"Configuration loaded"`)

	_, err = NewApp(&CLI{Config: filepath.Join(t.TempDir(), "none.hcl")}, nil, nil, &bytes.Buffer{})
	require.NoError(t, err)
}
