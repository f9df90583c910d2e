package zenity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeRunner records the spawn request and hands back a canned result.
type fakeRunner struct {
	command string
	args    []string
	result  rawResult
	err     error
}

func (f *fakeRunner) run(command string, args []string) (rawResult, error) {
	f.command = command
	f.args = args
	return f.result, f.err
}

func TestShowClassification(t *testing.T) {
	tests := []struct {
		name        string
		result      rawResult
		wantResp    Response
		wantContent *string
		wantRaw     *string
	}{
		{
			name:     "exit 0 empty stdout is affirmed without content",
			result:   rawResult{exitCode: 0},
			wantResp: ResponseAffirmed,
		},
		{
			name:        "exit 0 with stdout is affirmed with content",
			result:      rawResult{exitCode: 0, stdout: []byte("Custom Ok\n")},
			wantResp:    ResponseAffirmed,
			wantContent: ptr("Custom Ok"),
		},
		{
			name:     "exit 1 empty stdout is rejected without content",
			result:   rawResult{exitCode: 1},
			wantResp: ResponseRejected,
		},
		{
			name:     "exit 256 empty stdout is rejected without content",
			result:   rawResult{exitCode: 256},
			wantResp: ResponseRejected,
		},
		{
			name:     "exit 1 with stdout is rejected with raw content",
			result:   rawResult{exitCode: 1, stdout: []byte("Nope\n")},
			wantResp: ResponseRejected,
			wantRaw:  ptr("Nope"),
		},
		{
			name:     "exit 256 with stdout is rejected with raw content",
			result:   rawResult{exitCode: 256, stdout: []byte("Nope\n")},
			wantResp: ResponseRejected,
			wantRaw:  ptr("Nope"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := &fakeRunner{result: tt.result}
			out, err := NewInfo().WithText("Hello").Dialog().withRunner(run).Show()

			require.NoError(t, err)
			require.Equal(t, tt.wantResp, out.Response)
			require.Equal(t, tt.wantContent, out.Content)
			require.Equal(t, tt.wantRaw, out.Raw)
		})
	}
}

func TestShowUnknownExitCode(t *testing.T) {
	run := &fakeRunner{result: rawResult{
		exitCode: 42,
		stdout:   []byte("something\n"),
		stderr:   []byte("Gtk-WARNING: ouch"),
	}}

	out, err := NewInfo().Dialog().withRunner(run).Show()

	require.NoError(t, err, "unrecognized exit codes are results, not errors")
	require.Equal(t, ResponseUnknown, out.Response)
	require.Equal(t, 42, out.ExitCode)
	require.Equal(t, "something", out.Stdout)
	require.Equal(t, "Gtk-WARNING: ouch", out.Stderr)
}

func TestShowClassificationIsDeterministic(t *testing.T) {
	result := rawResult{exitCode: 1, stdout: []byte("Maybe")}

	first, err := NewInfo().Dialog().withRunner(&fakeRunner{result: result}).Show()
	require.NoError(t, err)
	second, err := NewInfo().Dialog().withRunner(&fakeRunner{result: result}).Show()
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestShowInvalidUTF8(t *testing.T) {
	run := &fakeRunner{result: rawResult{stdout: []byte{0xff, 0xfe, 0xfd}}}

	_, err := NewInfo().Dialog().withRunner(run).Show()
	require.ErrorIs(t, err, ErrInvalidOutput)
}

func TestShowSpawnErrorPropagates(t *testing.T) {
	spawnErr := errors.New("fork failed")
	run := &fakeRunner{err: spawnErr}

	_, err := NewInfo().Dialog().withRunner(run).Show()
	require.ErrorIs(t, err, spawnErr)
}

func TestShowParseFailure(t *testing.T) {
	run := &fakeRunner{result: rawResult{exitCode: 0, stdout: []byte("not a number")}}

	_, err := NewScale().Dialog().withRunner(run).Show()

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "not a number", parseErr.Raw)
}

func TestShowParseSkippedOnRejection(t *testing.T) {
	// A custom cancel label is not fed through the kind parser.
	run := &fakeRunner{result: rawResult{exitCode: 1, stdout: []byte("not a number")}}

	out, err := NewScale().Dialog().withRunner(run).Show()
	require.NoError(t, err)
	require.Equal(t, ResponseRejected, out.Response)
	require.Equal(t, ptr("not a number"), out.Raw)
}

func TestShowUsesConfiguredCommand(t *testing.T) {
	run := &fakeRunner{result: rawResult{exitCode: 0}}

	_, err := NewInfo().Dialog().WithCommand("/opt/zenity/bin/zenity").withRunner(run).Show()
	require.NoError(t, err)
	require.Equal(t, "/opt/zenity/bin/zenity", run.command)

	_, err = NewInfo().Dialog().withRunner(run).Show()
	require.NoError(t, err)
	require.Equal(t, "zenity", run.command)
}

func TestExtraDialogShow(t *testing.T) {
	tests := []struct {
		name     string
		result   rawResult
		wantResp Response
		check    func(t *testing.T, out Outcome[string])
	}{
		{
			name:     "rejection matching the label becomes extra button",
			result:   rawResult{exitCode: 1, stdout: []byte("Maybe\n")},
			wantResp: ResponseExtraButton,
			check: func(t *testing.T, out Outcome[string]) {
				require.Equal(t, "Maybe", out.Label)
				require.Nil(t, out.Raw)
			},
		},
		{
			name:     "rejection with other text stays rejected",
			result:   rawResult{exitCode: 1, stdout: []byte("No thanks\n")},
			wantResp: ResponseRejected,
			check: func(t *testing.T, out Outcome[string]) {
				require.Equal(t, ptr("No thanks"), out.Raw)
			},
		},
		{
			name:     "empty rejection stays rejected",
			result:   rawResult{exitCode: 256},
			wantResp: ResponseRejected,
		},
		{
			name:     "affirmed passes through",
			result:   rawResult{exitCode: 0, stdout: []byte("yes\n")},
			wantResp: ResponseAffirmed,
			check: func(t *testing.T, out Outcome[string]) {
				require.Equal(t, ptr("yes"), out.Content)
			},
		},
		{
			name:     "unknown passes through",
			result:   rawResult{exitCode: 7, stderr: []byte("boom")},
			wantResp: ResponseUnknown,
			check: func(t *testing.T, out Outcome[string]) {
				require.Equal(t, 7, out.ExitCode)
				require.Equal(t, "boom", out.Stderr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := &fakeRunner{result: tt.result}
			out, err := NewQuestion().WithText("Sure?").Dialog().
				WithExtraButton("Maybe").
				withRunner(run).
				Show()

			require.NoError(t, err)
			require.Equal(t, tt.wantResp, out.Response)
			require.Contains(t, run.args, "--extra-button=Maybe")
			if tt.check != nil {
				tt.check(t, out)
			}
		})
	}
}

func TestExtraDialogSettersReachInner(t *testing.T) {
	run := &fakeRunner{result: rawResult{exitCode: 0}}

	_, err := NewInfo().Dialog().
		WithExtraButton("More").
		WithTitle("T").
		WithWidth(300).
		withRunner(run).
		Show()

	require.NoError(t, err)
	require.Equal(t, []string{"--info", "--title=T", "--width=300", "--extra-button=More"}, run.args)
}

func ptr[T any](v T) *T {
	return &v
}
