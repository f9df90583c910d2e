package zenity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArgString(t *testing.T) {
	tests := []struct {
		name string
		arg  Arg
		want string
	}{
		{
			name: "bare flag",
			arg:  NewFlag("no-wrap"),
			want: "--no-wrap",
		},
		{
			name: "bare flag with existing prefix",
			arg:  NewFlag("--no-wrap"),
			want: "--no-wrap",
		},
		{
			name: "name and value",
			arg:  NewArg("separator", ":"),
			want: "--separator=:",
		},
		{
			name: "name with existing prefix and value",
			arg:  NewArg("--separator", ":"),
			want: "--separator=:",
		},
		{
			name: "empty value is kept",
			arg:  NewArg("entry-text", ""),
			want: "--entry-text=",
		},
		{
			name: "value may contain equals",
			arg:  NewArg("file-filter", "Images | *.png"),
			want: "--file-filter=Images | *.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.arg.String())
		})
	}
}

func TestArgStringNeverDoublesPrefix(t *testing.T) {
	names := []string{"x", "--x", "timeout", "--timeout", "--", ""}
	for _, name := range names {
		require.False(t, strings.HasPrefix(NewFlag(name).String(), "----"),
			"doubled prefix for name %q", name)
		require.False(t, strings.HasPrefix(NewArg(name, "v").String(), "----"),
			"doubled prefix for name %q", name)
	}
}
