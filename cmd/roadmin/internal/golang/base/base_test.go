package base

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_Name(t *testing.T) {
	tests := []struct {
		usage    string
		wantLong string
		want     string
	}{
		{"roadmin", "", ""},
		{"roadmin show [flags] <key> <universeId> <datastore>", "show", "show"},
		{"roadmin key add <universeId>", "key add", "add"},
		{"roadmin limits new [flags] <file>", "limits new", "new"},
	}
	for _, tt := range tests {
		t.Run(tt.usage, func(t *testing.T) {
			c := &Command{UsageLine: tt.usage}
			assert.Equal(t, tt.wantLong, c.LongName())
			assert.Equal(t, tt.want, c.Name())
		})
	}
}

func TestSetExitStatus(t *testing.T) {
	t.Cleanup(func() { exitStatus = SNoError })
	SetExitStatus(SUserError)
	SetExitStatus(SInvalidParameters) // lower, ignored
	assert.Equal(t, SUserError, ExitStatus())
}

func TestYesNoWR(t *testing.T) {
	type args struct {
		r       io.Reader
		message string
	}
	tests := []struct {
		name  string
		args  args
		want  bool
		wantW string
	}{
		{
			name: "yes",
			args: args{
				r:       strings.NewReader("y\n"),
				message: "message",
			},
			want:  true,
			wantW: "message? (y/N) ",
		},
		{
			name: "no",
			args: args{
				r:       strings.NewReader("n\n"),
				message: "message",
			},
			want:  false,
			wantW: "message? (y/N) ",
		},
		{
			name: "any other key",
			args: args{
				r:       strings.NewReader("x\nn\n"),
				message: "message",
			},
			want:  false,
			wantW: "message? (y/N) Please answer yes or no and press Enter or Return.\nmessage? (y/N) ",
		},
		{
			name: "eof",
			args: args{
				r:       strings.NewReader(""),
				message: "message",
			},
			want:  false,
			wantW: "message? (y/N) ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &bytes.Buffer{}
			if got := YesNoWR(w, tt.args.r, tt.args.message); got != tt.want {
				t.Errorf("YesNoWR() = %v, want %v", got, tt.want)
			}
			assert.Equal(t, tt.wantW, w.String())
		})
	}
}
