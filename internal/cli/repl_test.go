package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExec struct {
	calls []string
}

func (s *stubExec) Register(ctx context.Context) error     { s.calls = append(s.calls, "register"); return nil }
func (s *stubExec) Authenticate(ctx context.Context) error { s.calls = append(s.calls, "auth"); return nil }
func (s *stubExec) List(ctx context.Context) error         { s.calls = append(s.calls, "list"); return nil }
func (s *stubExec) DeleteAll(ctx context.Context) error    { s.calls = append(s.calls, "deleteall"); return nil }

func runWithInput(t *testing.T, input string) (*stubExec, *bytes.Buffer) {
	t.Helper()
	stub := &stubExec{}
	var out bytes.Buffer
	runMenu(context.Background(), bufio.NewReader(strings.NewReader(input)), &out, stub)
	return stub, &out
}

func TestRunMenu_DispatchesNumbers(t *testing.T) {
	stub, _ := runWithInput(t, "1\n2\n3\n4\n5\n")
	assert.Equal(t, []string{"register", "auth", "list", "deleteall"}, stub.calls)
}

func TestRunMenu_DispatchesWords(t *testing.T) {
	stub, _ := runWithInput(t, "register\nauth\nlist\ndeleteall\nexit\n")
	assert.Equal(t, []string{"register", "auth", "list", "deleteall"}, stub.calls)
}

func TestRunMenu_UnknownChoice(t *testing.T) {
	stub, out := runWithInput(t, "bogus\nexit\n")
	assert.Empty(t, stub.calls)
	assert.Contains(t, out.String(), "Invalid choice")
}

func TestRunMenu_ExitsOnEOF(t *testing.T) {
	stub, _ := runWithInput(t, "list\n")
	assert.Equal(t, []string{"list"}, stub.calls)
}

func TestRunMenu_IgnoresEmptyLines(t *testing.T) {
	stub, out := runWithInput(t, "\n\nexit\n")
	assert.Empty(t, stub.calls)
	assert.NotContains(t, out.String(), "Invalid choice")
}
