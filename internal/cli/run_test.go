package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestMainHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "no args", args: []string{"ringctl"}},
		{name: "long flag", args: []string{"ringctl", "--help"}},
		{name: "short flag", args: []string{"ringctl", "-h"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer

			exitCode := Run(nil, &stdout, &stderr, testCase.args, nil, nil)

			if exitCode != 0 {
				t.Errorf("exit code = %d, want 0", exitCode)
			}

			if stderr.String() != "" {
				t.Errorf("stderr = %q, want empty", stderr.String())
			}

			out := stdout.String()

			if !strings.Contains(out, "ringctl - filesystem ring buffer CLI") {
				t.Errorf("stdout should contain title, got %q", out)
			}

			if !strings.Contains(out, "--cwd") {
				t.Errorf("stdout should contain --cwd option")
			}

			if !strings.Contains(out, "push") {
				t.Errorf("stdout should contain push command")
			}

			if !strings.Contains(out, "vacuum") {
				t.Errorf("stdout should contain vacuum command")
			}
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	exitCode := Run(nil, &stdout, &stderr, []string{"ringctl", "frobnicate"}, nil, nil)

	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}

	if !strings.Contains(stderr.String(), "unknown command") {
		t.Errorf("stderr = %q, want it to mention unknown command", stderr.String())
	}
}

func TestPushGetDelRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	run := func(args ...string) (string, string, int) {
		var stdout, stderr bytes.Buffer
		code := Run(nil, &stdout, &stderr, append([]string{"ringctl", "--dir", dir}, args...), map[string]string{"PWD": dir}, nil)

		return stdout.String(), stderr.String(), code
	}

	out, errOut, code := run("push", "hello")
	if code != 0 {
		t.Fatalf("push failed: code=%d stderr=%q", code, errOut)
	}

	if strings.TrimSpace(out) != "ok" {
		t.Fatalf("push stdout = %q, want \"ok\"", out)
	}

	out, errOut, code = run("ls")
	if code != 0 {
		t.Fatalf("ls failed: code=%d stderr=%q", code, errOut)
	}

	names := strings.Fields(out)
	if len(names) != 1 {
		t.Fatalf("ls stdout = %q, want exactly one name", out)
	}

	name := names[0]

	out, _, code = run("get", name)
	if code != 0 {
		t.Fatalf("get failed: code=%d", code)
	}

	if strings.TrimSpace(out) != "hello" {
		t.Fatalf("get stdout = %q, want \"hello\"", out)
	}

	out, _, code = run("del", name)
	if code != 0 || strings.TrimSpace(out) != "ok" {
		t.Fatalf("del failed: code=%d out=%q", code, out)
	}

	_, errOut, code = run("get", name)
	if code == 0 {
		t.Fatalf("get after del should fail")
	}

	if !strings.Contains(errOut, "no entry") {
		t.Fatalf("stderr = %q, want it to mention no entry", errOut)
	}
}
