package errors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty string", got)
	}

	err := fmt.Errorf("failed to persist document: %w", errors.New("disk full"))
	want := "Error: failed to persist document: disk full"
	if got := Format(err); got != want {
		t.Errorf("Format(%v) = %q, want %q", err, got, want)
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("failed to export summary to %s", "/tmp/out")
	want := "Error: failed to export summary to /tmp/out"
	if got != want {
		t.Errorf("Formatf = %q, want %q", got, want)
	}
}

// Fatal exits the process, so exercise it in a subprocess.
func TestFatal(t *testing.T) {
	if os.Getenv("FITTRACK_TEST_FATAL") == "1" {
		Fatal(errors.New("storage unreadable"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal")
	cmd.Env = append(os.Environ(), "FITTRACK_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exit *exec.ExitError
	if !errors.As(err, &exit) {
		t.Fatalf("Fatal did not exit with an error: %v", err)
	}
	if exit.ExitCode() != 1 {
		t.Errorf("Fatal exit code = %d, want 1", exit.ExitCode())
	}
	if !strings.Contains(stderr.String(), "Error: storage unreadable") {
		t.Errorf("Fatal stderr = %q, want the formatted message", stderr.String())
	}
}

func TestFatalNilIsNoop(t *testing.T) {
	if os.Getenv("FITTRACK_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatalNilIsNoop")
	cmd.Env = append(os.Environ(), "FITTRACK_TEST_FATAL_NIL=1")
	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) exited with error: %v", err)
	}
}
