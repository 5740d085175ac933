// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const testEnvKey = "GS1KIT_TESTUTIL_PROBE"

func TestMustSetenv(t *testing.T) {
	restoreOuter := MustUnsetenv(t, testEnvKey)
	defer restoreOuter()

	restore := MustSetenv(t, testEnvKey, "first")
	if got := os.Getenv(testEnvKey); got != "first" {
		t.Fatalf("%s = %q, want first", testEnvKey, got)
	}

	restoreInner := MustSetenv(t, testEnvKey, "second")
	restoreInner()
	if got := os.Getenv(testEnvKey); got != "first" {
		t.Errorf("after restore %s = %q, want first", testEnvKey, got)
	}

	restore()
	if _, ok := os.LookupEnv(testEnvKey); ok {
		t.Errorf("%s should be unset after restore", testEnvKey)
	}
}

func TestMustUnsetenv(t *testing.T) {
	restoreSet := MustSetenv(t, testEnvKey, "value")
	defer restoreSet()

	restore := MustUnsetenv(t, testEnvKey)
	if _, ok := os.LookupEnv(testEnvKey); ok {
		t.Fatalf("%s should be unset", testEnvKey)
	}

	restore()
	if got := os.Getenv(testEnvKey); got != "value" {
		t.Errorf("after restore %s = %q, want value", testEnvKey, got)
	}
}

func TestMustWriteFile(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "dir")
	path := MustWriteFile(t, dir, "labels.cue", "labels: []\n")

	if path != filepath.Join(dir, "labels.cue") {
		t.Errorf("MustWriteFile() = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "labels: []\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestMustChdir(t *testing.T) {
	original, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}

	dir := t.TempDir()
	restore := MustChdir(t, dir)

	got, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	// macOS temp dirs resolve through /private.
	want, _ := filepath.EvalSymlinks(dir)
	if resolved, _ := filepath.EvalSymlinks(got); resolved != want {
		t.Errorf("working directory = %q, want %q", resolved, want)
	}

	restore()
	if got, _ := os.Getwd(); got != original {
		t.Errorf("after restore working directory = %q, want %q", got, original)
	}
}

func TestSetHomeDir(t *testing.T) {
	envVar := "HOME"
	if runtime.GOOS == "windows" {
		envVar = "USERPROFILE"
	}
	original, hadOriginal := os.LookupEnv(envVar)

	dir := t.TempDir()
	t.Run("subtest", func(t *testing.T) {
		t.Cleanup(SetHomeDir(t, dir))

		if got := os.Getenv(envVar); got != dir {
			t.Errorf("%s = %q, want %q", envVar, got, dir)
		}
	})

	got, ok := os.LookupEnv(envVar)
	if ok != hadOriginal || got != original {
		t.Errorf("after subtest %s = %q, want %q", envVar, got, original)
	}
}
