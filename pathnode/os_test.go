package pathnode

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCwdAndSetCwd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinked temp dirs make cwd comparison flaky on windows")
	}
	orig, err := Cwd()
	if err != nil {
		t.Fatalf("Cwd() error = %v", err)
	}
	t.Cleanup(func() {
		if err := SetCwd(orig); err != nil {
			t.Errorf("restoring cwd: %v", err)
		}
	})

	dir := t.TempDir()
	if err := SetCwd(dir); err != nil {
		t.Fatalf("SetCwd(%q) error = %v", dir, err)
	}
	got, err := Cwd()
	if err != nil {
		t.Fatalf("Cwd() error = %v", err)
	}
	// Temp dirs may sit behind a symlink (macOS /var -> /private/var).
	want, _ := filepath.EvalSymlinks(dir)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != want {
		t.Errorf("Cwd() = %q, want %q", gotResolved, want)
	}
}

func TestSetCwdNonexistent(t *testing.T) {
	if err := SetCwd(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("SetCwd to missing directory: error = nil, want error")
	}
}

func TestUserDir(t *testing.T) {
	got := UserDir()
	if got == "" {
		t.Skip("home directory not resolvable in this environment")
	}
	if !filepath.IsAbs(got) {
		t.Errorf("UserDir() = %q, want absolute path", got)
	}
}

func TestTempDir(t *testing.T) {
	if got := TempDir(); got == "" {
		t.Error("TempDir() returned empty string")
	}
}

func TestExpandRelative(t *testing.T) {
	got, err := ExpandRelative("some/rel/path")
	if err != nil {
		t.Fatalf("ExpandRelative() error = %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ExpandRelative() = %q, want absolute path", got)
	}
	wd, _ := os.Getwd()
	if want := filepath.Join(wd, "some", "rel", "path"); got != want {
		t.Errorf("ExpandRelative() = %q, want %q", got, want)
	}
}

func TestExpandRelativeEmpty(t *testing.T) {
	got, err := ExpandRelative("")
	if err != nil {
		t.Fatalf("ExpandRelative(\"\") error = %v", err)
	}
	if got != "" {
		t.Errorf("ExpandRelative(\"\") = %q, want \"\"", got)
	}
}

func TestDirAbs(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := DirAbs(file)
	if err != nil {
		t.Fatalf("DirAbs(%q) error = %v", file, err)
	}
	// The directory portion is rejoined with Join, which drops the empty
	// node a leading separator produces.
	resolved, _ := filepath.EvalSymlinks(dir)
	want, _ := Dir(filepath.Join(resolved, "f.txt"))
	if got != want {
		t.Errorf("DirAbs(%q) = %q, want %q", file, got, want)
	}
}

func TestDirAbsEmpty(t *testing.T) {
	got, err := DirAbs("")
	if err != nil || got != "" {
		t.Errorf("DirAbs(\"\") = %q, %v, want \"\", nil", got, err)
	}
}

func TestStripBaseIfFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.Mkdir("sub", 0o755); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join("sub", "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	// An existing regular file loses its last node.
	got, err := StripBaseIfFile(file)
	if err != nil {
		t.Fatalf("StripBaseIfFile(%q) error = %v", file, err)
	}
	if got != "sub" {
		t.Errorf("StripBaseIfFile(%q) = %q, want %q", file, got, "sub")
	}

	// A directory is returned unchanged.
	got, err = StripBaseIfFile("sub")
	if err != nil {
		t.Fatalf("StripBaseIfFile(%q) error = %v", "sub", err)
	}
	if got != "sub" {
		t.Errorf("StripBaseIfFile(%q) = %q, want unchanged", "sub", got)
	}

	// So is a path that does not exist.
	missing := filepath.Join("sub", "missing.txt")
	got, err = StripBaseIfFile(missing)
	if err != nil {
		t.Fatalf("StripBaseIfFile(%q) error = %v", missing, err)
	}
	if got != missing {
		t.Errorf("StripBaseIfFile(%q) = %q, want unchanged", missing, got)
	}

	// Stripping a single-node file leaves nothing joinable: absent.
	if err := os.WriteFile("top.txt", []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err = StripBaseIfFile("top.txt")
	if err != nil {
		t.Fatalf("StripBaseIfFile(\"top.txt\") error = %v", err)
	}
	if got != "" {
		t.Errorf("StripBaseIfFile(\"top.txt\") = %q, want \"\" (absent)", got)
	}

	// Empty input is absent, not an error.
	got, err = StripBaseIfFile("")
	if err != nil || got != "" {
		t.Errorf("StripBaseIfFile(\"\") = %q, %v, want \"\", nil", got, err)
	}
}
