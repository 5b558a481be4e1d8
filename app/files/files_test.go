package files_test

import (
	"os"
	"path/filepath"
	"testing"

	"sable-editor/app/files"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestListOrdersDirsBeforeFiles(t *testing.T) {
	dir := t.TempDir()

	os.Mkdir(filepath.Join(dir, "zeta"), 0755)
	os.Mkdir(filepath.Join(dir, "alpha"), 0755)
	writeFile(t, filepath.Join(dir, "b.txt"))
	writeFile(t, filepath.Join(dir, "a.txt"))

	entries, err := files.List(dir)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"alpha", "zeta", "a.txt", "b.txt"}

	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(entries))
	}

	for i, name := range want {
		if entries[i].Name != name {
			t.Fatalf(
				"Expected entry %d to be %q, got %q",
				i, name, entries[i].Name,
			)
		}
	}

	if !entries[0].IsDir || entries[2].IsDir {
		t.Fatal("Expected directories first, then files")
	}
}

func TestListOrderIsStable(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"c", "a", "b"} {
		os.Mkdir(filepath.Join(dir, name), 0755)
	}

	first, err := files.List(dir)
	if err != nil {
		t.Fatal(err)
	}

	for range 5 {
		again, err := files.List(dir)
		if err != nil {
			t.Fatal(err)
		}
		for i := range first {
			if again[i].Path != first[i].Path {
				t.Fatal("Expected a deterministic listing order")
			}
		}
	}
}

func TestListSkipsHiddenEntries(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, ".hidden"))
	writeFile(t, filepath.Join(dir, "shown.txt"))

	entries, err := files.List(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 || entries[0].Name != "shown.txt" {
		t.Fatalf("Expected only shown.txt, got %v", entries)
	}
}

func TestListUnreadableDirectory(t *testing.T) {
	if _, err := files.List(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("Expected an error for a missing directory")
	}
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	os.WriteFile(path, []byte("hello"), 0644)

	content, err := files.Read(path)
	if err != nil {
		t.Fatal(err)
	}

	if content != "hello" {
		t.Fatalf("Expected %q, got %q", "hello", content)
	}

	if _, err := files.Read(path + ".missing"); err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}
