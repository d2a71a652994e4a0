package logins

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logins.txt")
	if err := os.WriteFile(path, []byte("alice\n\nbob\n  \ncarol\n"), 0644); err != nil {
		t.Fatalf("error %v while writing corpus file", err)
	}
	logins, err := Load(path)
	if err != nil {
		t.Fatalf("error %v while loading corpus", err)
	}
	expected := []string{"alice", "bob", "carol"}
	if !reflect.DeepEqual(logins, expected) {
		t.Errorf("corpus should be %v, instead found %v", expected, logins)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("loading a missing corpus file should return an error")
	}
}

func TestSequential(t *testing.T) {
	logins := Sequential(3)
	expected := []string{"user0", "user1", "user2"}
	if !reflect.DeepEqual(logins, expected) {
		t.Errorf("sequential corpus should be %v, instead found %v", expected, logins)
	}
	if len(Sequential(0)) != 0 {
		t.Error("sequential corpus of size zero should be empty")
	}
}

func TestWriteFileSorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logins.txt")
	original := []string{"carol", "alice", "bob"}
	if err := WriteFile(path, original); err != nil {
		t.Fatalf("error %v while writing corpus", err)
	}
	if original[0] != "carol" {
		t.Error("writing the corpus should not reorder the caller's slice")
	}
	logins, err := Load(path)
	if err != nil {
		t.Fatalf("error %v while loading corpus", err)
	}
	expected := []string{"alice", "bob", "carol"}
	if !reflect.DeepEqual(logins, expected) {
		t.Errorf("corpus should round trip sorted as %v, instead found %v", expected, logins)
	}
}
