package logins

import (
	"strings"
	"testing"
)

const loginCharset = "abcdefghijklmnopqrstuvwxyz0123456789_"

func TestGenerateUniqueDistinct(t *testing.T) {
	generator := NewGenerator(42)
	logins := generator.GenerateUnique(500)
	if len(logins) != 500 {
		t.Fatalf("generator should produce 500 logins, instead found %d", len(logins))
	}
	seen := make(map[string]struct{}, len(logins))
	for _, login := range logins {
		if _, ok := seen[login]; ok {
			t.Errorf("login %s generated twice", login)
		}
		seen[login] = struct{}{}
	}
}

func TestGeneratorShapes(t *testing.T) {
	generator := NewGenerator(7)
	for i := 0; i < 1000; i++ {
		login := generator.Login()
		if login == "" {
			t.Fatal("generator should never produce an empty login")
		}
		for _, char := range login {
			if !strings.ContainsRune(loginCharset, char) {
				t.Fatalf("login %s contains character %q outside the login charset", login, char)
			}
		}
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	first, second := NewGenerator(1373), NewGenerator(1373)
	for i := 0; i < 100; i++ {
		a, b := first.Login(), second.Login()
		if a != b {
			t.Fatalf("generators with the same seed diverged at login %d: %s vs %s", i, a, b)
		}
	}
}
