package logins

import (
	"math/rand"
	"unsafe"
)

var firstNames = []string{
	"james", "john", "robert", "michael", "william", "david", "richard", "joseph", "thomas", "charles",
	"mary", "patricia", "jennifer", "linda", "elizabeth", "barbara", "susan", "jessica", "sarah", "karen",
	"daniel", "matthew", "anthony", "mark", "donald", "steven", "paul", "andrew", "joshua", "kenneth",
	"emily", "ashley", "amanda", "melissa", "deborah", "stephanie", "rebecca", "laura", "sharon", "cynthia",
	"chris", "alex", "sam", "jordan", "taylor", "morgan", "riley", "casey", "jamie", "charlie",
	"admin", "user", "test", "demo", "guest", "root", "dev", "prod", "bob", "alice", "jane",
}

const digitBytes = "0123456789"
const lowerBytes = "abcdefghijklmnopqrstuvwxyz"

const (
	charIdxBits = 5                  // 5 bits to represent a char index
	charIdxMask = 1<<charIdxBits - 1 // All 1-bits, as many as charIdxBits
	charIdxMax  = 63 / charIdxBits   // # of char indices fitting in 63 bits
)

const (
	minLoginLength = 5
	maxLoginLength = 12
)

// Composition strategies, picked uniformly per login.
const (
	nameNumbers = iota
	nameOnly
	nameUnderscoreNumbers
	lettersNumbers
)

// Generator produces realistic login names from a seeded source, so a
// given seed always yields the same corpus.
type Generator struct {
	rand *rand.Rand
}

// NewGenerator creates a Generator seeded with _seed_.
func NewGenerator(seed int64) *Generator {
	return &Generator{rand: rand.New(rand.NewSource(seed))}
}

// Login returns a single login name built from one of four shapes: a name
// with a digit tail, a bare name or name pair, a name_digits pair, or
// random letters ending in two digits.
func (generator *Generator) Login() string {
	switch generator.rand.Intn(4) {
	case nameNumbers:
		return generator.name() + generator.randomChars(digitBytes, 1+generator.rand.Intn(4))
	case nameOnly:
		login := generator.name()
		if generator.rand.Float64() > 0.5 {
			login += generator.name()
		}
		return login
	case nameUnderscoreNumbers:
		return generator.name() + "_" + generator.randomChars(digitBytes, 2+generator.rand.Intn(3))
	default:
		length := minLoginLength + generator.rand.Intn(maxLoginLength-minLoginLength+1)
		return generator.randomChars(lowerBytes, length-2) + generator.randomChars(digitBytes, 2)
	}
}

// GenerateUnique draws logins until _count_ distinct ones have
// accumulated, discarding collisions, and returns them in draw order.
func (generator *Generator) GenerateUnique(count int) []string {
	seen := make(map[string]struct{}, count)
	logins := make([]string, 0, count)
	for len(logins) < count {
		login := generator.Login()
		if _, ok := seen[login]; ok {
			continue
		}
		seen[login] = struct{}{}
		logins = append(logins, login)
	}
	return logins
}

func (generator *Generator) name() string {
	return firstNames[generator.rand.Intn(len(firstNames))]
}

func (generator *Generator) randomChars(charset string, n int) string {
	b := make([]byte, n)
	// A rand.Int63() generates 63 random bits, enough for charIdxMax characters!
	for i, cache, remain := n-1, generator.rand.Int63(), charIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = generator.rand.Int63(), charIdxMax
		}
		if idx := int(cache & charIdxMask); idx < len(charset) {
			b[i] = charset[idx]
			i--
		}
		cache >>= charIdxBits
		remain--
	}
	return *(*string)(unsafe.Pointer(&b))
}
