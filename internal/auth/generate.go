package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	tempPasswordLength = 12
	codePrefixLength   = 3
)

const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*-_+="
)

// EmployeeCode formats a department-scoped code like ENG-0001. The sequence
// number comes from the store's atomic per-department counter.
func EmployeeCode(department string, seq int) string {
	prefix := strings.Builder{}
	for _, r := range strings.ToUpper(department) {
		if r >= 'A' && r <= 'Z' {
			prefix.WriteRune(r)
		}
		if prefix.Len() == codePrefixLength {
			break
		}
	}
	if prefix.Len() == 0 {
		prefix.WriteString("EMP")
	}
	return fmt.Sprintf("%s-%04d", prefix.String(), seq)
}

// TempPassword generates the one-time onboarding credential: 12 random
// characters with at least one lowercase, uppercase, digit and symbol.
func TempPassword() (string, error) {
	classes := []string{lowerChars, upperChars, digitChars, symbolChars}
	all := strings.Join(classes, "")

	chars := make([]byte, 0, tempPasswordLength)
	for _, class := range classes {
		c, err := randomChar(class)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for len(chars) < tempPasswordLength {
		c, err := randomChar(all)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	// Fisher-Yates with crypto/rand so the forced class picks do not sit at
	// predictable positions.
	for i := len(chars) - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return "", err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}
	return string(chars), nil
}

// CompanyEmail derives first.last@domain, lowercased with non-letters
// stripped. Collision handling lives in the registration flow, which probes
// suffixed candidates against the store.
func CompanyEmail(firstName string, lastName string, domain string) string {
	return fmt.Sprintf("%s.%s@%s", mailLocal(firstName), mailLocal(lastName), domain)
}

// CompanyEmailWithSuffix produces the nth collision candidate, e.g.
// john.doe2@domain for n=2.
func CompanyEmailWithSuffix(firstName string, lastName string, domain string, n int) string {
	return fmt.Sprintf("%s.%s%d@%s", mailLocal(firstName), mailLocal(lastName), n, domain)
}

func mailLocal(name string) string {
	out := strings.Builder{}
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' {
			out.WriteRune(r)
		}
	}
	return out.String()
}

func randomChar(set string) (byte, error) {
	idx, err := randomInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[idx], nil
}

func randomInt(max int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
