package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeCode(t *testing.T) {
	assert.Equal(t, "ENG-0001", EmployeeCode("Eng", 1))
	assert.Equal(t, "ENG-0042", EmployeeCode("Engineering", 42))
	assert.Equal(t, "HR-0007", EmployeeCode("HR", 7))
	assert.Equal(t, "RD-0003", EmployeeCode("R&D", 3))
	assert.Equal(t, "EMP-0001", EmployeeCode("123", 1))
}

func TestTempPasswordPolicy(t *testing.T) {
	password, err := TempPassword()
	require.NoError(t, err)

	assert.Len(t, password, tempPasswordLength)
	assert.True(t, strings.ContainsAny(password, lowerChars), "missing lowercase: %s", password)
	assert.True(t, strings.ContainsAny(password, upperChars), "missing uppercase: %s", password)
	assert.True(t, strings.ContainsAny(password, digitChars), "missing digit: %s", password)
	assert.True(t, strings.ContainsAny(password, symbolChars), "missing symbol: %s", password)
}

func TestTempPasswordNotRepeating(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		password, err := TempPassword()
		require.NoError(t, err)
		assert.False(t, seen[password], "generated password repeated: %s", password)
		seen[password] = true
	}
}

func TestCompanyEmail(t *testing.T) {
	assert.Equal(t, "john.doe@org.example", CompanyEmail("John", "Doe", "org.example"))
	assert.Equal(t, "mary.oconnor@org.example", CompanyEmail("Mary", "O'Connor", "org.example"))
	assert.Equal(t, "john.doe2@org.example", CompanyEmailWithSuffix("John", "Doe", "org.example", 2))
}
