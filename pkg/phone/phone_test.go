package phone

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	assert.Equal(t, "09123456789", Clean("0912 345-6789"))
	assert.Equal(t, "+639123456789", Clean("+63 (912) 345 6789"))
	assert.Equal(t, "", Clean("()-- -"))
	assert.Equal(t, "0912.345.6789", Clean("0912.345.6789"))
	assert.Equal(t, "09123456789", Clean("09123456789\t\n"))
	assert.Equal(t, "09123456789", Clean("0912\v345\f6789\r"))
}

func TestIsMobile(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"09123456789", true},
		{"+639123456789", true},
		{"639123456789", true},
		{"9123456789", true},
		{"0917-123-4567", true},
		{"(0917) 123 4567", true},
		{"+63 917 123 4567", true},
		{"09123456789\v", true},
		{"091234567", false},
		{"0912345678901", false},
		{"08123456789", false},
		{"+6309123456789", false},
		{"+1 9123456789", false},
		{"0912.345.6789", false},
		{"09I23456789", false},
		{"", false},
		{"---", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMobile(tt.input))
		})
	}
}

func TestIsEmpty(t *testing.T) {
	var nilString *string
	zero := ""
	number := "09123456789"

	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("0"))
	assert.True(t, IsEmpty(0))
	assert.True(t, IsEmpty(0.0))
	assert.True(t, IsEmpty(false))
	assert.True(t, IsEmpty(nilString))
	assert.True(t, IsEmpty(&zero))
	assert.True(t, IsEmpty([]string{}))

	assert.False(t, IsEmpty("---"))
	assert.False(t, IsEmpty(" "))
	assert.False(t, IsEmpty(&number))
	assert.False(t, IsEmpty(9123456789))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		wantFail bool
	}{
		{"local format", "09123456789", false},
		{"international format", "+639123456789", false},
		{"country code without plus", "639123456789", false},
		{"bare subscriber number", "9123456789", false},
		{"formatted", "0912-345-6789", false},
		{"numeric value", 9123456789, false},
		{"empty string", "", false},
		{"nil", nil, false},
		{"numeric zero", 0, false},
		{"only separators", "()-- -", true},
		{"only hyphens", "---", true},
		{"single space", " ", true},
		{"too short", "091234567", true},
		{"letters", "0912345678a", true},
		{"landline", "028123456", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var messages []string
			Validate("phone_number", tt.value, func(message string) {
				messages = append(messages, message)
			})

			if !tt.wantFail {
				assert.Empty(t, messages)
				return
			}
			require.Len(t, messages, 1)
			assert.Equal(t,
				"The phone_number must be a valid Philippine mobile number (e.g., 09123456789, +639123456789).",
				messages[0],
			)
		})
	}
}

func TestValidate_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	var mu sync.Mutex
	failures := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value := "09123456789"
			if i%2 == 0 {
				value = "not a number"
			}
			Validate("owner_phone", value, func(string) {
				mu.Lock()
				failures++
				mu.Unlock()
			})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 25, failures)
}
