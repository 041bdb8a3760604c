package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPhone_National(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"bare 8 digits", "99019096", "+97699019096"},
		{"numeric cell", 99019096.0, "+97699019096"},
		{"spaced pairs", "99 01 90 96", "+97699019096"},
		{"surrounded by note", "shiljuulsen 88112233 bayarlalaa", "+97688112233"},
		{"six prefix", "60123456", "+97660123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPhone(tt.input)
			assert.True(t, got.OK, "reason: %s", got.Reason)
			assert.Equal(t, tt.expected, got.E164)
		})
	}
}

func TestExtractPhone_International(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plus prefixed", "+97699019096", "+97699019096"},
		{"plus with spaces", "+976 9901 9096", "+97699019096"},
		{"plus with dashes", "+82-10-1234-5678", "+821012345678"},
		{"double zero prefix", "0097699019096", "+97699019096"},
		{"country code without plus", "97699019096", "+97699019096"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPhone(tt.input)
			assert.True(t, got.OK, "reason: %s", got.Reason)
			assert.Equal(t, tt.expected, got.E164)
		})
	}
}

func TestExtractPhone_ConcatenatedRuns(t *testing.T) {
	// Two numbers pasted without a separator: the leftmost slice wins.
	got := ExtractPhone("9901909688112233")
	assert.True(t, got.OK)
	assert.Equal(t, "+97699019096", got.E164)
}

func TestExtractPhone_LeftmostWins(t *testing.T) {
	got := ExtractPhone("99019096 88112233")
	assert.True(t, got.OK)
	assert.Equal(t, "+97699019096", got.E164)
}

func TestExtractPhone_BankAccount(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"cyrillic keyword", "Данс 5041287906"},
		{"latin keyword", "account 5041287906"},
		{"long run no eight run", "5041287906123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPhone(tt.input)
			assert.False(t, got.OK)
			assert.Equal(t, RejectBankAccount, got.Reason)
		})
	}
}

func TestExtractPhone_PlusOverridesBankHint(t *testing.T) {
	got := ExtractPhone("данс 5041287906 +97699019096")
	assert.True(t, got.OK)
	assert.Equal(t, "+97699019096", got.E164)
}

func TestExtractPhone_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		reason string
	}{
		{"empty", "", RejectEmpty},
		{"nil", nil, RejectEmpty},
		{"whitespace only", "   ", RejectEmpty},
		{"no digits", "shiljuulsen", RejectNoDigits},
		{"too short", "9901", RejectNotFound},
		{"implausible prefix", "12345678", RejectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPhone(tt.input)
			assert.False(t, got.OK)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}
