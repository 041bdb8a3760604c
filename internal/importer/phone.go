package importer

import (
	"regexp"
	"strings"

	"github.com/Boldmaa4421/raffle-app/internal/phone"
)

// ParsedPhone is the outcome of extracting a phone number from one cell.
type ParsedPhone struct {
	OK     bool
	E164   string
	Raw    string
	Reason string
}

// Rejection reasons reported on skip records.
const (
	RejectEmpty       = "empty"
	RejectNoDigits    = "no digits"
	RejectBankAccount = "looks like bank account"
	RejectNotFound    = "phone not found"
)

var (
	digitRun     = regexp.MustCompile(`\d+`)
	plusSpan     = regexp.MustCompile(`\+[\d][\d \-]*`)
	zeroZeroSpan = regexp.MustCompile(`(?:^|[^\d+])(00\d[\d \-]*)`)
)

// Labels that mark a cell as a bank account or ledger note rather than a
// phone number. Bank exports mix Cyrillic and Latin freely.
var bankKeywords = []string{"данс", "банк", "iban", "account", "acct", "bank"}

// Dialing prefixes recognized as country codes when a bare 9-15 digit run
// has to be classified. Mongolia first; the rest are codes that actually
// show up in the transfer descriptions.
var countryCodePrefixes = []string{"976", "7", "1", "44", "49", "81", "82", "86", "90", "971", "33", "61"}

// A national 8-digit number is only plausible when it starts with a mobile
// range digit.
func plausibleMobilePrefix(b byte) bool {
	return b == '6' || b == '8' || b == '9'
}

// phoneCandidate is one possible phone number found in the cell, with the
// byte offset of its first character in the normalized text.
type phoneCandidate struct {
	e164     string
	pos      int
	intl     bool // explicit international hint: +, 00 or country code
	strategy int  // priority for breaking position ties
}

// ExtractPhone finds at most one usable phone number in a raw cell. The
// strategies run in a fixed priority order, but when several match distinct
// substrings the leftmost occurrence in the original text wins: the observed
// convention is that the phone is written first and amounts or notes follow.
func ExtractPhone(raw interface{}) ParsedPhone {
	s := NormalizeCell(raw)
	if s == "" {
		return ParsedPhone{Raw: s, Reason: RejectEmpty}
	}
	if !strings.ContainsAny(s, "0123456789") {
		return ParsedPhone{Raw: s, Reason: RejectNoDigits}
	}

	var candidates []phoneCandidate
	candidates = append(candidates, matchPlusInternational(s)...)
	candidates = append(candidates, matchZeroZeroInternational(s)...)
	candidates = append(candidates, matchNationalEight(s)...)
	candidates = append(candidates, matchCountryCodeRun(s)...)

	if looksLikeBankAccount(s) {
		// An explicit international candidate overrides the bank-account
		// rejection; anything weaker does not.
		intl := candidates[:0:0]
		for _, c := range candidates {
			if c.intl {
				intl = append(intl, c)
			}
		}
		if len(intl) == 0 {
			return ParsedPhone{Raw: s, Reason: RejectBankAccount}
		}
		candidates = intl
	}

	if len(candidates) == 0 {
		return ParsedPhone{Raw: s, Reason: RejectNotFound}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.pos < best.pos || (c.pos == best.pos && c.strategy < best.strategy) {
			best = c
		}
	}
	return ParsedPhone{OK: true, E164: best.e164, Raw: s}
}

// matchPlusInternational finds +XXXXXXXX spans with optional space or dash
// separators: 8-15 digits after the plus.
func matchPlusInternational(s string) []phoneCandidate {
	var out []phoneCandidate
	for _, loc := range plusSpan.FindAllStringIndex(s, -1) {
		digits := onlyDigits(s[loc[0]:loc[1]])
		if len(digits) < 8 || len(digits) > 15 {
			continue
		}
		out = append(out, phoneCandidate{e164: "+" + digits, pos: loc[0], intl: true, strategy: 0})
	}
	return out
}

// matchZeroZeroInternational finds 00-prefixed international numbers and
// rewrites the 00 prefix to +.
func matchZeroZeroInternational(s string) []phoneCandidate {
	var out []phoneCandidate
	for _, loc := range zeroZeroSpan.FindAllStringSubmatchIndex(s, -1) {
		start := loc[2] // capture group: the 00... span itself
		digits := onlyDigits(s[start:loc[3]])
		rest := strings.TrimPrefix(digits, "00")
		if len(rest) < 8 || len(rest) > 15 {
			continue
		}
		out = append(out, phoneCandidate{e164: "+" + rest, pos: start, intl: true, strategy: 1})
	}
	return out
}

// matchNationalEight finds national 8-digit mobile numbers: a direct 8-digit
// run, an 8-digit slice of a longer run whose length is a multiple of eight,
// or eight digits accumulated across several short groups ("99 11 22 33").
// Candidates are canonicalized through the national E.164 helper.
func matchNationalEight(s string) []phoneCandidate {
	chunks := digitRun.FindAllStringIndex(s, -1)

	var out []phoneCandidate
	for _, loc := range chunks {
		run := s[loc[0]:loc[1]]
		switch {
		case len(run) == 8:
			if c, ok := nationalCandidate(run, loc[0]); ok {
				out = append(out, c)
			}
		case len(run) >= 16 && len(run)%8 == 0:
			// Concatenated numbers pasted without separators.
			for i := 0; i+8 <= len(run); i += 8 {
				if c, ok := nationalCandidate(run[i:i+8], loc[0]+i); ok {
					out = append(out, c)
				}
			}
		}
	}
	if len(out) > 0 || len(chunks) < 2 {
		return out
	}

	// No direct run: try accumulating consecutive groups into exactly
	// eight digits, e.g. "99 01 90 96".
	for i := 0; i < len(chunks); i++ {
		acc := ""
		for j := i; j < len(chunks); j++ {
			acc += s[chunks[j][0]:chunks[j][1]]
			if len(acc) == 8 {
				if c, ok := nationalCandidate(acc, chunks[i][0]); ok {
					out = append(out, c)
				}
				break
			}
			if len(acc) > 8 {
				break
			}
		}
	}
	return out
}

func nationalCandidate(digits string, pos int) (phoneCandidate, bool) {
	if !plausibleMobilePrefix(digits[0]) {
		return phoneCandidate{}, false
	}
	e164, ok := phone.NormalizeE164(digits)
	if !ok {
		return phoneCandidate{}, false
	}
	return phoneCandidate{e164: e164, pos: pos, strategy: 2}, true
}

// matchCountryCodeRun classifies bare 9-15 digit runs that start with a
// recognized country code as international numbers.
func matchCountryCodeRun(s string) []phoneCandidate {
	var out []phoneCandidate
	for _, loc := range digitRun.FindAllStringIndex(s, -1) {
		run := s[loc[0]:loc[1]]
		if len(run) < 9 || len(run) > 15 || strings.HasPrefix(run, "00") {
			continue
		}
		for _, cc := range countryCodePrefixes {
			if strings.HasPrefix(run, cc) {
				out = append(out, phoneCandidate{e164: "+" + run, pos: loc[0], intl: true, strategy: 3})
				break
			}
		}
	}
	return out
}

// looksLikeBankAccount flags cells that read as an account number or ledger
// label: a banking keyword, or a 10+ digit run with no 8-digit run present.
func looksLikeBankAccount(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range bankKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	hasLong, hasEight := false, false
	for _, run := range digitRun.FindAllString(s, -1) {
		// A run of whole 8-digit slices is concatenated phone numbers,
		// not an account number.
		if len(run) == 8 || (len(run) >= 16 && len(run)%8 == 0) {
			hasEight = true
			continue
		}
		if len(run) >= 10 {
			hasLong = true
		}
	}
	return hasLong && !hasEight
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
