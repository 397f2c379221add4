package matching

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

const nameScanLines = 5

// Contact is the contact information found at the top of a resume.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ExtractContact pulls the first email and phone number from text and guesses
// the candidate name from the first short line without digits or punctuation.
func ExtractContact(text string) Contact {
	return Contact{
		Name:  guessName(text),
		Email: emailPattern.FindString(text),
		Phone: phonePattern.FindString(text),
	}
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

func guessName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) <= 3 || len(strings.Fields(line)) > 4 {
			continue
		}
		if strings.ContainsFunc(line, disqualifiesName) {
			continue
		}
		return line
	}
	return ""
}

// disqualifiesName rejects digits and the characters of "@.com", which
// filters out email, phone and URL lines.
func disqualifiesName(r rune) bool {
	return unicode.IsDigit(r) || strings.ContainsRune("@.com", r)
}
