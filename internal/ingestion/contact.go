package ingestion

import (
	"regexp"
	"strings"
)

// ContactInfo holds contact details located in resume text. Empty fields mean
// the detail was not found.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

var (
	emailPattern  = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{3,4}[-.\s]?\d{3,4}[-.\s]?\d{3,4}`),
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	}
	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[a-zA-Z0-9-]+/?`)
	githubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[a-zA-Z0-9-]+/?`)
	websitePattern  = regexp.MustCompile(`(?i)(?:https?://)?[a-zA-Z0-9-]+(?:\.[a-zA-Z0-9-]+)*\.(?:com|org|net|edu|io|dev|me|co)(?:/[^\s]*)?`)
	nonPhoneChars   = regexp.MustCompile(`[^\d+]`)
)

// mailDomains are skipped by website detection; they belong to the email
// address, not a personal site.
var mailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com"}

// ExtractContactInfo scans resume text for the candidate's name and contact
// details. All detection is heuristic; missing details are left empty.
func ExtractContactInfo(text string) ContactInfo {
	return ContactInfo{
		Name:     extractName(text),
		Phone:    extractPhone(text),
		Email:    firstMatch(emailPattern, text),
		LinkedIn: withScheme(firstMatch(linkedinPattern, text)),
		GitHub:   withScheme(firstMatch(githubPattern, text)),
		Website:  extractWebsite(text),
	}
}

// extractName looks for the first short title-cased line that is not a
// bullet, URL, email, or anything containing digits.
func extractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		clean := strings.TrimSpace(line)
		if clean == "" || len(clean) > 50 {
			continue
		}
		lower := strings.ToLower(clean)
		if lower == "resume" || lower == "cv" || lower == "curriculum vitae" {
			continue
		}
		if strings.ContainsAny(clean, "@0123456789") || strings.Contains(lower, "http") {
			continue
		}
		if isBulletLine(clean) {
			continue
		}

		words := strings.Fields(clean)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if isTitleCased(words) {
			return clean
		}
	}
	return ""
}

func extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		if match := pattern.FindString(text); match != "" {
			phone := nonPhoneChars.ReplaceAllString(match, "")
			if len(phone) >= 10 {
				return phone
			}
		}
	}
	return ""
}

// extractWebsite finds a personal site, skipping LinkedIn/GitHub (reported
// separately) and mail-provider domains. Only URLs sitting on their own short
// line count; URLs inside prose are project descriptions, not contact info.
func extractWebsite(text string) string {
	// Drop email addresses first so their domains are not mistaken for sites.
	text = emailPattern.ReplaceAllString(text, "")
	lines := strings.Split(text, "\n")
	for _, match := range websitePattern.FindAllString(text, -1) {
		lower := strings.ToLower(match)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		if isMailDomain(lower) {
			continue
		}

		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if strings.Contains(strings.ToLower(trimmed), lower) && len(strings.Fields(trimmed)) <= 3 {
				return withScheme(match)
			}
		}
	}
	return ""
}

func isMailDomain(url string) bool {
	for _, domain := range mailDomains {
		if strings.Contains(url, domain) {
			return true
		}
	}
	return false
}

func isBulletLine(line string) bool {
	for _, glyph := range BulletGlyphs {
		if strings.HasPrefix(line, glyph) {
			return true
		}
	}
	return strings.HasPrefix(line, "-") || strings.HasPrefix(line, "o ")
}

func isTitleCased(words []string) bool {
	for _, word := range words {
		r := rune(word[0])
		if r < 'A' || r > 'Z' {
			return false
		}
		for _, c := range word[1:] {
			if !(c >= 'a' && c <= 'z' || c == '\'' || c == '-' || c == '.') {
				return false
			}
		}
	}
	return true
}

func firstMatch(pattern *regexp.Regexp, text string) string {
	return pattern.FindString(text)
}

func withScheme(url string) string {
	if url == "" || strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + url
}
