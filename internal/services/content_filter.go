package services

import (
	"regexp"
	"strings"
)

var blockedTerms = []string{
	"spam", "scam", "scammer", "phishing", "malware",
	"viagra", "casino", "crypto giveaway",
}

// ContentFilter screens new post and comment bodies before insert. Rejections
// surface as validation failures with a human-readable message.
type ContentFilter struct {
	blockedRegexps      []*regexp.Regexp
	repeatedCharPattern *regexp.Regexp
	allCapsPattern      *regexp.Regexp
}

func NewContentFilter() *ContentFilter {
	f := &ContentFilter{}
	f.blockedRegexps = make([]*regexp.Regexp, 0, len(blockedTerms))
	for _, term := range blockedTerms {
		pattern := `(?i)\b` + regexp.QuoteMeta(term) + `\b`
		if re, err := regexp.Compile(pattern); err == nil {
			f.blockedRegexps = append(f.blockedRegexps, re)
		}
	}
	f.repeatedCharPattern = regexp.MustCompile(`(.)\1{7,}`)
	f.allCapsPattern = regexp.MustCompile(`[A-Z]{5,}`)
	return f
}

// Check returns whether the text is acceptable and, if not, a reason code.
func (f *ContentFilter) Check(text string) (bool, string) {
	if strings.TrimSpace(text) == "" {
		return true, ""
	}
	for _, re := range f.blockedRegexps {
		if re.MatchString(text) {
			return false, "blocked_term"
		}
	}
	if f.repeatedCharPattern.MatchString(text) {
		return false, "spam_detected"
	}
	if len(f.allCapsPattern.FindAllString(text, -1)) > 3 {
		return false, "excessive_caps"
	}
	return true, ""
}

func (f *ContentFilter) RejectionMessage(reason string) string {
	messages := map[string]string{
		"blocked_term":   "Your content contains a blocked term.",
		"spam_detected":  "Your content appears to be spam.",
		"excessive_caps": "Please avoid using excessive capital letters.",
	}
	if msg, ok := messages[reason]; ok {
		return msg
	}
	return "Your content does not meet the community guidelines."
}
