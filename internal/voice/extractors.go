package voice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"task-master/internal/model"
)

// A keyword segment runs from just after the keyword to the end of the
// transcript. Later keywords are not boundaries, so "title a description b"
// yields the title "a description b".
func segmentPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)\b` + keyword + `\b\s*(.*)$`)
}

var (
	titleRe       = segmentPattern("title")
	descriptionRe = segmentPattern("description")
	dateRe        = segmentPattern("date")
	categoryRe    = segmentPattern("category")
	tagsRe        = segmentPattern("tags")
	priorityRe    = segmentPattern("priority")

	timeRe = regexp.MustCompile(`\btime\s+(\d{1,2})(?::(\d{1,2}))?(?:\s*([ap])\.?m\.?)?(?:[^\d:]|$)`)

	// Checked in this order; the first word present wins regardless of where
	// it was spoken.
	priorityWords = []struct {
		re       *regexp.Regexp
		priority model.Priority
	}{
		{regexp.MustCompile(`\blow\b`), model.PriorityLow},
		{regexp.MustCompile(`\bmedium\b`), model.PriorityMedium},
		{regexp.MustCompile(`\bhigh\b`), model.PriorityHigh},
	}

	submitPhrases = []string{"submit", "add task"}
)

// segment returns the trimmed text after keyword, if keyword occurs with a
// non-empty remainder.
func segment(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	v := strings.TrimSpace(m[1])
	return v, v != ""
}

func extractTitle(text string) (string, bool)       { return segment(titleRe, text) }
func extractDescription(text string) (string, bool) { return segment(descriptionRe, text) }
func extractCategory(text string) (string, bool)    { return segment(categoryRe, text) }
func extractDatePhrase(text string) (string, bool)  { return segment(dateRe, text) }

// extractTime reads "time H[:MM] [am|pm]". Minutes default to 00; both parts
// are zero-padded. Out-of-range values are rejected.
func extractTime(text string) (Time, bool) {
	m := timeRe.FindStringSubmatch(text)
	if m == nil {
		return Time{}, false
	}

	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}

	switch m[3] {
	case "a":
		if hours == 12 {
			hours = 0
		}
	case "p":
		if hours >= 1 && hours < 12 {
			hours += 12
		}
	}

	if hours > 23 || minutes > 59 {
		return Time{}, false
	}
	return Time{Hours: fmt.Sprintf("%02d", hours), Minutes: fmt.Sprintf("%02d", minutes)}, true
}

// extractTags splits the tags segment on commas, dropping empty pieces.
func extractTags(text string) ([]string, bool) {
	seg, ok := segment(tagsRe, text)
	if !ok {
		return nil, false
	}
	var tags []string
	for _, piece := range strings.Split(seg, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			tags = append(tags, piece)
		}
	}
	return tags, len(tags) > 0
}

func extractPriority(text string) (model.Priority, bool) {
	seg, ok := segment(priorityRe, text)
	if !ok {
		return "", false
	}
	for _, w := range priorityWords {
		if w.re.MatchString(seg) {
			return w.priority, true
		}
	}
	return "", false
}

func wantsSubmit(text string) bool {
	for _, phrase := range submitPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}
