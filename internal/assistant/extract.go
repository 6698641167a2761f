package assistant

import (
	"regexp"
	"strings"
)

var (
	fencedBlockRe = regexp.MustCompile("(?s)```(?:\\w+)?\\n?(.*?)```")
	inlineCodeRe  = regexp.MustCompile("`([^`\n]+)`")
)

// tradingVerbs are the subcommand verbs that place, change or remove
// orders. Everything else (queries, market data) is read-only.
var tradingVerbs = map[string]struct{}{
	"buy":             {},
	"sell":            {},
	"cancel":          {},
	"modify-price":    {},
	"modify-quantity": {},
	"batch-place":           {},
	"batch-cancel":          {},
	"batch-create":          {},
	"batch-modify-price":    {},
	"batch-modify-quantity": {},
	"create":                {},
}

// ExtractCommands pulls runnable fubon commands out of an assistant reply.
// It scans fenced code blocks line by line, then inline backtick spans, and
// keeps lines starting with "fubon ". Duplicates are dropped, first
// occurrence order preserved.
func ExtractCommands(reply string) []string {
	var out []string
	seen := make(map[string]struct{})

	add := func(line string) {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "$"))
		if !strings.HasPrefix(line, "fubon ") {
			return
		}
		if _, dup := seen[line]; dup {
			return
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}

	for _, block := range fencedBlockRe.FindAllStringSubmatch(reply, -1) {
		for _, line := range strings.Split(block[1], "\n") {
			add(line)
		}
	}

	stripped := fencedBlockRe.ReplaceAllString(reply, "")
	for _, span := range inlineCodeRe.FindAllStringSubmatch(stripped, -1) {
		add(span[1])
	}

	return out
}

// tradingGroups are the command groups whose mutating verbs matter; other
// groups (account, market, realtime, login) never mutate orders.
var tradingGroups = map[string]struct{}{
	"stock":     {},
	"futopt":    {},
	"condition": {},
}

// IsTradingCommand reports whether cmd mutates orders, so the chat screen
// can warn before running it.
func IsTradingCommand(cmd string) bool {
	fields := strings.Fields(cmd)
	if len(fields) < 3 || fields[0] != "fubon" {
		return false
	}

	if _, ok := tradingGroups[fields[1]]; !ok {
		return false
	}
	_, ok := tradingVerbs[fields[2]]
	return ok
}
