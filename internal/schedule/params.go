package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Params is the decoded form of a rule parameter string such as
// "byweekday:0;byhour:14;byminute:10".
type Params struct {
	Weekday int
	Hour    int
	Minute  int
}

// String encodes p as semicolon-joined key:value tokens.
func (p Params) String() string {
	return strings.Join([]string{
		"byweekday:" + strconv.Itoa(p.Weekday),
		"byhour:" + strconv.Itoa(p.Hour),
		"byminute:" + strconv.Itoa(p.Minute),
	}, ";")
}

// ParseParams decodes a parameter string. All three keys are required.
func ParseParams(raw string) (Params, error) {
	var p Params
	seen := map[string]bool{}

	for _, token := range strings.Split(raw, ";") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		key, value, ok := strings.Cut(token, ":")
		if !ok {
			return Params{}, fmt.Errorf("malformed rule param %q", token)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return Params{}, fmt.Errorf("rule param %q: %w", key, err)
		}

		switch strings.TrimSpace(key) {
		case "byweekday":
			p.Weekday = n
		case "byhour":
			p.Hour = n
		case "byminute":
			p.Minute = n
		default:
			return Params{}, fmt.Errorf("unknown rule param %q", key)
		}
		seen[strings.TrimSpace(key)] = true
	}

	for _, key := range []string{"byweekday", "byhour", "byminute"} {
		if !seen[key] {
			return Params{}, fmt.Errorf("rule params missing %q", key)
		}
	}
	return p, nil
}
