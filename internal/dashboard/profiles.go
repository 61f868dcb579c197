package dashboard

import "time"

// PhoneMessage is a message still carrying the phone number it was joined on.
type PhoneMessage struct {
	PhoneNumber string
	Message
}

// BuildProfiles groups calls by exact phone number, in first-seen order, then attaches
// messages to the profile with the same phone number. Messages for a number with no
// calls are dropped; no profile is created for them.
func BuildProfiles(calls []Call, messages []PhoneMessage) []CallerProfile {
	profiles := make([]CallerProfile, 0)
	index := make(map[string]int)

	for _, call := range calls {
		i, ok := index[call.PhoneNumber]
		if !ok {
			profiles = append(profiles, CallerProfile{
				PhoneNumber:  call.PhoneNumber,
				CallerName:   call.CallerName,
				TotalCalls:   0,
				Messages:     make([]Message, 0),
				LastCallDate: call.Date,
				Calls:        make([]Call, 0),
			})
			i = len(profiles) - 1
			index[call.PhoneNumber] = i
		}

		p := &profiles[i]
		p.TotalCalls++
		p.Calls = append(p.Calls, call)
		if isAfter(call.Date, p.LastCallDate) {
			p.LastCallDate = call.Date
		}
	}

	for _, m := range messages {
		i, ok := index[m.PhoneNumber]
		if !ok {
			continue
		}
		profiles[i].Messages = append(profiles[i].Messages, m.Message)
	}
	return profiles
}

// isAfter reports whether a is strictly later than b. Unparseable dates never win,
// so a tie or a bad value keeps the current one.
func isAfter(a, b string) bool {
	ta, okA := parseDate(a)
	tb, okB := parseDate(b)
	if !okA || !okB {
		return false
	}
	return ta.After(tb)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
