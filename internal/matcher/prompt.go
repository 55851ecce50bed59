package matcher

import "strings"

// PromptRule maps a lowercase trigger substring to a canned reply.
type PromptRule struct {
	Trigger string `yaml:"trigger"`
	Reply   string `yaml:"reply"`
}

// PromptMatcher answers known prompts from an ordered rule table.
//
// Triggers are tested by substring containment in table order and the
// first hit wins. A trigger contained in a later one ("thanks" inside
// "thanks a lot") shadows it, so more specific triggers belong first.
type PromptMatcher struct {
	rules []PromptRule
}

// NewPromptMatcher builds a matcher over rules, lowercasing triggers.
// Rules with an empty trigger are dropped since they would match anything.
func NewPromptMatcher(rules []PromptRule) *PromptMatcher {
	out := make([]PromptRule, 0, len(rules))
	for _, r := range rules {
		trigger := strings.ToLower(strings.TrimSpace(r.Trigger))
		if trigger == "" {
			continue
		}
		out = append(out, PromptRule{Trigger: trigger, Reply: r.Reply})
	}
	return &PromptMatcher{rules: out}
}

// Match returns the reply of the first rule whose trigger occurs in text.
func (m *PromptMatcher) Match(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, r := range m.rules {
		if strings.Contains(lower, r.Trigger) {
			return r.Reply, true
		}
	}
	return "", false
}

// Rules returns the rule table in match order.
func (m *PromptMatcher) Rules() []PromptRule {
	return append([]PromptRule(nil), m.rules...)
}
