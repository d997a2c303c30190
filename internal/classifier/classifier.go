// Package classifier maps free-text expense descriptions to account
// postings using an ordered rule table.
package classifier

import (
	"fmt"
	"strings"
)

// Rule associates a description keyphrase with the account, expense
// subcategory, and functional class an expense line should post to.
type Rule struct {
	Keyphrase       string
	AccountID       int64
	SubcategoryID   *int64
	FunctionalClass string
}

// ClassificationError reports a description no rule matches. Callers must
// treat this as a hard per-row error, never a silent default account.
type ClassificationError struct {
	Description string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("no description rule matches %q", e.Description)
}

// Classifier resolves descriptions against an immutable rule table.
type Classifier struct {
	rules []Rule
}

// New creates a Classifier over the given rules. Rule order is
// significant: prefix matching follows table declaration order.
func New(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify resolves a raw description to a rule. An exact case-insensitive
// match of the trimmed description wins over any prefix match, so a short
// keyphrase like "llm" cannot swallow a row that exactly equals another
// keyphrase. Prefix matches are tried in declaration order.
func (c *Classifier) Classify(description string) (Rule, error) {
	needle := strings.ToLower(strings.TrimSpace(description))

	for _, r := range c.rules {
		if needle == strings.ToLower(r.Keyphrase) {
			return r, nil
		}
	}
	for _, r := range c.rules {
		if strings.HasPrefix(needle, strings.ToLower(r.Keyphrase)) {
			return r, nil
		}
	}

	return Rule{}, &ClassificationError{Description: description}
}
