package refdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattc321/fish-cli/internal/classifier"
)

func TestDescriptionRulesClassifyRealDescriptions(t *testing.T) {
	c := classifier.New(DescriptionRules)

	testCases := []struct {
		description     string
		expectedAccount int64
	}{
		{"llm coding", Accounts["software_tech"]},
		{"llm", Accounts["software_tech"]},
		{"phone stipend", Accounts["telephone_internet"]},
		{"pobox 3 month", Accounts["postage_shipping"]},
		{"training - ITU", Accounts["conference_reg"]},
		{"domain renewal", Accounts["marketing"]},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			rule, err := c.Classify(tc.description)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedAccount, rule.AccountID)
		})
	}
}

func TestDescriptionRulesReferenceKnownAccounts(t *testing.T) {
	known := make(map[int64]bool, len(Accounts))
	for _, id := range Accounts {
		known[id] = true
	}
	for _, rule := range DescriptionRules {
		assert.Truef(t, known[rule.AccountID], "rule %q posts to unknown account %d", rule.Keyphrase, rule.AccountID)
	}
}

func TestVendorAliasesHaveNoDuplicates(t *testing.T) {
	seen := make(map[string]string)
	for canonical, aliases := range VendorAliases {
		require.NotEmpty(t, aliases, "canonical %q has no aliases", canonical)
		for _, alias := range aliases {
			key := strings.ToLower(alias)
			if prior, ok := seen[key]; ok {
				t.Errorf("alias %q claimed by both %q and %q", alias, prior, canonical)
			}
			seen[key] = canonical
		}
	}
}
