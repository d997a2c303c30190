package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() []Rule {
	sub := func(id int64) *int64 { return &id }
	return []Rule{
		{Keyphrase: "llm coding", AccountID: 5, SubcategoryID: sub(7), FunctionalClass: "program"},
		{Keyphrase: "llm", AccountID: 5, SubcategoryID: sub(3), FunctionalClass: "program"},
		{Keyphrase: "monthly subscription", AccountID: 5, FunctionalClass: "management_general"},
		{Keyphrase: "pobox", AccountID: 9, FunctionalClass: "management_general"},
	}
}

func TestClassify(t *testing.T) {
	c := New(testRules())

	testCases := []struct {
		name              string
		description       string
		expectedAccount   int64
		expectedSubcat    int64
		expectNoSubcat    bool
		expectUnmatchable bool
	}{
		{
			name:            "Exact match",
			description:     "llm",
			expectedAccount: 5,
			expectedSubcat:  3,
		},
		{
			name:            "Exact match beats shorter prefix",
			description:     "llm coding",
			expectedAccount: 5,
			expectedSubcat:  7,
		},
		{
			name:            "Case insensitive exact match",
			description:     "LLM Coding",
			expectedAccount: 5,
			expectedSubcat:  7,
		},
		{
			name:            "Prefix match",
			description:     "pobox 3 month renewal",
			expectedAccount: 9,
			expectNoSubcat:  true,
		},
		{
			name:            "Surrounding whitespace trimmed",
			description:     "  monthly subscription  ",
			expectedAccount: 5,
			expectNoSubcat:  true,
		},
		{
			name:              "No rule matches",
			description:       "mystery charge",
			expectUnmatchable: true,
		},
		{
			name:              "Keyphrase in the middle does not match",
			description:       "renewal of pobox",
			expectUnmatchable: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rule, err := c.Classify(tc.description)
			if tc.expectUnmatchable {
				require.Error(t, err)
				var classErr *ClassificationError
				require.ErrorAs(t, err, &classErr)
				assert.Equal(t, tc.description, classErr.Description)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedAccount, rule.AccountID)
			if tc.expectNoSubcat {
				assert.Nil(t, rule.SubcategoryID)
			} else {
				require.NotNil(t, rule.SubcategoryID)
				assert.Equal(t, tc.expectedSubcat, *rule.SubcategoryID)
			}
		})
	}
}

func TestClassifyPrefixOrderIsDeclarationOrder(t *testing.T) {
	// "llm coding tools" matches both prefixes; the longer rule is
	// declared first and must win.
	c := New(testRules())
	rule, err := c.Classify("llm coding tools")
	require.NoError(t, err)
	require.NotNil(t, rule.SubcategoryID)
	assert.Equal(t, int64(7), *rule.SubcategoryID)
}
