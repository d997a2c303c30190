package refdata

import (
	"github.com/mattc321/fish-cli/internal/classifier"
	"github.com/mattc321/fish-cli/internal/models"
)

func subcategory(id int64) *int64 {
	return &id
}

// DescriptionRules is the ordered rule table for classifying expense
// descriptions. Order matters: prefix matching walks the table top to
// bottom, so more specific keyphrases ("llm coding") come before their
// shorter prefixes ("llm").
var DescriptionRules = []classifier.Rule{
	{Keyphrase: "phone stipend", AccountID: Accounts["telephone_internet"], SubcategoryID: subcategory(14), FunctionalClass: models.FunctionalClassManagementGeneral},
	{Keyphrase: "home office", AccountID: Accounts["office_supplies"], SubcategoryID: subcategory(10), FunctionalClass: models.FunctionalClassManagementGeneral},
	{Keyphrase: "utilities", AccountID: Accounts["utilities"], SubcategoryID: subcategory(7), FunctionalClass: models.FunctionalClassManagementGeneral},
	{Keyphrase: "internet", AccountID: Accounts["telephone_internet"], SubcategoryID: subcategory(14), FunctionalClass: models.FunctionalClassManagementGeneral},
	{Keyphrase: "llm coding", AccountID: Accounts["software_tech"], SubcategoryID: subcategory(11), FunctionalClass: models.FunctionalClassProgram},
	{Keyphrase: "investment channel", AccountID: Accounts["misc_expense"], FunctionalClass: models.FunctionalClassManagementGeneral},
	{Keyphrase: "llm", AccountID: Accounts["software_tech"], SubcategoryID: subcategory(11), FunctionalClass: models.FunctionalClassProgram},
	{Keyphrase: "monthly subscription", AccountID: Accounts["software_tech"], SubcategoryID: subcategory(11), FunctionalClass: models.FunctionalClassProgram},
	{Keyphrase: "fundraising", AccountID: Accounts["software_tech"], SubcategoryID: subcategory(11), FunctionalClass: models.FunctionalClassProgram},
	{Keyphrase: "training", AccountID: Accounts["conference_reg"], SubcategoryID: subcategory(19), FunctionalClass: models.FunctionalClassProgram},
	{Keyphrase: "domain renew", AccountID: Accounts["marketing"], SubcategoryID: subcategory(28), FunctionalClass: models.FunctionalClassProgram},
	{Keyphrase: "pobox", AccountID: Accounts["postage_shipping"], SubcategoryID: subcategory(12), FunctionalClass: models.FunctionalClassManagementGeneral},
}
