package refdata

// VendorAliases maps canonical vendor names to the raw alias strings that
// appear in source spreadsheets. Aliases are matched case-insensitively.
// A raw alias must map to exactly one canonical name; the vendor directory
// rejects the table at load time if two entries claim the same alias.
var VendorAliases = map[string][]string{
	"Ace Hardware":              {"Ace Hardware"},
	"Airbnb":                    {"AirBnb"},
	"Amazon":                    {"Amazon"},
	"Anderson Law":              {"Anderson"},
	"ARCO":                      {"Arco?"},
	"Ashland Mobile":            {"ashland mobile"},
	"Best Buy":                  {"Best Buy"},
	"Anthropic (Claude)":        {"Claude", "claud"},
	"DigitalOcean":              {"Digital Ocean"},
	"Discord / Mitch Ray":       {"Discord Mitch Ray", "mitchray TA"},
	"Enterprise Rent-A-Car":     {"Enterprise Rentacar"},
	"Eugene Chevron":            {"Eugene Chevron"},
	"EventHelper":               {"EventHelper"},
	"Meta (Facebook)":           {"Facebook Vendor"},
	"Fiverr":                    {"Fiverr"},
	"GoDaddy":                   {"Godaddy"},
	"Goodstack":                 {"goodstack"},
	"Harbor Freight":            {"Harbor Freight"},
	"Harland Clarke":            {"Harlond Clarke"},
	"ITU Online Training":       {"ITU", "ITU Training", "itu online"},
	"Jess Langpap":              {"Jess Langpap"},
	"JetBrains":                 {"JetBrains"},
	"Mail Stop":                 {"Mail Stop", "mailstop"},
	"Matt Campbell":             {"Matt Campbell", "Matt Mileage OR"},
	"Medford Airport":           {"Medford Airport"},
	"Mt. Ashland Foundation":    {"Mt Ashland Foundation"},
	"Oregon Secretary of State": {"OR Secretary of State", "Oregon SOS"},
	"OpenAI":                    {"OpenAI", "Chatgpt", "chatgpt"},
	"Pilot Flying J":            {"Pilot"},
	"Replit":                    {"Replit", "replit"},
	"SmallPDF":                  {"SmalPDF"},
	"Stripe":                    {"stripe"},
	"TradingView":               {"Trading View"},
	"Verizon":                   {"verizon"},
	"Walmart":                   {"Walmart"},
	"Wells Fargo":               {"Wells Fargo"},
	"Zach Pistole":              {"Zach Pistole"},
}
