package schema

// IPTC legacy category codes accepted in descriptive.category.
var iptcCategories = map[string]bool{
	"ACE": true, // arts, culture and entertainment
	"CLJ": true, // crime, law and justice
	"DIS": true, // disasters and accidents
	"EBF": true, // economy, business and finance
	"EDU": true, // education
	"ENV": true, // environment
	"HTH": true, // health
	"HUM": true, // human interest
	"LAB": true, // labour
	"LIF": true, // lifestyle and leisure
	"POL": true, // politics
	"REL": true, // religion
	"SCI": true, // science and technology
	"SOI": true, // social issues
	"SPO": true, // sport
	"WAR": true, // unrest, conflicts and war
	"WEA": true, // weather
}

// IsIPTCCategory reports whether code is a known IPTC category code.
func IsIPTCCategory(code string) bool {
	return iptcCategories[code]
}
