package mapping

// Country and region code tables for the supported checkout markets.
//
// The gateway speaks ISO 3166-1 alpha-2 while the host platform stores
// alpha-3; the table below must stay symmetric so that
// TwoLetterCountryCode(ThreeLetterCountryCode(x)) == x for every entry.

var countryThreeToTwo = map[string]string{
	"AUS": "AU",
	"AUT": "AT",
	"BEL": "BE",
	"CAN": "CA",
	"CHE": "CH",
	"DEU": "DE",
	"DNK": "DK",
	"ESP": "ES",
	"FIN": "FI",
	"FRA": "FR",
	"GBR": "GB",
	"IRL": "IE",
	"ITA": "IT",
	"NLD": "NL",
	"NOR": "NO",
	"NZL": "NZ",
	"POL": "PL",
	"PRT": "PT",
	"SWE": "SE",
	"USA": "US",
}

var countryTwoToThree = func() map[string]string {
	m := make(map[string]string, len(countryThreeToTwo))
	for three, two := range countryThreeToTwo {
		m[two] = three
	}
	return m
}()

// TwoLetterCountryCode converts an alpha-3 code to alpha-2. Unknown codes
// map to "".
func TwoLetterCountryCode(threeLetter string) string {
	return countryThreeToTwo[threeLetter]
}

// ThreeLetterCountryCode converts an alpha-2 code to alpha-3. Unknown codes
// map to "".
func ThreeLetterCountryCode(twoLetter string) string {
	return countryTwoToThree[twoLetter]
}

// regionCodesByCountry maps region display names to region codes, scoped by
// alpha-2 country code. Only countries with gateway-relevant region handling
// carry a table.
var regionCodesByCountry = map[string]map[string]string{
	"US": {
		"Alabama":              "AL",
		"Alaska":               "AK",
		"Arizona":              "AZ",
		"Arkansas":             "AR",
		"California":           "CA",
		"Colorado":             "CO",
		"Connecticut":          "CT",
		"Delaware":             "DE",
		"District of Columbia": "DC",
		"Florida":              "FL",
		"Georgia":              "GA",
		"Hawaii":               "HI",
		"Idaho":                "ID",
		"Illinois":             "IL",
		"Indiana":              "IN",
		"Iowa":                 "IA",
		"Kansas":               "KS",
		"Kentucky":             "KY",
		"Louisiana":            "LA",
		"Maine":                "ME",
		"Maryland":             "MD",
		"Massachusetts":        "MA",
		"Michigan":             "MI",
		"Minnesota":            "MN",
		"Mississippi":          "MS",
		"Missouri":             "MO",
		"Montana":              "MT",
		"Nebraska":             "NE",
		"Nevada":               "NV",
		"New Hampshire":        "NH",
		"New Jersey":           "NJ",
		"New Mexico":           "NM",
		"New York":             "NY",
		"North Carolina":       "NC",
		"North Dakota":         "ND",
		"Ohio":                 "OH",
		"Oklahoma":             "OK",
		"Oregon":               "OR",
		"Pennsylvania":         "PA",
		"Rhode Island":         "RI",
		"South Carolina":       "SC",
		"South Dakota":         "SD",
		"Tennessee":            "TN",
		"Texas":                "TX",
		"Utah":                 "UT",
		"Vermont":              "VT",
		"Virginia":             "VA",
		"Washington":           "WA",
		"West Virginia":        "WV",
		"Wisconsin":            "WI",
		"Wyoming":              "WY",
	},
	"CA": {
		"Alberta":                   "AB",
		"British Columbia":          "BC",
		"Manitoba":                  "MB",
		"New Brunswick":             "NB",
		"Newfoundland and Labrador": "NL",
		"Northwest Territories":     "NT",
		"Nova Scotia":               "NS",
		"Nunavut":                   "NU",
		"Ontario":                   "ON",
		"Prince Edward Island":      "PE",
		"Quebec":                    "QC",
		"Saskatchewan":              "SK",
		"Yukon":                     "YT",
	},
}

var regionNamesByCountry = func() map[string]map[string]string {
	out := make(map[string]map[string]string, len(regionCodesByCountry))
	for country, codes := range regionCodesByCountry {
		names := make(map[string]string, len(codes))
		for name, code := range codes {
			names[code] = name
		}
		out[country] = names
	}
	return out
}()

// RegionCode resolves a region display name to its code within a country.
// Unknown country or region yields "".
func RegionCode(twoLetterCountry, regionName string) string {
	return regionCodesByCountry[twoLetterCountry][regionName]
}

// RegionName resolves a region code back to its display name within a
// country. Unknown country or code yields "".
func RegionName(twoLetterCountry, regionCode string) string {
	return regionNamesByCountry[twoLetterCountry][regionCode]
}
