package extract

import "strings"

// Company is one (ticker, display name) pair matched in article text.
type Company struct {
	Ticker string
	Name   string
}

type capitalEntry struct {
	country string
	capital string
}

// Table order is load-bearing: Location returns the first match found while
// scanning countryCapitals top to bottom, so earlier entries win ties.
// Plain maps would make that nondeterministic, hence slices of pairs.
var countryCapitals = []capitalEntry{
	{"France", "Paris"}, {"French", "Paris"},
	{"Germany", "Berlin"}, {"German", "Berlin"},
	{"Japan", "Tokyo"}, {"Japanese", "Tokyo"},
	{"China", "Beijing"}, {"Chinese", "Beijing"},
	{"United Kingdom", "London"}, {"UK", "London"}, {"Britain", "London"}, {"British", "London"}, {"England", "London"},
	{"Italy", "Rome"}, {"Italian", "Rome"},
	{"Spain", "Madrid"}, {"Spanish", "Madrid"},
	{"Russia", "Moscow"}, {"Russian", "Moscow"},
	{"Australia", "Sydney"}, {"Australian", "Sydney"},
	{"Canada", "Toronto"}, {"Canadian", "Toronto"},
	{"India", "Mumbai"}, {"Indian", "Mumbai"},
	{"Brazil", "Brasilia"}, {"Brazilian", "Brasilia"},
	{"Mexico", "Mexico City"}, {"Mexican", "Mexico City"},
	{"South Korea", "Seoul"}, {"Korean", "Seoul"},
	{"Netherlands", "Amsterdam"}, {"Dutch", "Amsterdam"},
	{"Switzerland", "Zurich"}, {"Swiss", "Zurich"},
	{"Sweden", "Stockholm"}, {"Swedish", "Stockholm"},
	{"Norway", "Oslo"}, {"Norwegian", "Oslo"},
	{"Poland", "Warsaw"}, {"Polish", "Warsaw"},
	{"Ukraine", "Kyiv"}, {"Ukrainian", "Kyiv"},
	{"Israel", "Tel Aviv"}, {"Israeli", "Tel Aviv"},
	{"Saudi Arabia", "Riyadh"}, {"Saudi", "Riyadh"},
	{"UAE", "Dubai"}, {"United Arab Emirates", "Dubai"},
	{"Singapore", "Singapore"},
	{"Thailand", "Bangkok"}, {"Thai", "Bangkok"},
	{"Vietnam", "Hanoi"}, {"Vietnamese", "Hanoi"},
	{"Indonesia", "Jakarta"}, {"Indonesian", "Jakarta"},
	{"Philippines", "Manila"}, {"Filipino", "Manila"},
	{"Taiwan", "Taipei"}, {"Taiwanese", "Taipei"},
	{"Argentina", "Buenos Aires"}, {"Argentine", "Buenos Aires"},
	{"Chile", "Santiago"}, {"Chilean", "Santiago"},
	{"Egypt", "Cairo"}, {"Egyptian", "Cairo"},
	{"South Africa", "Johannesburg"}, {"South African", "Johannesburg"},
	{"Nigeria", "Lagos"}, {"Nigerian", "Lagos"},
	{"Turkey", "Istanbul"}, {"Turkish", "Istanbul"},
	{"Greece", "Athens"}, {"Greek", "Athens"},
	{"Portugal", "Lisbon"}, {"Portuguese", "Lisbon"},
	{"Ireland", "Dublin"}, {"Irish", "Dublin"},
	{"Austria", "Vienna"}, {"Austrian", "Vienna"},
	{"Belgium", "Brussels"}, {"Belgian", "Brussels"},
	{"Denmark", "Copenhagen"}, {"Danish", "Copenhagen"},
	{"Finland", "Helsinki"}, {"Finnish", "Helsinki"},
	{"Czech Republic", "Prague"}, {"Czech", "Prague"},
	{"Hungary", "Budapest"}, {"Hungarian", "Budapest"},
	{"New Zealand", "Auckland"},
}

var internationalCities = []string{
	"London", "Paris", "Berlin", "Tokyo", "Sydney", "Toronto", "Mumbai",
	"Beijing", "Dubai", "Singapore", "Moscow", "Rome", "Madrid",
	"Amsterdam", "Brussels", "Vienna", "Zurich", "Hong Kong", "Seoul",
	"Bangkok", "Shanghai", "Osaka", "Melbourne", "Vancouver", "Montreal",
	"Dublin", "Edinburgh", "Manchester", "Munich", "Frankfurt", "Milan",
	"Barcelona", "Lisbon", "Prague", "Warsaw", "Budapest", "Stockholm",
	"Oslo", "Copenhagen", "Helsinki", "Athens", "Istanbul", "Tel Aviv",
	"Cairo", "Lagos", "Johannesburg", "Cape Town", "Nairobi", "Casablanca",
	"Buenos Aires", "Sao Paulo", "Rio de Janeiro", "Lima", "Bogota",
	"Santiago", "Mexico City", "Havana", "San Juan", "Jakarta", "Manila",
	"Hanoi", "Ho Chi Minh", "Kuala Lumpur", "Taipei", "Auckland", "Wellington",
}

var usCities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	"Austin", "Jacksonville", "Fort Worth", "Columbus", "Charlotte",
	"Seattle", "Denver", "Washington", "Boston", "Nashville",
	"Detroit", "Portland", "Las Vegas", "Memphis", "Louisville",
	"Baltimore", "Milwaukee", "Albuquerque", "Tucson", "Fresno",
	"Sacramento", "Kansas City", "Atlanta", "Miami", "Oakland",
	"Minneapolis", "Cleveland", "Tampa", "St. Louis", "Pittsburgh",
	"San Francisco", "New Orleans", "Honolulu", "Anchorage", "Salt Lake City",
	"Raleigh", "Richmond", "Hartford", "Providence", "Buffalo",
}

// companyTickers maps company-name substrings to tickers. Distinct names may
// share a ticker (Meta and Facebook both map to META); Companies returns
// every match and callers dedup by ticker, first name wins.
var companyTickers = []Company{
	{"AAPL", "Apple"}, {"MSFT", "Microsoft"}, {"GOOGL", "Google"},
	{"AMZN", "Amazon"}, {"META", "Meta"}, {"META", "Facebook"},
	{"TSLA", "Tesla"}, {"NFLX", "Netflix"}, {"NVDA", "Nvidia"},
	{"AMD", "AMD"}, {"INTC", "Intel"}, {"IBM", "IBM"},
	{"WMT", "Walmart"}, {"DIS", "Disney"}, {"NKE", "Nike"},
	{"KO", "Coca-Cola"}, {"PEP", "Pepsi"}, {"MCD", "McDonald"},
	{"SBUX", "Starbucks"}, {"BA", "Boeing"}, {"F", "Ford"},
	{"GM", "General Motors"}, {"XOM", "Exxon"}, {"CVX", "Chevron"},
	{"JPM", "JPMorgan"}, {"BAC", "Bank of America"}, {"GS", "Goldman"},
	{"V", "Visa"}, {"MA", "Mastercard"}, {"PYPL", "PayPal"},
	{"UBER", "Uber"}, {"LYFT", "Lyft"}, {"ABNB", "Airbnb"},
	{"X", "Twitter"}, {"SNAP", "Snap"}, {"PINS", "Pinterest"},
	{"CRM", "Salesforce"}, {"ADBE", "Adobe"}, {"ORCL", "Oracle"},
	{"CSCO", "Cisco"}, {"QCOM", "Qualcomm"}, {"AVGO", "Broadcom"},
}

// Location derives a weather-lookup city from article text. Countries and
// demonyms resolve to their capital and are checked before city lists;
// returns "" when nothing matches. Pure function, no I/O.
func Location(title, description string) string {
	text := strings.ToLower(title + " " + description)

	for _, e := range countryCapitals {
		if strings.Contains(text, strings.ToLower(e.country)) {
			return e.capital
		}
	}

	for _, city := range internationalCities {
		if strings.Contains(text, strings.ToLower(city)) {
			return city
		}
	}

	for _, city := range usCities {
		if strings.Contains(text, strings.ToLower(city)) {
			return city
		}
	}

	return ""
}

// Companies returns every company mentioned in the article text, in table
// order, as (ticker, name) pairs. Matching is case-insensitive substring.
func Companies(title, description string) []Company {
	text := strings.ToLower(title + " " + description)

	var found []Company
	for _, c := range companyTickers {
		if strings.Contains(text, strings.ToLower(c.Name)) {
			found = append(found, c)
		}
	}

	return found
}
