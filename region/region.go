// Package region maps region and marketplace identifiers to the service
// endpoints that serve them.
package region

import (
	"slices"

	"github.com/kbukum/mws/errors"
)

// Region identifiers.
const (
	NA = "na"
	EU = "eu"
	IN = "in"
	CN = "cn"
	JP = "jp"
	AU = "au"
)

// Marketplace identifiers.
const (
	MarketplaceCA = "A2EUQ1WTGCTBG2"
	MarketplaceMX = "A1AM78C64UM0Y8"
	MarketplaceUS = "ATVPDKIKX0DER"
	MarketplaceDE = "A1PA6795UKMFR9"
	MarketplaceES = "A1RKKUPIHCS9HS"
	MarketplaceFR = "A13V1IB3VIYZZH"
	MarketplaceIT = "APJ6JRA9NG5V4"
	MarketplaceGB = "A1F83G8C2ARO7P"
	MarketplaceIN = "A21TJRUUN4KGV"
	MarketplaceJP = "A1VC38T7YXB528"
	MarketplaceCN = "AAHKV2X7AFYLW"
	MarketplaceAU = "A39IBJ37TRP1C6"
)

// Region is one service region.
type Region struct {
	ID       string
	Name     string
	Endpoint string
}

// Marketplace is one storefront within a region.
type Marketplace struct {
	ID       string
	Name     string
	RegionID string
	Country  string
}

var regions = []Region{
	{ID: NA, Name: "North America (NA)", Endpoint: "mws.amazonservices.com"},
	{ID: EU, Name: "Europe (EU)", Endpoint: "mws-eu.amazonservices.com"},
	{ID: IN, Name: "India (IN)", Endpoint: "mws.amazonservices.com"},
	{ID: CN, Name: "China (CN)", Endpoint: "mws.amazonservices.com.cn"},
	{ID: JP, Name: "Japan (JP)", Endpoint: "mws.amazonservices.jp"},
	{ID: AU, Name: "Australia (AU)", Endpoint: "mws.amazonservices.com.au"},
}

var marketplaces = []Marketplace{
	{ID: MarketplaceCA, RegionID: NA, Name: "Canada", Country: "CA"},
	{ID: MarketplaceMX, RegionID: NA, Name: "Mexico", Country: "MX"},
	{ID: MarketplaceUS, RegionID: NA, Name: "USA", Country: "US"},

	{ID: MarketplaceDE, RegionID: EU, Name: "Germany", Country: "DE"},
	{ID: MarketplaceES, RegionID: EU, Name: "Spain", Country: "ES"},
	{ID: MarketplaceFR, RegionID: EU, Name: "France", Country: "FR"},
	{ID: MarketplaceIT, RegionID: EU, Name: "Italy", Country: "IT"},
	{ID: MarketplaceGB, RegionID: EU, Name: "United Kingdom", Country: "GB"},

	{ID: MarketplaceIN, RegionID: IN, Name: "India", Country: "IN"},
	{ID: MarketplaceJP, RegionID: JP, Name: "Japan", Country: "JP"},
	{ID: MarketplaceCN, RegionID: CN, Name: "China", Country: "CN"},
	{ID: MarketplaceAU, RegionID: AU, Name: "Australia", Country: "AU"},
}

// IDs returns every known region id, for validation tags and help text.
func IDs() []string {
	ids := make([]string, len(regions))
	for i, r := range regions {
		ids[i] = r.ID
	}
	return ids
}

// Get returns the region with the given id.
func Get(id string) (Region, bool) {
	i := slices.IndexFunc(regions, func(r Region) bool { return r.ID == id })
	if i < 0 {
		return Region{}, false
	}
	return regions[i], true
}

// Endpoint returns the endpoint host of a region, or a configuration error
// for unknown ids.
func Endpoint(id string) (string, error) {
	r, ok := Get(id)
	if !ok {
		return "", errors.Configuration("region", "unknown region "+id)
	}
	return r.Endpoint, nil
}

// Marketplaces returns the marketplaces served by a region, in table order.
func (r Region) Marketplaces() []Marketplace {
	var out []Marketplace
	for _, m := range marketplaces {
		if m.RegionID == r.ID {
			out = append(out, m)
		}
	}
	return out
}

// MarketplaceIDs returns the ids of the region's marketplaces.
func (r Region) MarketplaceIDs() []string {
	ms := r.Marketplaces()
	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.ID
	}
	return ids
}

// GetMarketplace returns the marketplace with the given id.
func GetMarketplace(id string) (Marketplace, bool) {
	i := slices.IndexFunc(marketplaces, func(m Marketplace) bool { return m.ID == id })
	if i < 0 {
		return Marketplace{}, false
	}
	return marketplaces[i], true
}

// MarketplaceRegion returns the region serving a marketplace.
func MarketplaceRegion(marketplaceID string) (Region, bool) {
	m, ok := GetMarketplace(marketplaceID)
	if !ok {
		return Region{}, false
	}
	return Get(m.RegionID)
}
