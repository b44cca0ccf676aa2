package region

import (
	"reflect"
	"testing"

	"github.com/kbukum/mws/errors"
)

func TestGet(t *testing.T) {
	tests := []struct {
		id       string
		endpoint string
	}{
		{NA, "mws.amazonservices.com"},
		{EU, "mws-eu.amazonservices.com"},
		{IN, "mws.amazonservices.com"},
		{CN, "mws.amazonservices.com.cn"},
		{JP, "mws.amazonservices.jp"},
		{AU, "mws.amazonservices.com.au"},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			r, ok := Get(tc.id)
			if !ok {
				t.Fatalf("region %s not found", tc.id)
			}
			if r.Endpoint != tc.endpoint {
				t.Errorf("Endpoint = %s, want %s", r.Endpoint, tc.endpoint)
			}
			host, err := Endpoint(tc.id)
			if err != nil || host != tc.endpoint {
				t.Errorf("Endpoint(%s) = %s, %v", tc.id, host, err)
			}
		})
	}
}

func TestEndpoint_Unknown(t *testing.T) {
	_, err := Endpoint("mars")
	if !errors.IsConfiguration(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestMarketplaceIDs(t *testing.T) {
	na, _ := Get(NA)
	if got, want := na.MarketplaceIDs(), []string{MarketplaceCA, MarketplaceMX, MarketplaceUS}; !reflect.DeepEqual(got, want) {
		t.Errorf("NA marketplaces = %v, want %v", got, want)
	}
	eu, _ := Get(EU)
	if got := len(eu.Marketplaces()); got != 5 {
		t.Errorf("EU has %d marketplaces, want 5", got)
	}
}

func TestMarketplaceRegion(t *testing.T) {
	r, ok := MarketplaceRegion(MarketplaceGB)
	if !ok || r.ID != EU {
		t.Errorf("GB region = %+v, %v", r, ok)
	}
	if _, ok := MarketplaceRegion("UNKNOWN"); ok {
		t.Error("unknown marketplace should not resolve")
	}
}

func TestIDs(t *testing.T) {
	if got := IDs(); !reflect.DeepEqual(got, []string{NA, EU, IN, CN, JP, AU}) {
		t.Errorf("IDs = %v", got)
	}
}

func TestResolveStateCode_US(t *testing.T) {
	us, _ := GetMarketplace(MarketplaceUS)
	tests := []struct {
		in   string
		want string
	}{
		{"Al", "AL"},
		{"ALABAMA", "AL"},
		{"Ca.", "CA"},
		{"District of Columbia", "DC"},
		{"N.J.", "NJ"},
		{"N.Y.", "NY"},
		{"new  york", "NY"},
		{"TX ", "TX"},
		{"WEST VIRGINIA", "WV"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := us.ResolveStateCode("US", tc.in)
			if !ok || got != tc.want {
				t.Errorf("ResolveStateCode(%q) = %q, %v; want %q", tc.in, got, ok, tc.want)
			}
		})
	}

	if _, ok := us.ResolveStateCode("US", "Calif"); ok {
		t.Error("unrecognized state should not resolve")
	}
}

func TestResolveStateCode_Passthrough(t *testing.T) {
	us, _ := GetMarketplace(MarketplaceUS)
	ca, _ := GetMarketplace(MarketplaceCA)

	if got, ok := us.ResolveStateCode("PR", "San Juan"); !ok || got != "San Juan" {
		t.Errorf("non-US country = %q, %v", got, ok)
	}
	if got, ok := ca.ResolveStateCode("CA", "Ontario"); !ok || got != "Ontario" {
		t.Errorf("non-US marketplace = %q, %v", got, ok)
	}
}
