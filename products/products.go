package products

import (
	"context"

	"github.com/kbukum/mws/client"
	"github.com/kbukum/mws/envelope"
	"github.com/kbukum/mws/errors"
	"github.com/kbukum/mws/params"
	"github.com/kbukum/mws/xmldecode"
)

const (
	Path    = "/Products/2011-10-01"
	Version = "2011-10-01"
)

// Batch result statuses.
const (
	StatusSuccess     = "Success"
	StatusClientError = "ClientError"
	StatusServerError = "ServerError"
)

func op(action string) client.Operation {
	return client.Operation{Path: Path, Version: Version, Action: action}
}

func required(path, name, value string) error {
	if value == "" {
		return errors.Encoding(params.Join(path, name), "required value is empty")
	}
	return nil
}

// ResultError is the per-item error of a batch result whose status is not
// Success.
type ResultError struct {
	Type    string
	Code    string
	Message string
}

// DecodeField implements xmldecode.Fields.
func (e *ResultError) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "Type":
		return xmldecode.Into(c, &e.Type, xmldecode.String)
	case "Code":
		return xmldecode.Into(c, &e.Code, xmldecode.String)
	case "Message":
		return xmldecode.Into(c, &e.Message, xmldecode.String)
	}
	return nil
}

// --- GetLowestPricedOffersForSKU ---

// LowestPricedOffersParams selects a listing by SKU.
type LowestPricedOffersParams struct {
	MarketplaceID string
	SellerSKU     string
	ItemCondition ItemCondition
}

// EncodeParams implements params.Value.
func (p LowestPricedOffersParams) EncodeParams(path string, pairs *params.Pairs) error {
	if err := required(path, "MarketplaceId", p.MarketplaceID); err != nil {
		return err
	}
	if err := required(path, "SellerSKU", p.SellerSKU); err != nil {
		return err
	}
	if err := required(path, "ItemCondition", p.ItemCondition.String()); err != nil {
		return err
	}
	return params.Object{
		params.Field("MarketplaceId", params.String(p.MarketplaceID)),
		params.Field("SellerSKU", params.String(p.SellerSKU)),
		params.Field("ItemCondition", p.ItemCondition),
	}.EncodeParams(path, pairs)
}

// LowestPricedOffers is the competitive pricing of one listing.
type LowestPricedOffers struct {
	Identifier Identifier
	Summary    Summary
	Offers     []Offer
}

// DecodeField implements xmldecode.Fields.
func (l *LowestPricedOffers) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "Identifier":
		return xmldecode.Into(c, &l.Identifier, xmldecode.Struct[Identifier]())
	case "Summary":
		return xmldecode.Into(c, &l.Summary, xmldecode.Struct[Summary]())
	case "Offers":
		return xmldecode.Into(c, &l.Offers, xmldecode.List("Offer", xmldecode.Struct[Offer]()))
	}
	return nil
}

// GetLowestPricedOffersForSKU returns the lowest priced offers on a listing.
func GetLowestPricedOffersForSKU(ctx context.Context, c *client.Client, p LowestPricedOffersParams) (*envelope.Response[LowestPricedOffers], error) {
	return client.Invoke(ctx, c, op("GetLowestPricedOffersForSKU"), p, xmldecode.Struct[LowestPricedOffers]())
}

// --- GetMyPriceForASIN ---

// MyPriceParams selects up to 20 ASINs.
type MyPriceParams struct {
	MarketplaceID string
	ASINs         []string
	ItemCondition *ItemCondition
}

// EncodeParams implements params.Value.
func (p MyPriceParams) EncodeParams(path string, pairs *params.Pairs) error {
	if err := required(path, "MarketplaceId", p.MarketplaceID); err != nil {
		return err
	}
	if len(p.ASINs) == 0 {
		return errors.Encoding(params.Join(path, "ASINList"), "at least one ASIN is required")
	}
	return params.Object{
		params.Field("MarketplaceId", params.String(p.MarketplaceID)),
		params.Field("ASINList", params.Strings("ASIN", p.ASINs)),
		params.Field("ItemCondition", params.Opt(p.ItemCondition, func(v ItemCondition) params.Value { return v })),
	}.EncodeParams(path, pairs)
}

// MyPriceResult is the answer for one requested ASIN.
type MyPriceResult struct {
	ASIN    string
	Status  string
	Product Product
	Error   *ResultError
}

// DecodeAttrs implements xmldecode.Attributes.
func (r *MyPriceResult) DecodeAttrs(c *xmldecode.Cursor) error {
	r.ASIN = xmldecode.AttrString(c, "ASIN")
	r.Status = xmldecode.AttrString(c, "status")
	return nil
}

// DecodeField implements xmldecode.Fields.
func (r *MyPriceResult) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "Product":
		return xmldecode.Into(c, &r.Product, xmldecode.Struct[Product]())
	case "Error":
		return xmldecode.Into(c, &r.Error, xmldecode.Optional(xmldecode.Struct[ResultError]()))
	}
	return nil
}

// GetMyPriceForASIN returns the seller's own offers for each ASIN, one
// result per requested ASIN.
func GetMyPriceForASIN(ctx context.Context, c *client.Client, p MyPriceParams) (*envelope.Response[[]MyPriceResult], error) {
	return client.InvokeBatch(ctx, c, op("GetMyPriceForASIN"), p, xmldecode.Struct[MyPriceResult]())
}

// --- GetMatchingProductForId ---

// MatchingProductParams looks up catalog items by ASIN, GCID, SellerSKU,
// UPC, EAN, ISBN or JAN.
type MatchingProductParams struct {
	MarketplaceID string
	IDType        string
	IDs           []string
}

// EncodeParams implements params.Value.
func (p MatchingProductParams) EncodeParams(path string, pairs *params.Pairs) error {
	if err := required(path, "MarketplaceId", p.MarketplaceID); err != nil {
		return err
	}
	if err := required(path, "IdType", p.IDType); err != nil {
		return err
	}
	if len(p.IDs) == 0 {
		return errors.Encoding(params.Join(path, "IdList"), "at least one id is required")
	}
	return params.Object{
		params.Field("MarketplaceId", params.String(p.MarketplaceID)),
		params.Field("IdType", params.String(p.IDType)),
		params.Field("IdList", params.Strings("Id", p.IDs)),
	}.EncodeParams(path, pairs)
}

// MatchingProductResult holds the catalog matches for one requested id.
type MatchingProductResult struct {
	ID       string
	IDType   string
	Status   string
	Products []Product
	Error    *ResultError
}

// DecodeAttrs implements xmldecode.Attributes.
func (r *MatchingProductResult) DecodeAttrs(c *xmldecode.Cursor) error {
	r.ID = xmldecode.AttrString(c, "Id")
	r.IDType = xmldecode.AttrString(c, "IdType")
	r.Status = xmldecode.AttrString(c, "status")
	return nil
}

// DecodeField implements xmldecode.Fields.
func (r *MatchingProductResult) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "Products":
		return xmldecode.Into(c, &r.Products, xmldecode.List("Product", xmldecode.Struct[Product]()))
	case "Error":
		return xmldecode.Into(c, &r.Error, xmldecode.Optional(xmldecode.Struct[ResultError]()))
	}
	return nil
}

// GetMatchingProductForId returns catalog items for each requested id.
func GetMatchingProductForId(ctx context.Context, c *client.Client, p MatchingProductParams) (*envelope.Response[[]MatchingProductResult], error) {
	return client.InvokeBatch(ctx, c, op("GetMatchingProductForId"), p, xmldecode.Struct[MatchingProductResult]())
}
