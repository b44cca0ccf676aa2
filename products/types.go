package products

import (
	"time"

	"github.com/kbukum/mws/xmldecode"
)

// MoneyType is an amount in a currency.
type MoneyType struct {
	Amount       string
	CurrencyCode string
}

// DecodeField implements xmldecode.Fields.
func (m *MoneyType) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "Amount":
		return xmldecode.Into(c, &m.Amount, xmldecode.String)
	case "CurrencyCode":
		return xmldecode.Into(c, &m.CurrencyCode, xmldecode.String)
	}
	return nil
}

var money = xmldecode.Struct[MoneyType]()

// Price is a landed price with its listing and shipping parts.
type Price struct {
	LandedPrice  MoneyType
	ListingPrice MoneyType
	Shipping     MoneyType
}

// DecodeField implements xmldecode.Fields.
func (p *Price) DecodeField(c *xmldecode.Cursor) error {
	_, err := p.decodePriceField(c)
	return err
}

func (p *Price) decodePriceField(c *xmldecode.Cursor) (bool, error) {
	switch c.LocalName() {
	case "LandedPrice":
		return true, xmldecode.Into(c, &p.LandedPrice, money)
	case "ListingPrice":
		return true, xmldecode.Into(c, &p.ListingPrice, money)
	case "Shipping":
		return true, xmldecode.Into(c, &p.Shipping, money)
	}
	return false, nil
}

// DecimalWithUnits is a measurement such as <Height Units="inches">9.17</Height>.
type DecimalWithUnits struct {
	Value string
	Units string
}

// DecodeAttrs implements xmldecode.Attributes.
func (d *DecimalWithUnits) DecodeAttrs(c *xmldecode.Cursor) error {
	d.Units = xmldecode.AttrString(c, "Units")
	return nil
}

// DecodeContent implements xmldecode.Content.
func (d *DecimalWithUnits) DecodeContent(text string) error {
	d.Value = text
	return nil
}

var decimalWithUnits = xmldecode.Struct[DecimalWithUnits]()

// Identifiers locate a product by ASIN or by seller SKU.
type Identifiers struct {
	MarketplaceASIN *MarketplaceASIN
	SKUIdentifier   *SKUIdentifier
}

// MarketplaceASIN identifies a catalog item in a marketplace.
type MarketplaceASIN struct {
	MarketplaceID string
	ASIN          string
}

// SKUIdentifier identifies a seller's listing.
type SKUIdentifier struct {
	MarketplaceID string
	SellerID      string
	SellerSKU     string
}

// DecodeField implements xmldecode.Fields.
func (i *Identifiers) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "MarketplaceASIN":
		return xmldecode.Into(c, &i.MarketplaceASIN, xmldecode.Optional(xmldecode.Struct[MarketplaceASIN]()))
	case "SKUIdentifier":
		return xmldecode.Into(c, &i.SKUIdentifier, xmldecode.Optional(xmldecode.Struct[SKUIdentifier]()))
	}
	return nil
}

// DecodeField implements xmldecode.Fields.
func (m *MarketplaceASIN) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "MarketplaceId":
		return xmldecode.Into(c, &m.MarketplaceID, xmldecode.String)
	case "ASIN":
		return xmldecode.Into(c, &m.ASIN, xmldecode.String)
	}
	return nil
}

// DecodeField implements xmldecode.Fields.
func (s *SKUIdentifier) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "MarketplaceId":
		return xmldecode.Into(c, &s.MarketplaceID, xmldecode.String)
	case "SellerId":
		return xmldecode.Into(c, &s.SellerID, xmldecode.String)
	case "SellerSKU":
		return xmldecode.Into(c, &s.SellerSKU, xmldecode.String)
	}
	return nil
}

// Product is a catalog item with the seller's offers, attributes and ranks.
type Product struct {
	Identifiers   Identifiers
	Offers        []ProductOffer
	AttributeSets []ItemAttributes
	SalesRankings []SalesRank
}

// DecodeField implements xmldecode.Fields.
func (p *Product) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "Identifiers":
		return xmldecode.Into(c, &p.Identifiers, xmldecode.Struct[Identifiers]())
	case "Offers":
		return xmldecode.Into(c, &p.Offers, xmldecode.List("Offer", xmldecode.Struct[ProductOffer]()))
	case "AttributeSets":
		return xmldecode.Into(c, &p.AttributeSets, xmldecode.List("ItemAttributes", xmldecode.Struct[ItemAttributes]()))
	case "SalesRankings":
		return xmldecode.Into(c, &p.SalesRankings, xmldecode.List("SalesRank", xmldecode.Struct[SalesRank]()))
	}
	return nil
}

// ProductOffer is one of the seller's own offers on a product.
type ProductOffer struct {
	BuyingPrice        Price
	RegularPrice       MoneyType
	FulfillmentChannel string
	ItemCondition      ItemCondition
	ItemSubCondition   string
	SellerID           string
	SellerSKU          string
}

// DecodeField implements xmldecode.Fields.
func (o *ProductOffer) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "BuyingPrice":
		return xmldecode.Into(c, &o.BuyingPrice, xmldecode.Struct[Price]())
	case "RegularPrice":
		return xmldecode.Into(c, &o.RegularPrice, money)
	case "FulfillmentChannel":
		return xmldecode.Into(c, &o.FulfillmentChannel, xmldecode.String)
	case "ItemCondition":
		return xmldecode.Into(c, &o.ItemCondition, Conditions.Decode)
	case "ItemSubCondition":
		return xmldecode.Into(c, &o.ItemSubCondition, xmldecode.String)
	case "SellerId":
		return xmldecode.Into(c, &o.SellerID, xmldecode.String)
	case "SellerSKU":
		return xmldecode.Into(c, &o.SellerSKU, xmldecode.String)
	}
	return nil
}

// SalesRank is the product's rank in one category.
type SalesRank struct {
	ProductCategoryID string
	Rank              int
}

// DecodeField implements xmldecode.Fields.
func (s *SalesRank) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "ProductCategoryId":
		return xmldecode.Into(c, &s.ProductCategoryID, xmldecode.String)
	case "Rank":
		return xmldecode.Into(c, &s.Rank, xmldecode.Int)
	}
	return nil
}

// Identifier names the listing a competitive pricing answer is about.
type Identifier struct {
	MarketplaceID     string
	SellerSKU         string
	ItemCondition     ItemCondition
	TimeOfOfferChange *time.Time
}

// DecodeField implements xmldecode.Fields.
func (i *Identifier) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "MarketplaceId":
		return xmldecode.Into(c, &i.MarketplaceID, xmldecode.String)
	case "SellerSKU":
		return xmldecode.Into(c, &i.SellerSKU, xmldecode.String)
	case "ItemCondition":
		return xmldecode.Into(c, &i.ItemCondition, Conditions.Decode)
	case "TimeOfOfferChange":
		return xmldecode.Into(c, &i.TimeOfOfferChange, xmldecode.Optional(xmldecode.Time))
	}
	return nil
}

// OfferCount is <OfferCount condition="new" fulfillmentChannel="Amazon">3</OfferCount>.
type OfferCount struct {
	Condition          string
	FulfillmentChannel string
	Value              int
}

// DecodeAttrs implements xmldecode.Attributes.
func (o *OfferCount) DecodeAttrs(c *xmldecode.Cursor) error {
	o.Condition = xmldecode.AttrString(c, "condition")
	o.FulfillmentChannel = xmldecode.AttrString(c, "fulfillmentChannel")
	return nil
}

// DecodeContent implements xmldecode.Content.
func (o *OfferCount) DecodeContent(text string) error {
	n, err := xmldecode.ParseInt(text)
	o.Value = n
	return err
}

// Points is a loyalty points grant.
type Points struct {
	PointsNumber        int
	PointsMonetaryValue MoneyType
}

// DecodeField implements xmldecode.Fields.
func (p *Points) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "PointsNumber":
		return xmldecode.Into(c, &p.PointsNumber, xmldecode.Int)
	case "PointsMonetaryValue":
		return xmldecode.Into(c, &p.PointsMonetaryValue, money)
	}
	return nil
}

// LowestPrice is the lowest price for a condition and fulfillment channel.
type LowestPrice struct {
	Condition          string
	FulfillmentChannel string
	Price
	Points *Points
}

// DecodeAttrs implements xmldecode.Attributes.
func (l *LowestPrice) DecodeAttrs(c *xmldecode.Cursor) error {
	l.Condition = xmldecode.AttrString(c, "condition")
	l.FulfillmentChannel = xmldecode.AttrString(c, "fulfillmentChannel")
	return nil
}

// DecodeField implements xmldecode.Fields.
func (l *LowestPrice) DecodeField(c *xmldecode.Cursor) error {
	if ok, err := l.decodePriceField(c); ok {
		return err
	}
	if c.LocalName() == "Points" {
		return xmldecode.Into(c, &l.Points, xmldecode.Optional(xmldecode.Struct[Points]()))
	}
	return nil
}

// BuyBoxPrice is the buy box price for a condition.
type BuyBoxPrice struct {
	Condition string
	Price
}

// DecodeAttrs implements xmldecode.Attributes.
func (b *BuyBoxPrice) DecodeAttrs(c *xmldecode.Cursor) error {
	b.Condition = xmldecode.AttrString(c, "condition")
	return nil
}

// Summary aggregates the competitive offers on a listing.
type Summary struct {
	TotalOfferCount      int
	NumberOfOffers       []OfferCount
	LowestPrices         []LowestPrice
	BuyBoxPrices         []BuyBoxPrice
	BuyBoxEligibleOffers []OfferCount
}

// DecodeField implements xmldecode.Fields.
func (s *Summary) DecodeField(c *xmldecode.Cursor) error {
	offerCounts := xmldecode.List("OfferCount", xmldecode.Struct[OfferCount]())
	switch c.LocalName() {
	case "TotalOfferCount":
		return xmldecode.Into(c, &s.TotalOfferCount, xmldecode.Int)
	case "NumberOfOffers":
		return xmldecode.Into(c, &s.NumberOfOffers, offerCounts)
	case "LowestPrices":
		return xmldecode.Into(c, &s.LowestPrices, xmldecode.List("LowestPrice", xmldecode.Struct[LowestPrice]()))
	case "BuyBoxPrices":
		return xmldecode.Into(c, &s.BuyBoxPrices, xmldecode.List("BuyBoxPrice", xmldecode.Struct[BuyBoxPrice]()))
	case "BuyBoxEligibleOffers":
		return xmldecode.Into(c, &s.BuyBoxEligibleOffers, offerCounts)
	}
	return nil
}

// SellerFeedbackRating summarizes a competitor's feedback.
type SellerFeedbackRating struct {
	SellerPositiveFeedbackRating *string
	FeedbackCount                int
}

// DecodeField implements xmldecode.Fields.
func (s *SellerFeedbackRating) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "SellerPositiveFeedbackRating":
		return xmldecode.Into(c, &s.SellerPositiveFeedbackRating, xmldecode.Optional(xmldecode.String))
	case "FeedbackCount":
		return xmldecode.Into(c, &s.FeedbackCount, xmldecode.Int)
	}
	return nil
}

// ShippingTime is carried entirely in attributes:
//
//	<ShippingTime minimumHours="24" maximumHours="48" availabilityType="NOW"/>
type ShippingTime struct {
	MinimumHours     *int
	MaximumHours     *int
	AvailableDate    *time.Time
	AvailabilityType *AvailabilityType
}

// DecodeAttrs implements xmldecode.Attributes.
func (s *ShippingTime) DecodeAttrs(c *xmldecode.Cursor) error {
	var err error
	if s.MinimumHours, err = xmldecode.AttrOptional(c, "minimumHours", xmldecode.ParseInt); err != nil {
		return err
	}
	if s.MaximumHours, err = xmldecode.AttrOptional(c, "maximumHours", xmldecode.ParseInt); err != nil {
		return err
	}
	if s.AvailableDate, err = xmldecode.AttrOptional(c, "availabilityDate", xmldecode.ParseTime); err != nil {
		return err
	}
	s.AvailabilityType, err = xmldecode.AttrOptional(c, "availabilityType", func(raw string) (AvailabilityType, error) {
		return Availabilities.Parse(raw), nil
	})
	return err
}

// ShipsFrom is the origin of a competing offer.
type ShipsFrom struct {
	State   string
	Country string
}

// DecodeField implements xmldecode.Fields.
func (s *ShipsFrom) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "State":
		return xmldecode.Into(c, &s.State, xmldecode.String)
	case "Country":
		return xmldecode.Into(c, &s.Country, xmldecode.String)
	}
	return nil
}

// Offer is one competing offer on a listing.
type Offer struct {
	MyOffer              bool
	SubCondition         string
	SellerFeedbackRating SellerFeedbackRating
	ShippingTime         ShippingTime
	ListingPrice         MoneyType
	Shipping             MoneyType
	ShipsFrom            *ShipsFrom
	IsFulfilledByAmazon  bool
	IsBuyBoxWinner       bool
	IsFeaturedMerchant   bool
}

// DecodeField implements xmldecode.Fields.
func (o *Offer) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "MyOffer":
		return xmldecode.Into(c, &o.MyOffer, xmldecode.Bool)
	case "SubCondition":
		return xmldecode.Into(c, &o.SubCondition, xmldecode.String)
	case "SellerFeedbackRating":
		return xmldecode.Into(c, &o.SellerFeedbackRating, xmldecode.Struct[SellerFeedbackRating]())
	case "ShippingTime":
		return xmldecode.Into(c, &o.ShippingTime, xmldecode.Struct[ShippingTime]())
	case "ListingPrice":
		return xmldecode.Into(c, &o.ListingPrice, money)
	case "Shipping":
		return xmldecode.Into(c, &o.Shipping, money)
	case "ShipsFrom":
		return xmldecode.Into(c, &o.ShipsFrom, xmldecode.Optional(xmldecode.Struct[ShipsFrom]()))
	case "IsFulfilledByAmazon":
		return xmldecode.Into(c, &o.IsFulfilledByAmazon, xmldecode.Bool)
	case "IsBuyBoxWinner":
		return xmldecode.Into(c, &o.IsBuyBoxWinner, xmldecode.Bool)
	case "IsFeaturedMerchant":
		return xmldecode.Into(c, &o.IsFeaturedMerchant, xmldecode.Bool)
	}
	return nil
}
