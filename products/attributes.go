package products

import "github.com/kbukum/mws/xmldecode"

// ItemAttributes is the commonly used subset of a catalog item's
// attribute set. Children not listed here are skipped.
type ItemAttributes struct {
	// Language is the xml:lang of the attribute set.
	Language             *string
	Author               []string
	Binding              *string
	Brand                *string
	Color                *string
	Creator              []Creator
	Edition              *string
	Feature              []string
	ItemDimensions       *Dimension
	IsAdultProduct       *bool
	IsEligibleForTradeIn *bool
	Label                *string
	Languages            []Language
	ListPrice            *MoneyType
	Manufacturer         *string
	Model                *string
	NumberOfItems        *int
	NumberOfPages        *int
	PackageDimensions    *Dimension
	PackageQuantity      *int
	PartNumber           *string
	Platform             []string
	ProductGroup         *string
	ProductTypeName      *string
	PublicationDate      *string
	Publisher            *string
	ReleaseDate          *string
	Size                 *string
	SmallImage           *Image
	Studio               *string
	Title                *string
}

// DecodeAttrs implements xmldecode.Attributes.
func (a *ItemAttributes) DecodeAttrs(c *xmldecode.Cursor) error {
	if lang, ok := c.Attr("lang"); ok {
		a.Language = &lang
	}
	return nil
}

// DecodeField implements xmldecode.Fields.
func (a *ItemAttributes) DecodeField(c *xmldecode.Cursor) error {
	optString := xmldecode.Optional(xmldecode.String)
	optInt := xmldecode.Optional(xmldecode.Int)
	optBool := xmldecode.Optional(xmldecode.Bool)
	dimension := xmldecode.Optional(xmldecode.Struct[Dimension]())

	switch c.LocalName() {
	case "Author":
		return xmldecode.Append(c, &a.Author, xmldecode.String)
	case "Binding":
		return xmldecode.Into(c, &a.Binding, optString)
	case "Brand":
		return xmldecode.Into(c, &a.Brand, optString)
	case "Color":
		return xmldecode.Into(c, &a.Color, optString)
	case "Creator":
		return xmldecode.Append(c, &a.Creator, xmldecode.Struct[Creator]())
	case "Edition":
		return xmldecode.Into(c, &a.Edition, optString)
	case "Feature":
		return xmldecode.Append(c, &a.Feature, xmldecode.String)
	case "ItemDimensions":
		return xmldecode.Into(c, &a.ItemDimensions, dimension)
	case "IsAdultProduct":
		return xmldecode.Into(c, &a.IsAdultProduct, optBool)
	case "IsEligibleForTradeIn":
		return xmldecode.Into(c, &a.IsEligibleForTradeIn, optBool)
	case "Label":
		return xmldecode.Into(c, &a.Label, optString)
	case "Languages":
		return xmldecode.Into(c, &a.Languages, xmldecode.List("Language", xmldecode.Struct[Language]()))
	case "ListPrice":
		return xmldecode.Into(c, &a.ListPrice, xmldecode.Optional(money))
	case "Manufacturer":
		return xmldecode.Into(c, &a.Manufacturer, optString)
	case "Model":
		return xmldecode.Into(c, &a.Model, optString)
	case "NumberOfItems":
		return xmldecode.Into(c, &a.NumberOfItems, optInt)
	case "NumberOfPages":
		return xmldecode.Into(c, &a.NumberOfPages, optInt)
	case "PackageDimensions":
		return xmldecode.Into(c, &a.PackageDimensions, dimension)
	case "PackageQuantity":
		return xmldecode.Into(c, &a.PackageQuantity, optInt)
	case "PartNumber":
		return xmldecode.Into(c, &a.PartNumber, optString)
	case "Platform":
		return xmldecode.Append(c, &a.Platform, xmldecode.String)
	case "ProductGroup":
		return xmldecode.Into(c, &a.ProductGroup, optString)
	case "ProductTypeName":
		return xmldecode.Into(c, &a.ProductTypeName, optString)
	case "PublicationDate":
		return xmldecode.Into(c, &a.PublicationDate, optString)
	case "Publisher":
		return xmldecode.Into(c, &a.Publisher, optString)
	case "ReleaseDate":
		return xmldecode.Into(c, &a.ReleaseDate, optString)
	case "Size":
		return xmldecode.Into(c, &a.Size, optString)
	case "SmallImage":
		return xmldecode.Into(c, &a.SmallImage, xmldecode.Optional(xmldecode.Struct[Image]()))
	case "Studio":
		return xmldecode.Into(c, &a.Studio, optString)
	case "Title":
		return xmldecode.Into(c, &a.Title, optString)
	}
	return nil
}

// Creator is a contributor with a role, such as an editor.
type Creator struct {
	Name string
	Role string
}

// DecodeAttrs implements xmldecode.Attributes.
func (cr *Creator) DecodeAttrs(c *xmldecode.Cursor) error {
	cr.Role = xmldecode.AttrString(c, "Role")
	return nil
}

// DecodeContent implements xmldecode.Content.
func (cr *Creator) DecodeContent(text string) error {
	cr.Name = text
	return nil
}

// Dimension is a set of optional measurements.
type Dimension struct {
	Height *DecimalWithUnits
	Length *DecimalWithUnits
	Width  *DecimalWithUnits
	Weight *DecimalWithUnits
}

// DecodeField implements xmldecode.Fields.
func (d *Dimension) DecodeField(c *xmldecode.Cursor) error {
	measure := xmldecode.Optional(decimalWithUnits)
	switch c.LocalName() {
	case "Height":
		return xmldecode.Into(c, &d.Height, measure)
	case "Length":
		return xmldecode.Into(c, &d.Length, measure)
	case "Width":
		return xmldecode.Into(c, &d.Width, measure)
	case "Weight":
		return xmldecode.Into(c, &d.Weight, measure)
	}
	return nil
}

// Image is a product picture.
type Image struct {
	URL    string
	Height DecimalWithUnits
	Width  DecimalWithUnits
}

// DecodeField implements xmldecode.Fields.
func (i *Image) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "URL":
		return xmldecode.Into(c, &i.URL, xmldecode.String)
	case "Height":
		return xmldecode.Into(c, &i.Height, decimalWithUnits)
	case "Width":
		return xmldecode.Into(c, &i.Width, decimalWithUnits)
	}
	return nil
}

// Language is one language of a media item.
type Language struct {
	Name        string
	Type        *string
	AudioFormat *string
}

// DecodeField implements xmldecode.Fields.
func (l *Language) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "Name":
		return xmldecode.Into(c, &l.Name, xmldecode.String)
	case "Type":
		return xmldecode.Into(c, &l.Type, xmldecode.Optional(xmldecode.String))
	case "AudioFormat":
		return xmldecode.Into(c, &l.AudioFormat, xmldecode.Optional(xmldecode.String))
	}
	return nil
}
