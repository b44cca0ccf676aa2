package xmldecode

// Fields is implemented by record types built from child elements.
// DecodeField is called once per child with the cursor inside it;
// c.LocalName() names the child. Unknown children should return nil.
type Fields interface {
	DecodeField(c *Cursor) error
}

// Attributes is implemented by record types that read attributes of their
// own element.
type Attributes interface {
	DecodeAttrs(c *Cursor) error
}

// Content is implemented by record types whose value includes the element's
// text content.
type Content interface {
	DecodeContent(text string) error
}

// Struct returns a decoder for record type T. *T must implement at least one
// of Fields, Attributes or Content. Fields that never appear keep their zero
// value, so a record always decodes to a total default.
func Struct[T any]() Decoder[T] {
	return func(c *Cursor) (T, error) {
		var v T
		err := DecodeStruct(c, &v)
		return v, err
	}
}

// DecodeStruct decodes the current element into the record pointed to by v.
func DecodeStruct(c *Cursor, v any) error {
	if a, ok := v.(Attributes); ok {
		if err := a.DecodeAttrs(c); err != nil {
			return err
		}
	}
	if ct, ok := v.(Content); ok {
		text, err := String(c)
		if err != nil {
			return err
		}
		return ct.DecodeContent(text)
	}
	f, ok := v.(Fields)
	if !ok {
		_, err := Skip(c)
		return err
	}
	_, err := FoldElements(c, f, func(c *Cursor, acc *Fields) error {
		return (*acc).DecodeField(c)
	})
	return err
}

// AttrString returns the named attribute of the current element, or "".
func AttrString(c *Cursor, name string) string {
	v, _ := c.Attr(name)
	return v
}

// AttrOptional parses the named attribute when present.
func AttrOptional[T any](c *Cursor, name string, parse func(string) (T, error)) (*T, error) {
	raw, ok := c.Attr(name)
	if !ok {
		return nil, nil
	}
	v, err := parse(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// AttrInt parses the named integer attribute; absent decodes as 0.
func AttrInt(c *Cursor, name string) (int, error) {
	raw, _ := c.Attr(name)
	return ParseInt(raw)
}
