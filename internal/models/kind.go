package models

import "fmt"

// Kind identifies one catalog entity type. Its value is the route segment used
// both by the API (/api/{storeId}/{kind}) and by the dashboard pages.
type Kind string

const (
	KindBoard    Kind = "boards"
	KindCategory Kind = "categories"
	KindSize     Kind = "sizes"
	KindColor    Kind = "colors"
	KindProduct  Kind = "products"
)

// Kinds lists every catalog kind in dashboard navigation order.
var Kinds = []Kind{KindBoard, KindCategory, KindSize, KindColor, KindProduct}

// ParseKind resolves a route segment to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown catalog kind %q", s)
}

// Route returns the route segment for the kind.
func (k Kind) Route() string {
	return string(k)
}

// Label returns the singular display name, e.g. "Color".
func (k Kind) Label() string {
	switch k {
	case KindBoard:
		return "Board"
	case KindCategory:
		return "Category"
	case KindSize:
		return "Size"
	case KindColor:
		return "Color"
	case KindProduct:
		return "Product"
	}
	return string(k)
}

// Noun returns the lowercase singular name used in messages, e.g. "color".
func (k Kind) Noun() string {
	switch k {
	case KindCategory:
		return "category"
	case KindBoard, KindSize, KindColor, KindProduct:
		return string(k)[:len(k)-1]
	}
	return string(k)
}

// OpTag returns the log tag prefix for the kind, e.g. "COLOR".
func (k Kind) OpTag() string {
	switch k {
	case KindCategory:
		return "CATEGORY"
	case KindBoard:
		return "BOARD"
	case KindSize:
		return "SIZE"
	case KindColor:
		return "COLOR"
	case KindProduct:
		return "PRODUCT"
	}
	return "UNKNOWN"
}

// Model returns a new zero record of the kind for building queries, or nil
// for an unknown kind.
func (k Kind) Model() interface{} {
	switch k {
	case KindBoard:
		return &Board{}
	case KindCategory:
		return &Category{}
	case KindSize:
		return &Size{}
	case KindColor:
		return &Color{}
	case KindProduct:
		return &Product{}
	}
	return nil
}

// Entity is implemented by every catalog record stored per store.
type Entity interface {
	EntityID() string
	EntityStoreID() string
	EntityKind() Kind
}
