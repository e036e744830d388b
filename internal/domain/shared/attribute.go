package shared

import "strings"

type Attribute string

// Attributes lists the six attributes in sheet order.
var Attributes = []Attribute{AttributeMight, AttributeAgility, AttributeEndurance, AttributeWisdom, AttributeIntellect, AttributeCharisma}

const (
	AttributeNone      Attribute = ""
	AttributeMight     Attribute = "Might"
	AttributeAgility   Attribute = "Agility"
	AttributeEndurance Attribute = "Endurance"
	AttributeWisdom    Attribute = "Wisdom"
	AttributeIntellect Attribute = "Intellect"
	AttributeCharisma  Attribute = "Charisma"
)

// ParseAttribute matches a name to an attribute, ignoring case.
// Returns AttributeNone if the name is not a known attribute.
func ParseAttribute(name string) Attribute {
	for _, attr := range Attributes {
		if strings.EqualFold(string(attr), name) {
			return attr
		}
	}
	return AttributeNone
}

// IsValid reports whether the attribute is one of the six known attributes.
func (a Attribute) IsValid() bool {
	for _, attr := range Attributes {
		if a == attr {
			return true
		}
	}
	return false
}
