package order

// ShipmentInfo is a value object holding the shipping address block of an
// order: recipient name plus the five address fields. Every field is
// optional in storage; an empty string means the field is absent.
//
// ShipmentInfo is immutable and compared by value.
type ShipmentInfo struct {
	name       string
	address    string
	city       string
	region     string
	postalCode string
	country    string
}

// NewShipmentInfo creates a ShipmentInfo from its six fields.
// Empty strings are allowed for any field.
func NewShipmentInfo(name, address, city, region, postalCode, country string) ShipmentInfo {
	return ShipmentInfo{
		name:       name,
		address:    address,
		city:       city,
		region:     region,
		postalCode: postalCode,
		country:    country,
	}
}

// Name returns the ship-to recipient name.
func (s ShipmentInfo) Name() string {
	return s.name
}

// Address returns the street address.
func (s ShipmentInfo) Address() string {
	return s.address
}

// City returns the destination city.
func (s ShipmentInfo) City() string {
	return s.city
}

// Region returns the destination region or state.
func (s ShipmentInfo) Region() string {
	return s.region
}

// PostalCode returns the destination postal code.
func (s ShipmentInfo) PostalCode() string {
	return s.postalCode
}

// Country returns the destination country.
func (s ShipmentInfo) Country() string {
	return s.country
}

// IsEqual compares two shipment infos field by field.
func (s ShipmentInfo) IsEqual(other ShipmentInfo) bool {
	return s == other
}
