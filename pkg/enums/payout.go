package enums

import "fmt"

// PayoutType selects the payout method family.
type PayoutType string

const (
	PayoutTypeCard PayoutType = "card"
	PayoutTypeBank PayoutType = "bank"
)

var validPayoutTypes = []PayoutType{PayoutTypeCard, PayoutTypeBank}

// String implements fmt.Stringer.
func (p PayoutType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PayoutType.
func (p PayoutType) IsValid() bool {
	for _, candidate := range validPayoutTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePayoutType converts raw input into a PayoutType.
func ParsePayoutType(value string) (PayoutType, error) {
	for _, candidate := range validPayoutTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payout type %q", value)
}

// EntityType describes whom a payout is carried out to.
type EntityType string

const (
	EntityTypeIndividual EntityType = "individual"
	EntityTypeCompany    EntityType = "company"
	EntityTypeNonProfit  EntityType = "non_profit"
	EntityTypePersonal   EntityType = "personal"
)

var validEntityTypes = []EntityType{
	EntityTypeIndividual,
	EntityTypeCompany,
	EntityTypeNonProfit,
	EntityTypePersonal,
}

// IsValid reports whether the value is a known EntityType.
func (e EntityType) IsValid() bool {
	for _, candidate := range validEntityTypes {
		if candidate == e {
			return true
		}
	}
	return false
}
