package enums

import "fmt"

// IntentStatus tracks the lifecycle of a payment intent.
type IntentStatus string

const (
	IntentStatusRequiresPaymentMethod  IntentStatus = "requires_payment_method"
	IntentStatusRequiresConfirmation   IntentStatus = "requires_confirmation"
	IntentStatusRequiresCustomerAction IntentStatus = "requires_customer_action"
	IntentStatusRequiresMerchantAction IntentStatus = "requires_merchant_action"
	IntentStatusRequiresCapture        IntentStatus = "requires_capture"
	IntentStatusProcessing             IntentStatus = "processing"
	IntentStatusSucceeded              IntentStatus = "succeeded"
	IntentStatusCancelled              IntentStatus = "cancelled"
	IntentStatusFailed                 IntentStatus = "failed"
)

var validIntentStatuses = []IntentStatus{
	IntentStatusRequiresPaymentMethod,
	IntentStatusRequiresConfirmation,
	IntentStatusRequiresCustomerAction,
	IntentStatusRequiresMerchantAction,
	IntentStatusRequiresCapture,
	IntentStatusProcessing,
	IntentStatusSucceeded,
	IntentStatusCancelled,
	IntentStatusFailed,
}

// String implements fmt.Stringer.
func (s IntentStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known IntentStatus.
func (s IntentStatus) IsValid() bool {
	for _, candidate := range validIntentStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseIntentStatus converts raw input into an IntentStatus.
func ParseIntentStatus(value string) (IntentStatus, error) {
	for _, candidate := range validIntentStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid intent status %q", value)
}
