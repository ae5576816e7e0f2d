package paymentlinks

import (
	"encoding/json"
	"fmt"

	pkgerrors "github.com/riffus/hyperswitch/pkg/errors"
)

// RenderScript serializes the bootstrap payload into an assignment to the
// global the checkout SDK reads on load. Serialization failure is an internal
// invariant violation, not a user-facing condition.
func RenderScript(details *PaymentLinkDetails) (string, error) {
	serialized, err := json.Marshal(details)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to serialize payment link details")
	}
	return fmt.Sprintf("window.__PAYMENT_DETAILS = %s;", serialized), nil
}

// RenderStyle emits the root-scope style declaration binding the primary
// color custom property to the resolved theme.
func RenderStyle(resolved ResolvedLinkConfig, defaultPrimaryColor string) string {
	primaryColor := resolved.Theme
	if primaryColor == "" {
		primaryColor = defaultPrimaryColor
	}
	return fmt.Sprintf(":root {\n      --primary-color: %s;\n    }", primaryColor)
}
