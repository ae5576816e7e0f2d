package paymentlinks

import (
	"time"

	"github.com/riffus/hyperswitch/pkg/clock"
	"github.com/riffus/hyperswitch/pkg/enums"
	pkgerrors "github.com/riffus/hyperswitch/pkg/errors"
)

// linkInitiationDisallowedStatuses lists the intent statuses for which reusing
// a checkout UI is unsafe or meaningless. Policy constant, not derived.
var linkInitiationDisallowedStatuses = []enums.IntentStatus{
	enums.IntentStatusCancelled,
	enums.IntentStatusSucceeded,
	enums.IntentStatusProcessing,
	enums.IntentStatusRequiresCapture,
	enums.IntentStatusRequiresMerchantAction,
}

const linkInitiationAction = "use payment link for"

// EvaluateLinkStatus computes the link's lifecycle status from its expiry
// instant. A link whose expiry equals the current instant is still active;
// only a strictly later clock reads as expired. Nothing is persisted.
func EvaluateLinkStatus(expiry time.Time, clk clock.Clock) string {
	if clk.Now().After(expiry) {
		return LinkStatusExpired
	}
	return LinkStatusActive
}

// ValidateStatusAgainstDisallowed rejects the action when the intent status is
// a member of the disallowed set.
func ValidateStatusAgainstDisallowed(status enums.IntentStatus, disallowed []enums.IntentStatus, action string) error {
	for _, candidate := range disallowed {
		if candidate == status {
			return pkgerrors.NotAllowed(action, status.String())
		}
	}
	return nil
}

func guardLinkInitiation(status enums.IntentStatus) error {
	return ValidateStatusAgainstDisallowed(status, linkInitiationDisallowedStatuses, linkInitiationAction)
}
