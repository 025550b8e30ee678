package orders

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// CheckShipments lists the shipment lines that are not ready to ship. It is
// advisory: Submit never calls it. Use multierr.Errors to walk the findings.
func CheckShipments(lines []ShipmentLine) error {
	var errs error
	for _, s := range lines {
		var missing []string
		if s.DeliveryDate == "" {
			missing = append(missing, "delivery date")
		}
		if strings.TrimSpace(s.Recipient) == "" {
			missing = append(missing, "recipient")
		}
		if strings.TrimSpace(s.RecipientPhone) == "" {
			missing = append(missing, "recipient phone")
		}
		if strings.TrimSpace(s.RecipientAddress) == "" {
			missing = append(missing, "recipient address")
		}
		if len(missing) > 0 {
			errs = multierr.Append(errs, fmt.Errorf("shipment %d (%s): missing %s", s.Sequence, s.ProductName, strings.Join(missing, ", ")))
		}
	}
	return errs
}
