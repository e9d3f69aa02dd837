// Package pricing maps a case configuration's option set to a total price.
// All amounts are integer paise; the Razorpay order API consumes paise
// directly, so no conversion happens anywhere downstream.
package pricing

// Price table for the configurable options. Options not listed here cost
// nothing: an unknown finish or material quotes at base price rather than
// failing, so adding options to the configurator cannot break checkout.
const (
	BasePriceCents int64 = 1400

	FinishTexturedCents        int64 = 300
	MaterialPolycarbonateCents int64 = 500
)

const (
	FinishSmooth   = "smooth"
	FinishTextured = "textured"

	MaterialSilicone      = "silicone"
	MaterialPolycarbonate = "polycarbonate"
)

// Quote returns the total price in paise for a configuration's finish and
// material. Pure and deterministic; never errors.
func Quote(finish, material string) int64 {
	price := BasePriceCents
	if finish == FinishTextured {
		price += FinishTexturedCents
	}
	if material == MaterialPolycarbonate {
		price += MaterialPolycarbonateCents
	}
	return price
}
