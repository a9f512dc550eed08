package order

import (
	"fmt"

	"sewrica/internal/pkg/errs"
)

// Fulfillment selects how the customer receives the order.
type Fulfillment int

const (
	FulfillmentUnknown Fulfillment = iota

	// FulfillmentDelivery brings the order to the customer's address.
	FulfillmentDelivery

	// FulfillmentPickup has the customer collect at the restaurant.
	FulfillmentPickup
)

func fulfillmentStrings() map[Fulfillment]string {
	return map[Fulfillment]string{
		FulfillmentUnknown:  "unknown",
		FulfillmentDelivery: "delivery",
		FulfillmentPickup:   "pickup",
	}
}

// ParseFulfillment converts the wire representation ("delivery", "pickup").
func ParseFulfillment(s string) (Fulfillment, error) {
	for f, str := range fulfillmentStrings() {
		if str == s && f != FulfillmentUnknown {
			return f, nil
		}
	}
	return FulfillmentUnknown, errs.NewValueIsInvalidErrorWithCause("fulfillment",
		fmt.Errorf("%q is not a valid fulfillment type", s))
}

// String returns the wire/persistence name.
func (f Fulfillment) String() string {
	if str, ok := fulfillmentStrings()[f]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the Fulfillment is delivery or pickup.
func (f Fulfillment) Validate() error {
	if f != FulfillmentDelivery && f != FulfillmentPickup {
		return errs.NewValueIsInvalidErrorWithCause("fulfillment",
			fmt.Errorf("%d is not a valid fulfillment type", f))
	}
	return nil
}

// Customer is the contact snapshot captured once at checkout. It is not
// re-fetched from a live profile, so later profile edits never rewrite the
// history of an existing order.
type Customer struct {
	name        string
	phone       string
	email       string
	fulfillment Fulfillment
	address     string
}

// NewCustomer creates a checkout contact snapshot. Name and phone are
// required; an address is required for delivery orders.
func NewCustomer(name, phone, email string, fulfillment Fulfillment, address string) (Customer, error) {
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}
	if phone == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer phone")
	}
	if err := fulfillment.Validate(); err != nil {
		return Customer{}, err
	}
	if fulfillment == FulfillmentDelivery && address == "" {
		return Customer{}, errs.NewValueIsRequiredError("delivery address")
	}

	return Customer{
		name:        name,
		phone:       phone,
		email:       email,
		fulfillment: fulfillment,
		address:     address,
	}, nil
}

// Name returns the customer's name at checkout time.
func (c Customer) Name() string { return c.name }

// Phone returns the contact phone number.
func (c Customer) Phone() string { return c.phone }

// Email returns the contact email, possibly empty.
func (c Customer) Email() string { return c.email }

// Fulfillment returns the delivery-or-pickup selection.
func (c Customer) Fulfillment() Fulfillment { return c.fulfillment }

// Address returns the delivery address, empty for pickup orders.
func (c Customer) Address() string { return c.address }

// Validate checks the snapshot was built through NewCustomer.
func (c Customer) Validate() error {
	if c.name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if c.phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	if err := c.fulfillment.Validate(); err != nil {
		return err
	}
	if c.fulfillment == FulfillmentDelivery && c.address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	return nil
}
