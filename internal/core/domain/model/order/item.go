package order

import (
	"fmt"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/pkg/errs"
)

// Item is a line of an order: a snapshot of a menu item taken at checkout.
// Name and unit price are copied from the catalog at that moment, so later
// catalog edits never retroactively alter an existing order.
type Item struct {
	menuItemID kernel.UUID
	name       string
	nameAm     string // Amharic display name, optional
	unitPrice  kernel.Money
	quantity   int
}

// NewItem creates an order line snapshot. The quantity must be at least 1;
// a zero unit price is allowed (promotional items).
func NewItem(menuItemID kernel.UUID, name, nameAm string, unitPrice kernel.Money, quantity int) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}

	return Item{
		menuItemID: menuItemID,
		name:       name,
		nameAm:     nameAm,
		unitPrice:  unitPrice,
		quantity:   quantity,
	}, nil
}

// MenuItemID returns the catalog reference this line was snapshotted from.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the snapshotted display name.
func (i Item) Name() string {
	return i.name
}

// NameAm returns the snapshotted Amharic display name, if any.
func (i Item) NameAm() string {
	return i.nameAm
}

// UnitPrice returns the snapshotted price per unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal returns unit price times quantity.
func (i Item) LineTotal() kernel.Money {
	// quantity was validated >= 1 at construction
	total, _ := i.unitPrice.MultiplyBy(i.quantity)
	return total
}

// Validate checks the line was built through NewItem.
func (i Item) Validate() error {
	if err := i.menuItemID.Validate(); err != nil {
		return err
	}
	if i.name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	if i.quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", i.quantity))
	}
	return nil
}
