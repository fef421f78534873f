package order

import (
	"errors"
	"fmt"
	"time"

	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/pkg/errs"
)

// MaxFileURLLength bounds the attached file reference so it fits the file_url column.
const MaxFileURLLength = 2048

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the unit of work and billing between a SEOer and a partner. It is the
// aggregate root for a single order: its identity, the domain it is about, the
// team and user that placed it, the money involved and the lifecycle status.
//
// Order does not decide who may change its status. Callers ask
// services.OrderStatusAuthority first and only then call ChangeStatus.
type Order struct {
	id       kernel.UUID
	domainID kernel.UUID
	teamID   kernel.UUID
	userID   kernel.UUID

	status          Status
	statusChangedAt time.Time
	fileURL         string

	price           kernel.Money
	discount        kernel.Money
	priceAdjustment kernel.Money

	createdAt time.Time

	// version is the optimistic lock counter, owned by the repository.
	version int

	isConstructed bool
}

// StatusChanged is raised by ChangeStatus and recorded in the status log and
// the outbox in the same transaction as the order update.
type StatusChanged struct {
	OrderID kernel.UUID
	From    Status
	To      Status
	FileURL string
	At      time.Time
}

// NewOrder places a new order at SeoerOrder with the given price, no discount and
// no price adjustment.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("150.00")
//	o, err := order.NewOrder(kernel.NewUUID(), domainID, teamID, userID, price, time.Now())
//	if err != nil {
//	    return err
//	}
func NewOrder(id, domainID, teamID, userID kernel.UUID, price kernel.Money, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:          SeoerOrder,
		discount:        kernel.ZeroMoney(),
		priceAdjustment: kernel.ZeroMoney(),
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDomainID(domainID),
		o.setTeamID(teamID),
		o.setUserID(userID),
		o.setPrice(price),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}
	o.statusChangedAt = o.createdAt

	return o, nil
}

// RestoreParams carries the persisted state of an order.
type RestoreParams struct {
	ID              kernel.UUID
	DomainID        kernel.UUID
	TeamID          kernel.UUID
	UserID          kernel.UUID
	Status          Status
	StatusChangedAt time.Time
	FileURL         string
	Price           kernel.Money
	Discount        kernel.Money
	PriceAdjustment kernel.Money
	CreatedAt       time.Time
	Version         int
}

// RestoreOrder rebuilds an order loaded from storage. Every field goes through the
// same checks as in NewOrder, so a corrupted row surfaces as an error instead of
// an invalid aggregate.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(p.ID),
		o.setDomainID(p.DomainID),
		o.setTeamID(p.TeamID),
		o.setUserID(p.UserID),
		o.setStatus(p.Status),
		o.setFileURL(p.FileURL),
		o.setCreatedAt(p.CreatedAt),
		o.setPricing(p.Price, p.Discount, p.PriceAdjustment),
		o.setVersion(p.Version),
	); err != nil {
		return nil, err
	}

	o.statusChangedAt = p.StatusChangedAt
	if o.statusChangedAt.IsZero() {
		o.statusChangedAt = o.createdAt
	}

	return o, nil
}

// Validate reports whether the order went through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) DomainID() kernel.UUID {
	return o.domainID
}

func (o *Order) TeamID() kernel.UUID {
	return o.teamID
}

// UserID returns the SEOer who placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

func (o *Order) Status() Status {
	return o.status
}

// StatusChangedAt returns when the status was last changed, or the creation time
// if it never was.
func (o *Order) StatusChangedAt() time.Time {
	return o.statusChangedAt
}

// FileURL returns the file attached with the latest status change that carried one.
// Empty when none was attached.
func (o *Order) FileURL() string {
	return o.fileURL
}

func (o *Order) Price() kernel.Money {
	return o.price
}

func (o *Order) Discount() kernel.Money {
	return o.discount
}

func (o *Order) PriceAdjustment() kernel.Money {
	return o.priceAdjustment
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the optimistic lock counter the order was loaded with.
func (o *Order) Version() int {
	return o.version
}

// Total is price - discount + priceAdjustment.
func (o *Order) Total() kernel.Money {
	return o.price.Sub(o.discount).Add(o.priceAdjustment)
}

// ChangeStatus moves the order to target and records when it happened. A non-empty
// fileURL replaces the attached file reference; an empty one keeps the current one.
//
// ChangeStatus checks only that the values are well formed. Whether the
// requester may make this move is decided by services.OrderStatusAuthority
// before the call.
//
// Returns:
//   - the StatusChanged event on success
//   - ValueIsInvalidError if target is not a valid status
//   - ValueIsRequiredError if at is zero
//   - ValueIsOutOfRangeError if fileURL is longer than MaxFileURLLength
func (o *Order) ChangeStatus(target Status, fileURL string, at time.Time) (StatusChanged, error) {
	if err := target.Validate(); err != nil {
		return StatusChanged{}, err
	}
	if at.IsZero() {
		return StatusChanged{}, errs.NewValueIsRequiredError("statusChangedAt")
	}
	if fileURL != "" {
		if err := o.setFileURL(fileURL); err != nil {
			return StatusChanged{}, err
		}
	}

	event := StatusChanged{
		OrderID: o.id,
		From:    o.status,
		To:      target,
		FileURL: fileURL,
		At:      at.UTC(),
	}

	o.status = target
	o.statusChangedAt = event.At

	return event, nil
}

// UpdatePricing replaces price, discount and price adjustment together. Pricing
// is independent of the order status.
//
// Rules:
//   - price must not be negative
//   - discount must be between 0 and price
//   - the adjustment may be negative
func (o *Order) UpdatePricing(price, discount, adjustment kernel.Money) error {
	return o.setPricing(price, discount, adjustment)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDomainID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("domainId", err)
	}
	o.domainID = id
	return nil
}

func (o *Order) setTeamID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("teamId", err)
	}
	o.teamID = id
	return nil
}

func (o *Order) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	o.userID = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setFileURL(fileURL string) error {
	if len(fileURL) > MaxFileURLLength {
		return errs.NewValueIsOutOfRangeError("fileUrl length", len(fileURL), 0, MaxFileURLLength)
	}
	o.fileURL = fileURL
	return nil
}

func (o *Order) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = at.UTC()
	return nil
}

func (o *Order) setPrice(price kernel.Money) error {
	if err := o.checkPrice(price); err != nil {
		return err
	}
	o.price = price
	return nil
}

func (o *Order) setPricing(price, discount, adjustment kernel.Money) error {
	if err := errors.Join(
		o.checkPrice(price),
		o.checkDiscount(discount, price),
		o.checkAdjustment(adjustment),
	); err != nil {
		return err
	}

	o.price = price
	o.discount = discount
	o.priceAdjustment = adjustment
	return nil
}

func (o *Order) checkPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%s is negative", price))
	}
	return nil
}

func (o *Order) checkDiscount(discount, price kernel.Money) error {
	if err := discount.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("discount", err)
	}
	if discount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("discount is invalid", fmt.Errorf("%s is negative", discount))
	}
	if price.Validate() == nil && discount.GreaterThan(price) {
		return errs.NewValueIsInvalidErrorWithCause("discount is invalid",
			fmt.Errorf("%s is greater than price %s", discount, price))
	}
	return nil
}

func (o *Order) checkAdjustment(adjustment kernel.Money) error {
	if err := adjustment.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("priceAdjustment", err)
	}
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsInvalidErrorWithCause("version is invalid", fmt.Errorf("%d is negative", version))
	}
	o.version = version
	return nil
}
