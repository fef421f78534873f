package order_test

import (
	"strings"
	"testing"
	"time"

	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/core/domain/model/order"
	"seomarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		money(t, "150.00"), time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	domainID := kernel.NewUUID()
	teamID := kernel.NewUUID()
	userID := kernel.NewUUID()
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should place order at SEOER_ORDER", func(t *testing.T) {
		o, err := order.NewOrder(id, domainID, teamID, userID, money(t, "150"), createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.DomainID().IsEqual(domainID))
		assert.True(t, o.TeamID().IsEqual(teamID))
		assert.True(t, o.UserID().IsEqual(userID))
		assert.Equal(t, order.SeoerOrder, o.Status())
		assert.Equal(t, "150.00", o.Price().String())
		assert.Equal(t, "0.00", o.Discount().String())
		assert.Equal(t, "0.00", o.PriceAdjustment().String())
		assert.Equal(t, "150.00", o.Total().String())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, createdAt, o.StatusChangedAt())
		assert.Empty(t, o.FileURL())
		assert.Equal(t, 0, o.Version())
	})

	t.Run("should accept a free order", func(t *testing.T) {
		o, err := order.NewOrder(id, domainID, teamID, userID, kernel.ZeroMoney(), createdAt)

		require.NoError(t, err)
		assert.Equal(t, "0.00", o.Total().String())
	})

	t.Run("should reject negative price", func(t *testing.T) {
		o, err := order.NewOrder(id, domainID, teamID, userID, money(t, "-1"), createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "-1.00 is negative")
	})

	t.Run("should join every validation error", func(t *testing.T) {
		var zero kernel.UUID

		o, err := order.NewOrder(zero, zero, zero, zero, kernel.Money{}, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "domainId")
		assert.Contains(t, err.Error(), "teamId")
		assert.Contains(t, err.Error(), "userId")
		assert.Contains(t, err.Error(), "price")
		assert.Contains(t, err.Error(), "createdAt")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	params := func(t *testing.T) order.RestoreParams {
		return order.RestoreParams{
			ID:              kernel.NewUUID(),
			DomainID:        kernel.NewUUID(),
			TeamID:          kernel.NewUUID(),
			UserID:          kernel.NewUUID(),
			Status:          order.CompletedByPartner,
			StatusChangedAt: time.Date(2026, 3, 5, 9, 30, 0, 0, time.UTC),
			FileURL:         "https://files.example.com/report.pdf",
			Price:           money(t, "200"),
			Discount:        money(t, "20"),
			PriceAdjustment: money(t, "-5"),
			CreatedAt:       time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			Version:         4,
		}
	}

	t.Run("should restore persisted state", func(t *testing.T) {
		p := params(t)

		o, err := order.RestoreOrder(p)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.CompletedByPartner, o.Status())
		assert.Equal(t, p.StatusChangedAt, o.StatusChangedAt())
		assert.Equal(t, p.FileURL, o.FileURL())
		assert.Equal(t, "175.00", o.Total().String())
		assert.Equal(t, 4, o.Version())
	})

	t.Run("should fall back to createdAt when status was never changed", func(t *testing.T) {
		p := params(t)
		p.StatusChangedAt = time.Time{}

		o, err := order.RestoreOrder(p)

		require.NoError(t, err)
		assert.Equal(t, p.CreatedAt, o.StatusChangedAt())
	})

	t.Run("should reject corrupted rows", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(p *order.RestoreParams)
			target error
		}{
			{"unknown status", func(p *order.RestoreParams) { p.Status = order.Unknown }, errs.ErrValueIsInvalid},
			{"negative version", func(p *order.RestoreParams) { p.Version = -1 }, errs.ErrValueIsInvalid},
			{"discount above price", func(p *order.RestoreParams) { p.Discount = money(t, "250") }, errs.ErrValueIsInvalid},
			{"missing team", func(p *order.RestoreParams) { p.TeamID = kernel.UUID{} }, errs.ErrValueIsRequired},
			{"missing adjustment", func(p *order.RestoreParams) { p.PriceAdjustment = kernel.Money{} }, errs.ErrValueIsRequired},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				p := params(t)
				tc.mutate(&p)

				o, err := order.RestoreOrder(p)

				require.ErrorIs(t, err, tc.target)
				assert.Nil(t, o)
			})
		}
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		o := &order.Order{}

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a := newTestOrder(t)
	b := newTestOrder(t)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}

func TestOrder_ChangeStatus(t *testing.T) {
	at := time.Date(2026, 3, 2, 12, 0, 0, 0, time.FixedZone("MSK", 3*60*60))

	t.Run("should move to target and return the event", func(t *testing.T) {
		o := newTestOrder(t)

		event, err := o.ChangeStatus(order.ConfirmedByTeamLeader, "", at)

		require.NoError(t, err)
		assert.Equal(t, order.ConfirmedByTeamLeader, o.Status())
		assert.Equal(t, at.UTC(), o.StatusChangedAt())
		assert.True(t, event.OrderID.IsEqual(o.ID()))
		assert.Equal(t, order.SeoerOrder, event.From)
		assert.Equal(t, order.ConfirmedByTeamLeader, event.To)
		assert.Equal(t, at.UTC(), event.At)
		assert.Empty(t, event.FileURL)
	})

	t.Run("should keep the previous file when none is attached", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.ChangeStatus(order.CompletedByPartner, "https://files.example.com/a.pdf", at)
		require.NoError(t, err)

		_, err = o.ChangeStatus(order.ConfirmedCompletionBySeoer, "", at.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, "https://files.example.com/a.pdf", o.FileURL())
	})

	t.Run("should not judge who moves where", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.ChangeStatus(order.PaidByManager, "", at)

		require.NoError(t, err)
		assert.Equal(t, order.PaidByManager, o.Status())
	})

	t.Run("should reject invalid target and keep state", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.ChangeStatus(order.Unknown, "", at)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.SeoerOrder, o.Status())
	})

	t.Run("should require a timestamp", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.ChangeStatus(order.CancelledBySeoer, "", time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.SeoerOrder, o.Status())
	})

	t.Run("should reject an oversized file reference", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.ChangeStatus(order.CompletedByPartner, strings.Repeat("a", order.MaxFileURLLength+1), at)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, order.SeoerOrder, o.Status())
		assert.Empty(t, o.FileURL())
	})
}

func TestOrder_UpdatePricing(t *testing.T) {
	t.Run("should replace all three amounts", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.UpdatePricing(money(t, "300"), money(t, "50"), money(t, "-10.5"))

		require.NoError(t, err)
		assert.Equal(t, "300.00", o.Price().String())
		assert.Equal(t, "50.00", o.Discount().String())
		assert.Equal(t, "-10.50", o.PriceAdjustment().String())
		assert.Equal(t, "239.50", o.Total().String())
	})

	t.Run("should allow discount equal to price", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.UpdatePricing(money(t, "80"), money(t, "80"), kernel.ZeroMoney()))
		assert.Equal(t, "0.00", o.Total().String())
	})

	t.Run("should reject invalid amounts and keep the old ones", func(t *testing.T) {
		testCases := []struct {
			name       string
			price      string
			discount   string
			adjustment string
			message    string
		}{
			{"negative price", "-1", "0", "0", "price is invalid"},
			{"negative discount", "100", "-1", "0", "discount is invalid"},
			{"discount above price", "100", "100.01", "0", "is greater than price 100.00"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				o := newTestOrder(t)

				err := o.UpdatePricing(money(t, tc.price), money(t, tc.discount), money(t, tc.adjustment))

				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Contains(t, err.Error(), tc.message)
				assert.Equal(t, "150.00", o.Total().String())
			})
		}
	})

	t.Run("should require constructed amounts", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.UpdatePricing(money(t, "10"), kernel.Money{}, kernel.Money{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "discount")
		assert.Contains(t, err.Error(), "priceAdjustment")
	})
}
