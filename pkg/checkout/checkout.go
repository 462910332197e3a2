// Package checkout drives the three-step flow that converts a cart
// into a submitted sale: pick a payment method, enter payment details,
// confirm. Transitions move one step at a time and only by explicit
// caller action.
package checkout

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/modaboutique/storefront/pkg/api"
	"github.com/modaboutique/storefront/pkg/cart"
	"github.com/modaboutique/storefront/pkg/credit"
	"github.com/modaboutique/storefront/pkg/models"
	"github.com/modaboutique/storefront/pkg/session"
)

type Step int

const (
	StepSelectPayment Step = iota
	StepPaymentInfo
	StepConfirm
)

// Channel is how the buyer actually pays online.
type Channel string

const (
	ChannelCard Channel = "tarjeta"
	ChannelQR   Channel = "qr"
)

var (
	ErrPlanRequired       = errors.New("a credit plan must be selected before continuing")
	ErrCardFieldsRequired = errors.New("all card fields are required")
	ErrCardNumberLength   = errors.New("card number must have exactly 16 digits")
	ErrCVVLength          = errors.New("CVV must have exactly 3 digits")
	ErrNotAtConfirm       = errors.New("submission is only allowed from the confirmation step")
	ErrSubmitInFlight     = errors.New("a submission is already being processed")
	ErrNotLoggedIn        = errors.New("checkout requires a logged-in user")
)

// genericSubmitError is shown when the backend fails without a usable
// message.
const genericSubmitError = "Failed to process the payment. Please try again."

// onlineBranchID is the branch online sales are booked against.
const onlineBranchID = 1

// PlanLister and SaleCreator are the slices of the API client the
// sequencer needs; tests substitute mocks.
type PlanLister interface {
	CreditPlans(ctx context.Context) ([]models.CreditPlan, error)
}

type SaleCreator interface {
	CreateSale(ctx context.Context, sale models.SaleDetail) (*models.SaleDetail, error)
}

// Card holds the entered card fields. Number may contain grouping
// spaces; they are ignored during validation.
type Card struct {
	Number string
	Holder string
	Expiry string
	CVV    string
}

// Checkout is the wizard state. Create one per checkout attempt and
// discard it when the flow completes or is abandoned.
type Checkout struct {
	cart    *cart.Cart
	session *session.Session
	plans   PlanLister
	sales   SaleCreator

	step        Step
	paymentType models.PaymentType
	planID      *int
	activePlans []models.CreditPlan
	channel     Channel
	card        Card
	processing  bool
	errMsg      string
	success     bool
}

func New(c *cart.Cart, s *session.Session, plans PlanLister, sales SaleCreator) *Checkout {
	return &Checkout{
		cart:        c,
		session:     s,
		plans:       plans,
		sales:       sales,
		paymentType: models.PaymentTypeCash,
		channel:     ChannelCard,
	}
}

// LoadPlans fetches the financing plans and keeps the active ones.
// A fetch failure is not fatal: cash checkout still works.
func (c *Checkout) LoadPlans(ctx context.Context) error {
	all, err := c.plans.CreditPlans(ctx)
	if err != nil {
		log.Printf("Warning: failed to load credit plans: %v", err)
		return err
	}
	c.activePlans = c.activePlans[:0]
	for _, p := range all {
		if p.Active {
			c.activePlans = append(c.activePlans, p)
		}
	}
	return nil
}

func (c *Checkout) Plans() []models.CreditPlan { return c.activePlans }
func (c *Checkout) Step() Step                 { return c.step }
func (c *Checkout) Processing() bool           { return c.processing }
func (c *Checkout) Success() bool              { return c.success }
func (c *Checkout) ErrorMessage() string       { return c.errMsg }

func (c *Checkout) SetPaymentType(t models.PaymentType) { c.paymentType = t }
func (c *Checkout) SetChannel(ch Channel)               { c.channel = ch }
func (c *Checkout) SetCard(card Card)                   { c.card = card }

func (c *Checkout) SelectPlan(id int) {
	c.planID = &id
}

// Quote returns the periodic installment a plan would cost for the
// current cart total.
func (c *Checkout) Quote(plan models.CreditPlan) float64 {
	return credit.PlanInstallment(c.cart.Total(), plan)
}

// Next advances one step. Leaving the payment-method step with credit
// selected requires a plan; otherwise the transition is rejected and
// the step does not change.
func (c *Checkout) Next() error {
	if c.step == StepSelectPayment && c.paymentType == models.PaymentTypeCredit && c.planID == nil {
		c.errMsg = ErrPlanRequired.Error()
		return ErrPlanRequired
	}
	c.errMsg = ""
	if c.step < StepConfirm {
		c.step++
	}
	return nil
}

// Back moves one step toward the start and clears any validation
// message.
func (c *Checkout) Back() {
	if c.step > StepSelectPayment {
		c.step--
	}
	c.errMsg = ""
}

// Submit validates the entered details and places the sale. It is only
// reachable from the confirmation step and rejects re-entry while a
// submission is in flight. On success the cart is cleared; on failure
// the flow stays at confirmation for a retry.
func (c *Checkout) Submit(ctx context.Context) error {
	if c.step != StepConfirm {
		return ErrNotAtConfirm
	}
	if c.processing {
		return ErrSubmitInFlight
	}
	c.errMsg = ""

	// Client-side validation blocks progression before any network
	// call is made.
	if c.channel == ChannelCard {
		if err := validateCard(c.card); err != nil {
			c.errMsg = err.Error()
			return err
		}
	}

	identity := c.session.Identity()
	if identity == nil {
		c.errMsg = ErrNotLoggedIn.Error()
		return ErrNotLoggedIn
	}

	c.processing = true
	defer func() { c.processing = false }()

	sale := c.buildSale(identity)
	if _, err := c.sales.CreateSale(ctx, sale); err != nil {
		c.errMsg = submitErrorMessage(err)
		return err
	}

	c.success = true
	c.cart.Clear()
	return nil
}

func (c *Checkout) buildSale(identity *models.Identity) models.SaleDetail {
	items := c.cart.Items()
	lines := make([]models.SaleLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, models.SaleLine{
			Quantity:  it.Quantity,
			UnitPrice: it.Price,
			Subtotal:  it.Price * float64(it.Quantity),
			ProductID: it.ID,
		})
	}

	channelLabel := "Tarjeta"
	if c.channel == ChannelQR {
		channelLabel = "QR"
	}
	notes := "Pago online - " + channelLabel

	now := time.Now()
	sale := models.SaleDetail{
		Date:        now.Format("2006-01-02"),
		Time:        now.Format("15:04:05"),
		Total:       c.cart.Total(),
		Type:        models.SaleTypeOnline,
		PaymentType: c.paymentType,
		Notes:       &notes,
		CustomerID:  identity.ID,
		BranchID:    onlineBranchID,
		Lines:       lines,
	}
	if c.paymentType == models.PaymentTypeCredit {
		sale.CreditPlanID = c.planID
	}
	return sale
}

func validateCard(card Card) error {
	if card.Number == "" || card.Holder == "" || card.Expiry == "" || card.CVV == "" {
		return ErrCardFieldsRequired
	}
	number := strings.ReplaceAll(card.Number, " ", "")
	if len(number) != 16 || !digitsOnly(number) {
		return ErrCardNumberLength
	}
	if len(card.CVV) != 3 || !digitsOnly(card.CVV) {
		return ErrCVVLength
	}
	return nil
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// submitErrorMessage prefers the backend's own message; transient and
// network failures collapse into the generic retry-able one.
func submitErrorMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericSubmitError
}
