package domain

// VoucherBrand is the card brand that classifies an instrument as a voucher.
const VoucherBrand = "voucher"

// PaymentMethodKind identifies which variant of PaymentMethod is active
type PaymentMethodKind string

const (
	KindCard        PaymentMethodKind = "card"
	KindVoucher     PaymentMethodKind = "voucher"
	KindStoredToken PaymentMethodKind = "stored_token"
)

// Card holds raw card details. A card whose brand is VoucherBrand is a voucher.
type Card struct {
	Number            string
	Name              string
	Month             int
	Year              int
	VerificationValue string
	Brand             string
}

// IsVoucher reports whether the card is classified as a voucher instrument.
func (c Card) IsVoucher() bool {
	return c.Brand == VoucherBrand
}

// PaymentMethod is either a raw card (or voucher) or a stored token, never both.
type PaymentMethod struct {
	card  *Card
	token string
}

func CardPayment(card Card) PaymentMethod {
	return PaymentMethod{card: &card}
}

func TokenPayment(token string) PaymentMethod {
	return PaymentMethod{token: token}
}

func (p PaymentMethod) Kind() PaymentMethodKind {
	switch {
	case p.card == nil:
		return KindStoredToken
	case p.card.IsVoucher():
		return KindVoucher
	default:
		return KindCard
	}
}

// Card returns the raw card and true unless the method is a stored token.
func (p PaymentMethod) Card() (Card, bool) {
	if p.card == nil {
		return Card{}, false
	}
	return *p.card, true
}

// Token returns the stored token and true for token payments.
func (p PaymentMethod) Token() (string, bool) {
	if p.card != nil {
		return "", false
	}
	return p.token, true
}

// HolderName is the card holder's name, empty for stored tokens.
func (p PaymentMethod) HolderName() string {
	if p.card == nil {
		return ""
	}
	return p.card.Name
}
