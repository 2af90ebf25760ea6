package domain

import "strings"

// AuthorizationSeparator joins the two IDs of a composite authorization on the wire.
const AuthorizationSeparator = "|"

// CompositeAuthorization references a stored card as a single token:
// the customer that owns the card, then the card itself.
type CompositeAuthorization struct {
	CustomerID string
	CardID     string
}

// NewCompositeAuthorization rejects IDs that would not survive a round trip.
func NewCompositeAuthorization(customerID, cardID string) (CompositeAuthorization, error) {
	fields := []struct{ name, id string }{{"customer_id", customerID}, {"card_id", cardID}}
	for _, f := range fields {
		field, id := f.name, f.id
		if id == "" {
			return CompositeAuthorization{}, NewMissingParameterError(field)
		}
		if strings.Contains(id, AuthorizationSeparator) {
			return CompositeAuthorization{}, NewInvalidArgumentError("%s %q contains %q", field, id, AuthorizationSeparator)
		}
	}
	return CompositeAuthorization{CustomerID: customerID, CardID: cardID}, nil
}

// Encode renders the wire form "customerId|cardId".
func (a CompositeAuthorization) Encode() string {
	return a.CustomerID + AuthorizationSeparator + a.CardID
}

func (a CompositeAuthorization) String() string {
	return a.Encode()
}

// ParseCompositeAuthorization is the inverse of Encode. The token must hold
// exactly two non-empty IDs.
func ParseCompositeAuthorization(token string) (CompositeAuthorization, error) {
	parts := strings.Split(token, AuthorizationSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return CompositeAuthorization{}, NewInvalidArgumentError("invalid stored payment token: %q", token)
	}
	return CompositeAuthorization{CustomerID: parts[0], CardID: parts[1]}, nil
}
