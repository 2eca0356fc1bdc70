package captable

// FundingRound describes a simple new-share issuance to outside investors.
// It is a value object, created per calculation and discarded after use.
type FundingRound struct {
	Name       string
	Investment Money
	PreMoney   Money
	NewShares  Quantity
}

// PostMoneyValuation is the company valuation once the investment is in.
func (r FundingRound) PostMoneyValuation() Money {
	return r.PreMoney.Add(r.Investment)
}

// PricePerShare is the implied price of one existing share at the pre-money
// valuation. A zero totalBefore yields zero money; validation reports that
// company separately.
func (r FundingRound) PricePerShare(totalBefore Quantity) Money {
	if !totalBefore.IsPositive() {
		return M(0, r.PreMoney.Currency())
	}
	return r.PreMoney.Div(totalBefore)
}
