package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// SavingsProduct holds the terms of a savings account or plan.
// Rates are percentages: 2.4 means 2.4%.
type SavingsProduct struct {
	Name             string          `yaml:"name" json:"name"`
	Rate             decimal.Decimal `yaml:"rate" json:"rate"`
	TaxRate          decimal.Decimal `yaml:"tax_rate" json:"tax_rate"` // Applied to gains only
	MinDurationYears int             `yaml:"min_duration_years" json:"min_duration_years"`
	DepositCap       DepositCap      `yaml:"deposit_cap,omitempty" json:"deposit_cap"` // Annual
}

func (sp SavingsProduct) String() string {
	return fmt.Sprintf("Product: %s, Interest rate: %s%%, Tax rate: %s%%, Minimum duration: %d years, Deposit cap: %s",
		sp.Name, sp.Rate, sp.TaxRate, sp.MinDurationYears, sp.DepositCap)
}

// Unlimited is how an uncapped deposit limit is rendered.
const Unlimited = "unlimited"

// DepositCap is the maximum annual deposit a product accepts. The zero value is uncapped.
type DepositCap struct {
	amount decimal.Decimal
	capped bool
}

// Capped returns a limit of amount per year. A zero amount is a real limit.
func Capped(amount decimal.Decimal) DepositCap {
	return DepositCap{amount: amount, capped: true}
}

// Uncapped returns a limit that no deposit exceeds.
func Uncapped() DepositCap {
	return DepositCap{}
}

// IsCapped reports whether a limit applies.
func (dc DepositCap) IsCapped() bool { return dc.capped }

// IsZero lets yaml omitempty drop uncapped limits.
func (dc DepositCap) IsZero() bool { return !dc.capped }

// Amount returns the limit and whether one applies.
func (dc DepositCap) Amount() (decimal.Decimal, bool) { return dc.amount, dc.capped }

// Exceeded reports whether an annual deposit is strictly above the limit.
func (dc DepositCap) Exceeded(annualDeposit decimal.Decimal) bool {
	return dc.capped && annualDeposit.GreaterThan(dc.amount)
}

// Equal compares two limits.
func (dc DepositCap) Equal(other DepositCap) bool {
	if dc.capped != other.capped {
		return false
	}
	return !dc.capped || dc.amount.Equal(other.amount)
}

func (dc DepositCap) String() string {
	if !dc.capped {
		return Unlimited
	}
	return dc.amount.String()
}

// ParseDepositCap reads a limit; empty, "None", "inf" and "unlimited" mean uncapped.
func ParseDepositCap(s string) (DepositCap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "null", "nan", "inf", "+inf", "infinity", Unlimited:
		return Uncapped(), nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return DepositCap{}, err
	}
	return Capped(d), nil
}

// UnmarshalYAML accepts a number, a null or one of the uncapped spellings.
func (dc *DepositCap) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*dc = Uncapped()
		return nil
	}
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseDepositCap(raw)
	if err != nil {
		return fmt.Errorf("invalid deposit cap %q: %w", raw, err)
	}
	*dc = parsed
	return nil
}

// MarshalYAML writes the amount, or null when uncapped.
func (dc DepositCap) MarshalYAML() (interface{}, error) {
	if !dc.capped {
		return nil, nil
	}
	return dc.amount.String(), nil
}

// MarshalJSON writes the amount as a string, or null when uncapped.
func (dc DepositCap) MarshalJSON() ([]byte, error) {
	if !dc.capped {
		return []byte("null"), nil
	}
	return json.Marshal(dc.amount.String())
}

// UnmarshalJSON accepts null, a number or a string.
func (dc *DepositCap) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDepositCap(s)
	if err != nil {
		return fmt.Errorf("invalid deposit cap %s: %w", data, err)
	}
	*dc = parsed
	return nil
}
