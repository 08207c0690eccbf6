package payroll

import (
	"github.com/shopspring/decimal"
)

// Stateless salary simulation for the public "check request" page.
// Nothing here touches persistence; every call is a pure computation.

type SimulateInput struct {
	Name     string
	Role     string
	Religion string
}

type SalaryBreakdown struct {
	Name               string          `json:"name"`
	Role               string          `json:"role"`
	Religion           string          `json:"religion"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	MealAllowance      decimal.Decimal `json:"meal_allowance"`
	GrossSalary        decimal.Decimal `json:"gross_salary"`
	Zakat              decimal.Decimal `json:"zakat"`
	NetSalary          decimal.Decimal `json:"net_salary"`
}

var baseSalaries = map[string]decimal.Decimal{
	"Manager":   decimal.NewFromInt(15_000_000),
	"Developer": decimal.NewFromInt(10_000_000),
	"Staff":     decimal.NewFromInt(6_000_000),
	"Intern":    decimal.NewFromInt(2_000_000),
}

var (
	// Monthly nisab assumption (85g gold / 12, simplified)
	zakatNisab = decimal.NewFromInt(6_859_394)
	zakatRate  = decimal.NewFromFloat(0.025)
)

type Usecase struct{}

func NewUsecase() *Usecase { return &Usecase{} }

// Simulate computes the gross/net salary breakdown for a role.
// Unknown roles get a zero base salary, mirroring the portal's demo
// behaviour.
func (u *Usecase) Simulate(in SimulateInput) *SalaryBreakdown {
	base := baseSalaries[in.Role] // zero value for unknown roles

	transport := decimal.NewFromInt(500_000)
	meal := decimal.NewFromInt(1_000_000)
	if in.Role == "Intern" {
		transport = decimal.NewFromInt(100_000)
		meal = decimal.NewFromInt(300_000)
	}

	gross := base.Add(transport).Add(meal)

	zakat := decimal.Zero
	if in.Religion == "Islam" && gross.GreaterThanOrEqual(zakatNisab) {
		zakat = gross.Mul(zakatRate)
	}

	return &SalaryBreakdown{
		Name:               in.Name,
		Role:               in.Role,
		Religion:           in.Religion,
		BaseSalary:         base,
		TransportAllowance: transport,
		MealAllowance:      meal,
		GrossSalary:        gross,
		Zakat:              zakat,
		NetSalary:          gross.Sub(zakat),
	}
}
