package models

import "fmt"

// ValidationResult reports completeness and sanity issues found in a
// submitted profile. The engine itself never validates; callers at the
// input boundary (CLI, HTTP server) check before running an assessment.
type ValidationResult struct {
	IsValid       bool     `json:"is_valid"`
	MissingFields []string `json:"missing_fields"`
	Issues        []string `json:"issues"`
}

// Validate checks a profile for completeness and basic sanity.
// Numeric zero values are reported as missing but never block the
// engine, which treats them as safe defaults.
func (p UserProfile) Validate() ValidationResult {
	var missing, issues []string

	if p.Age == 0 {
		missing = append(missing, "age")
	}
	if p.AnnualIncome == 0 {
		missing = append(missing, "annual_income")
	}
	if p.MonthlyExpenses == 0 {
		missing = append(missing, "monthly_expenses")
	}
	if p.Goals == "" {
		missing = append(missing, "goals")
	}
	if p.RiskAppetite == "" {
		missing = append(missing, "risk_appetite")
	}

	if p.Age != 0 && (p.Age < 18 || p.Age > 120) {
		issues = append(issues, "age must be between 18 and 120 years")
	}
	if p.AnnualIncome < 0 {
		issues = append(issues, "annual income cannot be negative")
	}
	if p.MonthlyExpenses < 0 {
		issues = append(issues, "monthly expenses cannot be negative")
	}
	if p.TotalSavings < 0 {
		issues = append(issues, "total savings cannot be negative")
	}
	if p.AnnualIncome > 0 && p.MonthlyExpenses*12 > p.AnnualIncome*1.5 {
		issues = append(issues, "monthly expenses seem unusually high compared to income")
	}

	return ValidationResult{
		IsValid:       len(missing) == 0 && len(issues) == 0,
		MissingFields: missing,
		Issues:        issues,
	}
}

// ValidateRecord checks a single holding for basic sanity.
func ValidateRecord(r InvestmentRecord) error {
	if r.Amount < 0 {
		return fmt.Errorf("holding %q: amount cannot be negative", r.Name)
	}
	if r.CurrentValue != nil && *r.CurrentValue < 0 {
		return fmt.Errorf("holding %q: current value cannot be negative", r.Name)
	}
	return nil
}
