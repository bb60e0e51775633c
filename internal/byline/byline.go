// Package byline renders the company description shown by the demo.
package byline

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	SkillsOffered   = []string{"Data Analysis", "Machine Learning", "Business Intelligence"}
	BenefitsOffered = []string{"Unlimited PTO", "Health Insurance", "Life Insurance", "Remote Work Options"}

	SatisfactionScores  = []float64{4.3, 4.6, 4.9, 4.5, 4.2, 4.0}
	YearsUntilPromotion = []float64{1.8, 2.4, 1.1, 1.3, 2.0, 1.6}
)

const (
	CompanyName        = "Stellar Analytics"
	YearsInOperation   = 10
	PaidHolidays       = 11
	Offers401kMatching = true
)

// Summary holds descriptive statistics for a sample.
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64 // sample (n-1) standard deviation
}

// Stats summarizes xs. xs must contain at least two values.
func Stats(xs []float64) Summary {
	return Summary{
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
		Mean:   stat.Mean(xs, nil),
		StdDev: stat.StdDev(xs, nil),
	}
}

// Get returns the multi-line byline. The output is deterministic.
func Get() string {
	scores := Stats(SatisfactionScores)
	years := Stats(YearsUntilPromotion)

	rule := strings.Repeat("-", 57)
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%s: Delivering Professional Insights\n", CompanyName)
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Skills Offered:              %s\n", quoteList(SkillsOffered))
	fmt.Fprintf(&b, "Years in Operation:          %d\n", YearsInOperation)
	fmt.Fprintf(&b, "Benefits Offered:            %s\n", quoteList(BenefitsOffered))
	fmt.Fprintf(&b, "Offers 401k Matching:        %s\n", boolean(Offers401kMatching))
	fmt.Fprintf(&b, "Number of Paid Holidays:     %d\n", PaidHolidays)
	fmt.Fprintf(&b, "Employee Satisfaction Scores:  %s\n", numberList(SatisfactionScores))
	fmt.Fprintf(&b, "Minimum Satisfaction Score:    %s\n", number(scores.Min))
	fmt.Fprintf(&b, "Maximum Satisfaction Score:    %s\n", number(scores.Max))
	fmt.Fprintf(&b, "Mean Satisfaction Score:       %.2f\n", scores.Mean)
	fmt.Fprintf(&b, "Standard Deviation of Satisfaction Scores:  %.2f\n", scores.StdDev)
	fmt.Fprintf(&b, "Years Until Employees Achieve Promotion:    %s\n", numberList(YearsUntilPromotion))
	fmt.Fprintf(&b, "Minimum Years until Promotion:              %s\n", number(years.Min))
	fmt.Fprintf(&b, "Maximum Years until Promotion:              %s\n", number(years.Max))
	fmt.Fprintf(&b, "Mean Years until Promotion:                 %.2f\n", years.Mean)
	fmt.Fprintf(&b, "Standard Deviation Years until Promotion:   %.2f\n", years.StdDev)
	return b.String()
}

// boolean prints True or False.
func boolean(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "'" + item + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// number prints floats with at least one decimal place, so 4 renders as 4.0.
func number(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func numberList(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = number(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
