package entities

import "fmt"

// Rule boundaries.
const (
	MinStages       = 3 // stages must be greater than 2
	MinFeedPosition = 2
)

// columnRule inspects parameters and returns the violations it finds.
// Rules never see each other's output.
type columnRule func(p Parameters) []string

// columnRules is evaluated in order; every rule always runs.
var columnRules = []columnRule{
	checkDistillateToFeedRatio,
	checkStages,
	checkRefluxRatio,
	checkFeedPositions,
}

func checkDistillateToFeedRatio(p Parameters) []string {
	// negated form so NaN fails as well
	if !(p.DistillateToFeedRatio > 0 && p.DistillateToFeedRatio < 1) {
		return []string{"Distillate to feed ratio must be between 0 and 1"}
	}
	return nil
}

func checkStages(p Parameters) []string {
	if p.Stages < MinStages {
		return []string{fmt.Sprintf("Stages=%d must be greater than 2", p.Stages)}
	}
	return nil
}

func checkRefluxRatio(p Parameters) []string {
	if !(p.RefluxRatio > 0) {
		return []string{"Reflux ratio must be greater than 0"}
	}
	return nil
}

func checkFeedPositions(p Parameters) []string {
	if len(p.FeedPositions) == 0 {
		return []string{"Needs at least one feed position"}
	}

	var violations []string
	for _, pos := range p.FeedPositions {
		if pos < MinFeedPosition || pos >= p.Stages {
			violations = append(violations, fmt.Sprintf(
				"Feed position %d not allowed, range is %d..%d", pos, MinFeedPosition, p.Stages-1))
		}
	}
	return violations
}

// validateParameters runs every rule and collects all violations.
func validateParameters(p Parameters) []string {
	var violations []string
	for _, rule := range columnRules {
		violations = append(violations, rule(p)...)
	}
	return violations
}
