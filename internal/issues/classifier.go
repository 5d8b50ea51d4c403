package issues

import (
	"regexp"
	"strings"

	"assetdesk/pkg/models"
)

// Keyword sets are checked in severity order; the first match wins.
var (
	criticalPattern = regexp.MustCompile(`critical|urgent|crash|down|failure|not working`)
	degradedPattern = regexp.MustCompile(`slow|error|lag|disconnect`)
)

// Classify runs the rule-based priority analysis over an issue's text. The
// result is pure function of the inputs: identical text always produces the
// identical analysis. Infrastructure categories (network, server) never
// stay at Low.
func Classify(issue models.IssueRequest) models.AIAnalysis {
	analysis := models.AIAnalysis{
		Priority:       models.PriorityLow,
		Recommendation: "Monitor",
		Reason:         "No critical indicators detected.",
	}

	combined := strings.ToLower(issue.Issue + " " + issue.Description + " " + issue.Priority)

	if criticalPattern.MatchString(combined) {
		analysis.Priority = models.PriorityHigh
		analysis.Recommendation = "Immediate technician assignment recommended."
		analysis.Reason = "Critical keywords detected."
	} else if degradedPattern.MatchString(combined) {
		analysis.Priority = models.PriorityMedium
		analysis.Recommendation = "Technician inspection advised."
		analysis.Reason = "Performance-related issue detected."
	}

	category := strings.ToLower(issue.Category)
	if strings.Contains(category, "network") || strings.Contains(category, "server") {
		if analysis.Priority == models.PriorityLow {
			analysis.Priority = models.PriorityMedium
		}
		analysis.Reason += " Related to critical infrastructure."
	}

	return analysis
}
