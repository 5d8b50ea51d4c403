package issues

import (
	"testing"

	"assetdesk/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		issue          models.IssueRequest
		wantPriority   string
		wantReason     string
		wantRecommends string
	}{
		{
			name:           "critical keyword in issue text",
			issue:          models.IssueRequest{Issue: "Laptop not working", Category: "Laptop"},
			wantPriority:   models.PriorityHigh,
			wantReason:     "Critical keywords detected.",
			wantRecommends: "Immediate technician assignment recommended.",
		},
		{
			name:           "critical keyword in description",
			issue:          models.IssueRequest{Issue: "Display issue", Description: "screen keeps going down randomly", Category: "Monitor"},
			wantPriority:   models.PriorityHigh,
			wantReason:     "Critical keywords detected.",
			wantRecommends: "Immediate technician assignment recommended.",
		},
		{
			name:           "degraded keyword",
			issue:          models.IssueRequest{Issue: "Machine is very slow", Category: "Desktop"},
			wantPriority:   models.PriorityMedium,
			wantReason:     "Performance-related issue detected.",
			wantRecommends: "Technician inspection advised.",
		},
		{
			name:           "no keywords stays low",
			issue:          models.IssueRequest{Issue: "Key cap loose", Category: "Peripherals"},
			wantPriority:   models.PriorityLow,
			wantReason:     "No critical indicators detected.",
			wantRecommends: "Monitor",
		},
		{
			name:           "network category lifts low to medium",
			issue:          models.IssueRequest{Issue: "Port dusty", Category: "Network"},
			wantPriority:   models.PriorityMedium,
			wantReason:     "No critical indicators detected. Related to critical infrastructure.",
			wantRecommends: "Monitor",
		},
		{
			name:           "server category keeps high priority",
			issue:          models.IssueRequest{Issue: "Server crash on boot", Category: "Server"},
			wantPriority:   models.PriorityHigh,
			wantReason:     "Critical keywords detected. Related to critical infrastructure.",
			wantRecommends: "Immediate technician assignment recommended.",
		},
		{
			name:           "keyword matching is case insensitive",
			issue:          models.IssueRequest{Issue: "URGENT replacement needed", Category: "Laptop"},
			wantPriority:   models.PriorityHigh,
			wantReason:     "Critical keywords detected.",
			wantRecommends: "Immediate technician assignment recommended.",
		},
		{
			name:           "critical wins over degraded",
			issue:          models.IssueRequest{Issue: "slow and then total failure", Category: "Desktop"},
			wantPriority:   models.PriorityHigh,
			wantReason:     "Critical keywords detected.",
			wantRecommends: "Immediate technician assignment recommended.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := Classify(tt.issue)

			assert.Equal(t, tt.wantPriority, analysis.Priority)
			assert.Equal(t, tt.wantReason, analysis.Reason)
			assert.Equal(t, tt.wantRecommends, analysis.Recommendation)
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	issue := models.IssueRequest{
		Issue:       "WiFi keeps disconnecting",
		Description: "drops every few minutes",
		Category:    "Network",
	}

	first := Classify(issue)
	second := Classify(issue)

	assert.Equal(t, first, second)
}
