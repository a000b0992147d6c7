package admin

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skylink/internal/application/admin/dto"
	"skylink/internal/application/analytics"
	commondto "skylink/internal/application/common/dto"
	"skylink/internal/domain/plan"
	"skylink/internal/interfaces/cli/cmdutil"
)

func TestPrintOverview(t *testing.T) {
	var out bytes.Buffer
	rt := &cmdutil.Runtime{Out: &out}

	ov := &dto.AdminOverviewDTO{
		Analytics: analytics.Analytics{
			TotalCustomers:  3,
			ActiveCustomers: 2,
			TotalComplaints: 4,
			PendingIssues:   1,
		},
		ActiveFromTags: true,
		PlanDistribution: []analytics.PlanBucket{
			{Label: "Basic", Count: 2},
			{Label: "No Plan", Count: 1},
		},
		ComplaintStatus: analytics.ComplaintStatus{Pending: 1, Resolved: 3},
		RecentCustomers: []commondto.UserDTO{
			{Name: "Asha", Email: "asha@example.com", JoinedOn: "01 Jan 2025"},
		},
		RecentComplaints: []commondto.ComplaintDTO{
			{ID: 9, Subject: "No signal", Priority: "HIGH", StatusLabel: "Pending", CreatedOn: "02 Jan 2025"},
		},
	}

	require.NoError(t, printOverview(rt, ov))

	got := out.String()
	assert.Contains(t, got, "2 (estimated)")
	assert.Contains(t, got, "Basic")
	assert.Contains(t, got, "Complaint Status: 1 pending, 3 resolved")
	assert.Contains(t, got, "asha@example.com")
	assert.Contains(t, got, "No signal")
}

func TestUpdateForm_OnlyChangedFlagsApply(t *testing.T) {
	current := []commondto.PlanDTO{{
		ID:             4,
		Name:           "Basic",
		Description:    "Starter pack",
		Price:          199,
		DurationInDays: 28,
		DataLimitGB:    1.5,
		SpeedMbps:      20,
		Active:         true,
	}}

	form, ok := seedForm(current, 4)
	require.True(t, ok)

	var in plan.Input
	cmd := &cobra.Command{Use: "update"}
	bindPlanFlags(cmd, &in)
	require.NoError(t, cmd.Flags().Parse([]string{"--price", "249", "--active=false"}))

	applyChangedFlags(cmd, &form, in)

	assert.Equal(t, plan.Input{
		Name:           "Basic",
		Description:    "Starter pack",
		Price:          249,
		DurationInDays: 28,
		DataLimitGB:    1.5,
		SpeedMbps:      20,
		Active:         false,
	}, form)

	_, ok = seedForm(current, 5)
	assert.False(t, ok)
}
