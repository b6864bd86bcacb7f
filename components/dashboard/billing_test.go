package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillingSelectPlan(t *testing.T) {
	b := NewBilling(DefaultPlans())
	assert.Equal(t, "pro", b.SelectedPlan())

	plan, err := b.SelectPlan("enterprise")
	require.NoError(t, err)
	assert.Equal(t, "$99", plan.Price)
	assert.Equal(t, "enterprise", b.SelectedPlan())

	_, err = b.SelectPlan("platinum")
	assert.ErrorIs(t, err, ErrPlanNotFound)
	assert.Equal(t, "enterprise", b.SelectedPlan())
}

func TestBillingDatasets(t *testing.T) {
	b := NewBilling(DefaultPlans())
	require.Len(t, b.Plans(), 3)
	assert.True(t, b.Plans()[1].Popular)
	assert.Len(t, b.Invoices(), 4)
	assert.Equal(t, "Pro", b.CurrentPlan().Name)
}

func TestUsageMeterPercent(t *testing.T) {
	cases := []struct {
		meter     UsageMeter
		percent   int
		unlimited bool
	}{
		{UsageMeter{Used: 8, Limit: 12}, 66, false},
		{UsageMeter{Used: 20, Limit: 12}, 100, false},
		{UsageMeter{Used: 847}, 0, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.percent, tc.meter.Percent())
		assert.Equal(t, tc.unlimited, tc.meter.Unlimited())
	}
}
