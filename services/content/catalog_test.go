package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCatalog(t *testing.T) {
	require.NoError(t, ValidateCatalog())
}

func TestKnownService(t *testing.T) {
	assert.True(t, KnownService("Personal Training"))
	assert.True(t, KnownService("Crossfit"))
	// Program titles are bookable too.
	assert.True(t, KnownService("Strength Training"))
	assert.False(t, KnownService("Underwater Basket Weaving"))
	assert.False(t, KnownService(""))
}

func TestKnownTimeSlot(t *testing.T) {
	for _, slot := range TimeSlots {
		assert.True(t, KnownTimeSlot(slot))
	}
	assert.False(t, KnownTimeSlot("03:30"))
	assert.False(t, KnownTimeSlot(""))
}

func TestTimeSlotsAreFixed(t *testing.T) {
	assert.Equal(t, []string{"06:00", "08:00", "10:00", "14:00", "16:00", "18:00", "20:00"}, TimeSlots)
}

func TestPlanByID(t *testing.T) {
	for _, p := range PricingPlans {
		found := PlanByID(p.ID)
		require.NotNil(t, found)
		assert.Equal(t, p.Name, found.Name)
		assert.Positive(t, found.AmountUSD)
	}
	assert.Nil(t, PlanByID(0))
	assert.Nil(t, PlanByID(999))
}

func TestCatalogIsNonEmpty(t *testing.T) {
	assert.NotEmpty(t, Services)
	assert.NotEmpty(t, Trainers)
	assert.NotEmpty(t, Programs)
	assert.NotEmpty(t, Testimonials)
	assert.NotEmpty(t, PricingPlans)
}
