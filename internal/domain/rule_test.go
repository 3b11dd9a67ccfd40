package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestAvailabilityRuleValidate(t *testing.T) {
	valid := AvailabilityRule{
		Weekday:          1,
		StartMinute:      600,
		EndMinute:        1140,
		BreakStartMinute: intPtr(840),
		BreakEndMinute:   intPtr(900),
	}
	assert.True(t, valid.Validate())

	noBreak := AvailabilityRule{Weekday: 7, StartMinute: 0, EndMinute: MinutesPerDay}
	assert.True(t, noBreak.Validate())

	badWeekday := valid
	badWeekday.Weekday = 0
	assert.False(t, badWeekday.Validate())

	inverted := valid
	inverted.StartMinute = 1200
	assert.False(t, inverted.Validate())

	beyondDay := valid
	beyondDay.EndMinute = MinutesPerDay + 1
	assert.False(t, beyondDay.Validate())

	breakOutside := valid
	breakOutside.BreakEndMinute = intPtr(1200)
	assert.False(t, breakOutside.Validate())

	breakBeforeWindow := valid
	breakBeforeWindow.BreakStartMinute = intPtr(300)
	assert.False(t, breakBeforeWindow.Validate())
}

func TestRoleCanManageBookings(t *testing.T) {
	assert.True(t, RoleOwner.CanManageBookings())
	assert.True(t, RoleAdmin.CanManageBookings())
	assert.True(t, RoleStaff.CanManageBookings())
	assert.False(t, RoleClient.CanManageBookings())
	assert.False(t, Role("manager").CanManageBookings())
}
