package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryStatus_IsValid(t *testing.T) {
	for _, s := range []DeliveryStatus{
		DeliveryStatusPending, DeliveryStatusAssigned, DeliveryStatusInTransit,
		DeliveryStatusDelivered, DeliveryStatusFailed,
	} {
		assert.True(t, s.IsValid(), s.String())
	}

	assert.False(t, DeliveryStatus("shipped").IsValid())
	assert.False(t, DeliveryStatus("").IsValid())
}

func TestDeliveryStatus_IsTerminal(t *testing.T) {
	assert.True(t, DeliveryStatusDelivered.IsTerminal())
	assert.True(t, DeliveryStatusFailed.IsTerminal())
	assert.False(t, DeliveryStatusPending.IsTerminal())
	assert.False(t, DeliveryStatusInTransit.IsTerminal())
}

func TestDeliveryStatus_Title(t *testing.T) {
	assert.Equal(t, "In Transit", DeliveryStatusInTransit.Title())
	assert.Equal(t, "Pending", DeliveryStatusPending.Title())
	assert.Equal(t, "Delivered", DeliveryStatusDelivered.Title())
}

func TestRolesFromStrings_FiltersInvalid(t *testing.T) {
	roles := RolesFromStrings([]string{"customer", "admin", "delivery_agent"})

	assert.Equal(t, Roles{RoleCustomer, RoleDeliveryAgent}, roles)
	assert.True(t, roles.Contains(RoleCustomer))
	assert.False(t, roles.Contains(RoleOwner))
}
