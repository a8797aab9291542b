package entity_test

import (
	"testing"

	"umrah-service/internal/module/order/models/entity"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{entity.StatusDraft, entity.StatusPending, true},
		{entity.StatusDraft, entity.StatusCancelled, true},
		{entity.StatusDraft, entity.StatusConfirmed, false},
		{entity.StatusDraft, entity.StatusCompleted, false},
		{entity.StatusPending, entity.StatusConfirmed, true},
		{entity.StatusPending, entity.StatusCancelled, true},
		{entity.StatusPending, entity.StatusCompleted, false},
		{entity.StatusConfirmed, entity.StatusCompleted, true},
		{entity.StatusConfirmed, entity.StatusCancelled, true},
		{entity.StatusConfirmed, entity.StatusPending, false},
		{entity.StatusCancelled, entity.StatusPending, false},
		{entity.StatusCompleted, entity.StatusCancelled, false},
	}

	for _, tc := range testCases {
		t.Run(tc.from+"_to_"+tc.to, func(t *testing.T) {
			assert.Equal(t, tc.allowed, entity.CanTransition(tc.from, tc.to))
		})
	}
}
