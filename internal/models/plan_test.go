package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/streaming-platform/internal/models"
)

func TestNormalizePlan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"canonical basic", "basic", models.PlanBasic},
		{"canonical standard", "standard", models.PlanStandard},
		{"canonical premium", "premium", models.PlanPremium},
		{"spanish basic alias", "basico", models.PlanBasic},
		{"spanish standard alias", "estandar", models.PlanStandard},
		{"unknown name passes through", "platinum", "platinum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.NormalizePlan(tt.in))
		})
	}
}

func TestPlanMaxProfiles(t *testing.T) {
	tests := []struct {
		name string
		plan string
		want int
	}{
		{"basic allows one profile", "basic", 1},
		{"standard allows two profiles", "standard", 2},
		{"premium allows four profiles", "premium", 4},
		{"spanish alias resolves limit", "estandar", 2},
		{"unknown plan limited to one", "platinum", 1},
		{"empty plan limited to one", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.PlanMaxProfiles(tt.plan))
		})
	}
}
