package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowSetAdmit(t *testing.T) {
	populated := AllowSet{
		{CampaignID: "C1", ProductID: "P1"}: {Enabled: true, AdGroupID: "AG1"},
	}

	tests := []struct {
		name       string
		allow      AllowSet
		campaignID string
		productID  string
		expected   bool
	}{
		{
			name:       "Chave presente no conjunto é admitida",
			allow:      populated,
			campaignID: "C1",
			productID:  "P1",
			expected:   true,
		},
		{
			name:       "Chave ausente de conjunto não vazio é rejeitada",
			allow:      populated,
			campaignID: "C1",
			productID:  "P2",
			expected:   false,
		},
		{
			name:       "Campanha diferente com mesmo produto é rejeitada",
			allow:      populated,
			campaignID: "C2",
			productID:  "P1",
			expected:   false,
		},
		{
			name:       "Conjunto vazio admite qualquer chave (fail-open)",
			allow:      AllowSet{},
			campaignID: "C9",
			productID:  "P9",
			expected:   true,
		},
		{
			name:       "Conjunto nil admite qualquer chave (fail-open)",
			allow:      nil,
			campaignID: "C9",
			productID:  "P9",
			expected:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.allow.Admit(tt.campaignID, tt.productID))
		})
	}
}

func TestMapCampaignStatus(t *testing.T) {
	assert.Equal(t, CampaignStatusEnabled, MapCampaignStatus("ENABLED"))
	assert.Equal(t, CampaignStatusPaused, MapCampaignStatus("PAUSED"))
	assert.Equal(t, CampaignStatusRemoved, MapCampaignStatus("REMOVED"))
	assert.Equal(t, CampaignStatusUnknown, MapCampaignStatus("EXPERIMENT"))
	assert.Equal(t, CampaignStatusUnknown, MapCampaignStatus(""))
}
