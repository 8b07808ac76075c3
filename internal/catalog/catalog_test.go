package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justforyou-nail/booking-service/internal/domain"
)

func TestLoad(t *testing.T) {
	c, err := Load("testdata/catalog.toml")
	require.NoError(t, err)

	assert.Len(t, c.Services(), 3)
	assert.Len(t, c.Stylists(), 2)

	svc, ok := c.ServiceByID("h1")
	require.True(t, ok)
	assert.Equal(t, 60, svc.DurationMinutes)
	assert.Equal(t, 500, svc.PriceTWD)
	assert.Equal(t, domain.CategoryHand, svc.Category)

	quoted, ok := c.ServiceByID("h5")
	require.True(t, ok)
	assert.True(t, quoted.QuoteOnSite)

	_, ok = c.ServiceByID("nope")
	assert.False(t, ok)

	st, ok := c.StylistByID("s1")
	require.True(t, ok)
	assert.Equal(t, "虹", st.Name)

	// The sentinel is not a stylist.
	_, ok = c.StylistByID(domain.StylistAny)
	assert.False(t, ok)

	assert.Equal(t, "手部光療 / 美甲", c.CategoryLabel(domain.CategoryHand))
	// Missing label falls back to the tag.
	assert.Equal(t, "combo", c.CategoryLabel(domain.CategoryCombo))
}

func TestRosterOrderIsDeclaredOrder(t *testing.T) {
	c, err := Load("testdata/catalog.toml")
	require.NoError(t, err)

	roster := c.Stylists()
	require.Len(t, roster, 2)
	assert.Equal(t, "s1", roster[0].ID)
	assert.Equal(t, "s2", roster[1].ID)
}

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name string
		raw  fileFormat
	}{
		{name: "empty catalog", raw: fileFormat{}},
		{
			name: "reserved stylist id",
			raw: func() fileFormat {
				raw := validRaw()
				raw.Stylists[0].ID = domain.StylistAny
				return raw
			}(),
		},
		{
			name: "unknown category",
			raw: func() fileFormat {
				raw := validRaw()
				raw.Services[0].Category = "massage"
				return raw
			}(),
		},
		{
			name: "zero duration",
			raw: func() fileFormat {
				raw := validRaw()
				raw.Services[0].DurationMinutes = 0
				return raw
			}(),
		},
		{
			name: "no price without quote",
			raw: func() fileFormat {
				raw := validRaw()
				raw.Services[0].PriceTWD = 0
				raw.Services[0].QuoteOnSite = false
				return raw
			}(),
		},
		{
			name: "duplicate service id",
			raw: func() fileFormat {
				raw := validRaw()
				raw.Services = append(raw.Services, raw.Services[0])
				return raw
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := build(tt.raw)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func validRaw() fileFormat {
	return fileFormat{
		Services: []serviceEntry{
			{ID: "h1", Name: "單色", Category: "hand", PriceTWD: 500, DurationMinutes: 60},
		},
		Stylists: []stylistEntry{
			{ID: "s1", Name: "虹"},
		},
	}
}
