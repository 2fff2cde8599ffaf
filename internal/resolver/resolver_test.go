package resolver

import (
	"fmt"
	"os"
	"testing"

	"github.com/learnbot/jobatlas/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCompanyName(t *testing.T) {
	cases := map[string]string{
		"Acme Inc.":   "acme",
		"Acme Inc":    "acme",
		"Acme LLC":    "acme",
		"Acme Corp.":  "acme",
		"  Acme  Co.": "acme",
		"Acme":        "acme",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeCompanyName(in), in)
	}
}

func TestExtractSlugFromURL(t *testing.T) {
	assert.Equal(t, "acme", ExtractSlugFromURL(model.ATSRippling, "https://ats.rippling.com/acme/jobs/123"))
	assert.Equal(t, "acme-labs", ExtractSlugFromURL(model.ATSAshby, "https://jobs.ashbyhq.com/acme-labs"))
	assert.Equal(t, "acme/engineering", ExtractSlugFromURL(model.ATSGreenhouse, "https://boards.greenhouse.io/acme%2Fengineering"))
}

type fakeRegistry struct {
	rows []RegistryRow
}

func (f fakeRegistry) Rows() ([]RegistryRow, error) { return f.rows, nil }

func TestResolve(t *testing.T) {
	r := New(map[model.ATSType]RegistryReader{
		model.ATSAshby: fakeRegistry{rows: []RegistryRow{
			{DisplayName: "Acme Inc.", URL: "https://jobs.ashbyhq.com/acme"},
		}},
		model.ATSGreenhouse: fakeRegistry{rows: []RegistryRow{
			{DisplayName: "Acme", URL: "https://boards.greenhouse.io/acme"},
		}},
	})

	matches, err := r.Resolve("Acme", "")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, model.ATSAshby, matches[0].ATSType)
	assert.Equal(t, "acme", matches[0].Slug)
}

type errRegistry struct {
	err error
}

func (e errRegistry) Rows() ([]RegistryRow, error) { return nil, e.err }

func TestResolveContinuesPastOneBadRegistry(t *testing.T) {
	r := New(map[model.ATSType]RegistryReader{
		model.ATSAshby: errRegistry{err: fmt.Errorf("open registry: %w", os.ErrNotExist)},
		model.ATSGreenhouse: fakeRegistry{rows: []RegistryRow{
			{DisplayName: "Acme", URL: "https://boards.greenhouse.io/acme"},
		}},
	})

	matches, err := r.Resolve("Acme", "")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, model.ATSGreenhouse, matches[0].ATSType)
}

func TestResolveErrorsOnlyWhenEveryRegistryFails(t *testing.T) {
	r := New(map[model.ATSType]RegistryReader{
		model.ATSAshby:      errRegistry{err: fmt.Errorf("open registry: %w", os.ErrNotExist)},
		model.ATSGreenhouse: errRegistry{err: fmt.Errorf("open registry: %w", os.ErrNotExist)},
	})

	_, err := r.Resolve("Acme", "")
	assert.Error(t, err)
}

func TestResolveWithATSFilter(t *testing.T) {
	r := New(map[model.ATSType]RegistryReader{
		model.ATSAshby: fakeRegistry{rows: []RegistryRow{
			{DisplayName: "Acme", URL: "https://jobs.ashbyhq.com/acme"},
		}},
		model.ATSGreenhouse: fakeRegistry{rows: []RegistryRow{
			{DisplayName: "Acme", URL: "https://boards.greenhouse.io/acme"},
		}},
	})

	matches, err := r.Resolve("Acme", model.ATSGreenhouse)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, model.ATSGreenhouse, matches[0].ATSType)
}
