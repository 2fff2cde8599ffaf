package atsmap

import (
	"testing"

	"github.com/learnbot/jobatlas/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestLookupAmbiguousEntryMeansSearchAll(t *testing.T) {
	m := Map{"acme": ""}
	_, ok := m.Lookup("Acme")
	assert.False(t, ok)
}

func TestLookupKnownEntry(t *testing.T) {
	m := Map{"acme": "ashby"}
	ats, ok := m.Lookup("Acme Inc.")
	assert.True(t, ok)
	assert.Equal(t, model.ATSAshby, ats)
}

func TestUpdateFromRunSingleATS(t *testing.T) {
	jobs := []model.Job{
		{Company: "Acme", ATSType: model.ATSAshby},
		{Company: "Acme", ATSType: model.ATSAshby},
	}
	updated := UpdateFromRun(Map{}, jobs)
	assert.Equal(t, "ashby", updated["acme"])
}

func TestUpdateFromRunAmbiguousATS(t *testing.T) {
	jobs := []model.Job{
		{Company: "Acme", ATSType: model.ATSAshby},
		{Company: "Acme", ATSType: model.ATSGreenhouse},
	}
	updated := UpdateFromRun(Map{}, jobs)
	assert.Equal(t, "", updated["acme"])
}
