package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSalaryFromDescriptionRange(t *testing.T) {
	sal, ok := ExtractSalaryFromDescription("We offer a competitive salary of $120,000 - $150,000 per year based on experience.")
	assert.True(t, ok)
	assert.Equal(t, "USD", sal.Currency)
	assert.Contains(t, sal.Summary, "$120K")
	assert.Contains(t, sal.Summary, "$150K")
}

func TestExtractSalaryFromDescriptionSingleValue(t *testing.T) {
	sal, ok := ExtractSalaryFromDescription("Base pay for this role is $95,000 annually, plus benefits.")
	assert.True(t, ok)
	assert.Equal(t, "$95K", sal.Summary)
}

func TestExtractSalaryRejectsRevenueMention(t *testing.T) {
	_, ok := ExtractSalaryFromDescription("Our company raised $50 million in Series B funding last year.")
	assert.False(t, ok)
}

func TestExtractSalaryRejectsValuationMention(t *testing.T) {
	_, ok := ExtractSalaryFromDescription("The startup is valued at $200 million after its latest round.")
	assert.False(t, ok)
}

func TestExtractSalaryRejectsBelowFloor(t *testing.T) {
	_, ok := ExtractSalaryFromDescription("Sign-on bonus of $500 is provided in week one.")
	assert.False(t, ok)
}

func TestExtractSalaryRejectsAboveCeiling(t *testing.T) {
	_, ok := ExtractSalaryFromDescription("Total company funding to date is $2,500,000.")
	assert.False(t, ok)
}

func TestExtractSalaryRejectsInvertedRange(t *testing.T) {
	_, ok := ExtractSalaryFromDescription("salary $150,000 - $90,000 depending on level")
	assert.False(t, ok)
}

func TestExtractExperienceRange(t *testing.T) {
	exp, ok := ExtractExperienceFromDescription("Candidates should have 3-5 years experience in backend systems.")
	assert.True(t, ok)
	assert.Equal(t, "3", exp)
}

func TestExtractExperiencePlus(t *testing.T) {
	exp, ok := ExtractExperienceFromDescription("We're looking for someone with 7+ years of experience in distributed systems.")
	assert.True(t, ok)
	assert.Equal(t, "7", exp)
}

func TestExtractExperienceMinimum(t *testing.T) {
	exp, ok := ExtractExperienceFromDescription("Minimum of 4 years required for this position.")
	assert.True(t, ok)
	assert.Equal(t, "4", exp)
}

func TestExtractExperienceNone(t *testing.T) {
	_, ok := ExtractExperienceFromDescription("We are a fast-growing team building delightful products.")
	assert.False(t, ok)
}

func TestParseSalaryRange(t *testing.T) {
	min, max, currency, ok := ParseSalary("$110,000 - $140,000")
	assert.True(t, ok)
	assert.Equal(t, 110000.0, min)
	assert.Equal(t, 140000.0, max)
	assert.Equal(t, "USD", currency)
}

func TestParseSalarySingle(t *testing.T) {
	min, max, _, ok := ParseSalary("€80,000")
	assert.True(t, ok)
	assert.Equal(t, 80000.0, min)
	assert.Equal(t, 80000.0, max)
}
