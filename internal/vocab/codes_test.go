package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunctionalStatus(t *testing.T) {
	assert.Equal(t, "Active government providing primary general-purpose functions", FunctionalStatus("A"))
	assert.Equal(t, "Statistical entity", FunctionalStatus("s"))
	assert.Equal(t, "Fictitious entity created to fill the Census Bureau's geographic hierarchy", FunctionalStatus(" F "))
	assert.Equal(t, "", FunctionalStatus("Z"))
	assert.Equal(t, "", FunctionalStatus(""))
}

func TestLSAD(t *testing.T) {
	assert.Equal(t, "County", LSADDescription("06"))
	assert.Equal(t, LSADSuffix, LSADCategoryOf("06"))

	assert.Equal(t, "Census Tract", LSADDescription("CT"))
	assert.Equal(t, LSADPrefix, LSADCategoryOf("ct"))

	assert.Equal(t, "Balance of", LSADDescription("B1"))
	assert.Equal(t, LSADBalance, LSADCategoryOf("B1"))

	assert.Equal(t, "", LSADDescription("00"))
	assert.Equal(t, LSADUnspecified, LSADCategoryOf("00"))

	assert.Equal(t, "", LSADDescription("XX"))
	assert.Equal(t, LSADUnspecified, LSADCategoryOf("XX"))
}
