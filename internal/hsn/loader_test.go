package hsn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceCSV = `hsn_code,category,item_name,rate_of_gst
1006,Grocery,Rice,5
1701,Grocery,Sugar,5
3401,Toiletries,Soap,18
8517,Electronics,Mobile Phone,12
`

func TestLoadCSV(t *testing.T) {
	entries, err := LoadCSV(strings.NewReader(referenceCSV))
	require.NoError(t, err)
	require.Len(t, entries, 4, "one entry per data row")

	assert.Equal(t, "1006", entries[0].HSNCode)
	assert.Equal(t, "Grocery", entries[0].Category)
	assert.Equal(t, "Rice", entries[0].ItemName)
	assert.Equal(t, 5.0, entries[0].GSTRate)
}

func TestLoadCSVHeaderVariants(t *testing.T) {
	csv := "HSN Code, Category ,Item Name,Rate of GST\n1006,Grocery,Rice,5\n"
	entries, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Rice", entries[0].ItemName)
}

func TestLoadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{
			name: "missing column",
			csv:  "hsn_code,category,item_name\n1006,Grocery,Rice\n",
		},
		{
			name: "bad rate",
			csv:  "hsn_code,category,item_name,rate_of_gst\n1006,Grocery,Rice,five\n",
		},
		{
			name: "empty item name",
			csv:  "hsn_code,category,item_name,rate_of_gst\n1006,Grocery,,5\n",
		},
		{
			name: "empty hsn code",
			csv:  "hsn_code,category,item_name,rate_of_gst\n,Grocery,Rice,5\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(tt.csv))
			assert.Error(t, err)
		})
	}
}

func TestLoadCSVEmptyFile(t *testing.T) {
	_, err := LoadCSV(strings.NewReader(""))
	assert.Error(t, err)
}
