package locg_test

import (
	"testing"

	"github.com/comiccruncher/locg/locg"
	"github.com/stretchr/testify/assert"
)

func TestRequestParametersEncode(t *testing.T) {
	params := &locg.RequestParameters{}
	params.Set("date", "2024-03-01")
	params.SetList("format", "regular", "digital")
	assert.Equal(t, "?date=2024-03-01&format[]=regular&format[]=digital", params.Encode())
}

func TestRequestParametersPreserveOrder(t *testing.T) {
	params := &locg.RequestParameters{}
	params.Set("list", "releases")
	params.SetInt("user_id", 122444)
	params.SetList("publisher", "1", "7")
	params.Set("date_type", "week")
	assert.Equal(t, "?list=releases&user_id=122444&publisher[]=1&publisher[]=7&date_type=week", params.Encode())
}

func TestRequestParametersSingleElementList(t *testing.T) {
	params := &locg.RequestParameters{}
	params.SetList("format", "1")
	assert.Equal(t, "?format[]=1", params.Encode())
}
