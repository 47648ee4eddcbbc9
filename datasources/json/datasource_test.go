package json

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typelens/typelens/typelens"
)

func TestDescribe(t *testing.T) {
	columns, err := Describe("fixtures/events.json", Options{})
	require.NoError(t, err)

	assert.Equal(t, []typelens.Column{
		{Name: "id", Type: typelens.Integer},
		{Name: "name", Type: typelens.String},
		// The integer-valued 1 on the third line widens with the floats.
		{Name: "score", Type: typelens.Float},
		{Name: "ok", Type: typelens.Boolean},
		{Name: "when", Type: typelens.Datetime},
		{Name: "day", Type: typelens.Date},
		// Null mixed with text is a disagreement, not a skip.
		{Name: "note", Type: typelens.Mixed},
	}, columns)
}

func TestDescribeReaderStringFieldsAreInferred(t *testing.T) {
	data := `{"a": "123", "b": "2023-01-01"}
{"a": "456", "b": "2023-01-02"}
`
	columns, err := DescribeReader(strings.NewReader(data), Options{})
	require.NoError(t, err)

	assert.Equal(t, []typelens.Column{
		{Name: "a", Type: typelens.Integer},
		{Name: "b", Type: typelens.Date},
	}, columns)
}

func TestDescribeReaderMissingFieldsAreSkipped(t *testing.T) {
	data := `{"a": 1, "b": "x"}
{"a": 2}
{"a": 3, "b": "y"}
`
	columns, err := DescribeReader(strings.NewReader(data), Options{})
	require.NoError(t, err)

	assert.Equal(t, []typelens.Column{
		{Name: "a", Type: typelens.Integer},
		{Name: "b", Type: typelens.String},
	}, columns)
}

func TestDescribeReaderEmptyStringsAreSkipped(t *testing.T) {
	data := `{"a": ""}
{"a": "1"}
{"a": ""}
`
	columns, err := DescribeReader(strings.NewReader(data), Options{})
	require.NoError(t, err)

	assert.Equal(t, []typelens.Column{
		{Name: "a", Type: typelens.Integer},
	}, columns)
}

func TestDescribeReaderContainerValues(t *testing.T) {
	data := `{"a": [1, 2], "b": {"x": 1}}
`
	columns, err := DescribeReader(strings.NewReader(data), Options{})
	require.NoError(t, err)

	assert.Equal(t, []typelens.Column{
		{Name: "a", Type: typelens.String},
		{Name: "b", Type: typelens.String},
	}, columns)
}

func TestDescribeReaderLineLimit(t *testing.T) {
	data := `{"a": 1}
{"a": 2}
{"a": "abc"}
`
	columns, err := DescribeReader(strings.NewReader(data), Options{LineLimit: 2})
	require.NoError(t, err)

	assert.Equal(t, []typelens.Column{
		{Name: "a", Type: typelens.Integer},
	}, columns)
}

func TestDescribeReaderRejectsNonObjects(t *testing.T) {
	_, err := DescribeReader(strings.NewReader("[1, 2, 3]\n"), Options{})
	assert.Error(t, err)
}

func TestDescribeReaderRejectsMalformedJSON(t *testing.T) {
	_, err := DescribeReader(strings.NewReader("{oops\n"), Options{})
	assert.Error(t, err)
}
