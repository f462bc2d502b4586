package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nutritionPayload struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
}

func TestExtractJSONFromFencedOutput(t *testing.T) {
	raw := "Here you go:\n```json\n{\"name\":\"Apple\",\"calories\":95}\n```\nEnjoy!"

	var got nutritionPayload
	require.NoError(t, ExtractJSON(raw, &got))
	assert.Equal(t, "Apple", got.Name)
	assert.Equal(t, 95.0, got.Calories)
}

func TestExtractJSONFromBareObject(t *testing.T) {
	var got nutritionPayload
	require.NoError(t, ExtractJSON(`{"name":"Egg","calories":78}`, &got))
	assert.Equal(t, "Egg", got.Name)
}

func TestExtractJSONWithSurroundingProse(t *testing.T) {
	raw := "Sure! Based on your description I estimate {\"name\":\"Banana\",\"calories\":105} — hope that helps."

	var got nutritionPayload
	require.NoError(t, ExtractJSON(raw, &got))
	assert.Equal(t, "Banana", got.Name)
}

func TestExtractJSONNoBraces(t *testing.T) {
	var got nutritionPayload
	err := ExtractJSON("Sorry, I cannot help", &got)
	assert.ErrorIs(t, err, ErrNoJSON)
}

func TestExtractJSONMalformedObject(t *testing.T) {
	var got nutritionPayload
	err := ExtractJSON("{\"name\": \"Apple\", \"calories\": }", &got)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoJSON)
}

func TestExtractJSONEmptyInput(t *testing.T) {
	var got nutritionPayload
	assert.ErrorIs(t, ExtractJSON("", &got), ErrNoJSON)
}
