package utils

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInner struct {
	Code string `json:"code" validate:"len=3"`
}

type sampleRequest struct {
	Inner *sampleInner `json:"inner" validate:"required"`
	Link  *string      `json:"link,omitempty" validate:"omitempty,url"`
}

func TestCollectFieldErrors_UsesJSONPaths(t *testing.T) {
	bad := "not a url"
	err := NewValidator().Struct(sampleRequest{
		Inner: &sampleInner{Code: "ABCD"},
		Link:  &bad,
	})
	require.Error(t, err)

	fieldErrors := CollectFieldErrors(err, map[string]string{
		"inner.code.len": "Code must have three letters",
	})

	assert.Equal(t, []string{"Code must have three letters"}, fieldErrors["inner.code"])
	assert.Equal(t, []string{"link must be a valid URL"}, fieldErrors["link"])
}

func TestCollectFieldErrors_RequiredPointer(t *testing.T) {
	err := NewValidator().Struct(sampleRequest{})
	fieldErrors := CollectFieldErrors(err, nil)

	assert.Equal(t, []string{"inner is required"}, fieldErrors["inner"])
}

func TestCollectFieldErrors_NonValidationError(t *testing.T) {
	fieldErrors := CollectFieldErrors(errors.New("boom"), nil)
	assert.Equal(t, []string{"boom"}, fieldErrors["body"])
	assert.Nil(t, CollectFieldErrors(nil, nil))
}

func TestDecodeTypeErrors(t *testing.T) {
	var req sampleRequest
	err := json.Unmarshal([]byte(`{"inner":{"code":123}}`), &req)
	require.Error(t, err)

	fieldErrors := DecodeTypeErrors(err)
	assert.Equal(t, []string{"inner.code must be of type string"}, fieldErrors["inner.code"])

	syntaxErr := json.Unmarshal([]byte(`{"inner":`), &req)
	assert.Nil(t, DecodeTypeErrors(syntaxErr))
}
