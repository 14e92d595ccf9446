package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryLog(t *testing.T) {
	t.Run("first value of each parameter", func(t *testing.T) {
		v := url.Values{"city": {"Pune", "Mumbai"}, "state": {"MH"}}
		assert.JSONEq(t, `{"city":"Pune","state":"MH"}`, QueryLog(v))
	})

	t.Run("no parameters", func(t *testing.T) {
		assert.Equal(t, "{}", QueryLog(url.Values{}))
	})
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.IsValid(), c)
	}
	assert.False(t, Category("vehicle").IsValid())
}
