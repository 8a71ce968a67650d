package service

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestPersistence(t *testing.T) {
	assert.NoError(t, persistence(nil, "ignored"))

	err := persistence(errors.New("connection reset"), "failed to load routes")
	assert.Equal(t, KindPersistence, KindOf(err))
	assert.Equal(t, "failed to load routes: connection reset", err.Error())

	typed := notFoundf("Pool %d not found", 3)
	assert.Same(t, typed, persistence(typed, "transaction failed"))
	assert.Equal(t, KindNotFound, KindOf(errors.Wrap(typed, "wrapped")))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "precondition", KindPrecondition.String())
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestNum(t *testing.T) {
	assert.Equal(t, "1000", num(1000))
	assert.Equal(t, "-340956000", num(-340956000))
	assert.Equal(t, "2.5", num(2.5))
}
