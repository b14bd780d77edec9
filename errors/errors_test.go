package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "loading %s", "model.yaml")

	assert.Contains(t, wrapped.Error(), "loading model.yaml")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWithHint(t *testing.T) {
	err := WithHint(New("cycle"), "move the types into one module")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "move the types into one module", hints[0])
}

func TestWithDetailf(t *testing.T) {
	err := WithDetailf(New("cycle"), "%d members", 3)

	details := GetAllDetails(err)
	require.Len(t, details, 1)
	assert.Equal(t, "3 members", details[0])
}

func TestAssertionFailure(t *testing.T) {
	err := AssertionFailedf("emitted %d of %d nodes", 2, 3)

	assert.True(t, HasAssertionFailure(err))
	assert.True(t, HasAssertionFailure(Wrap(err, "resolve")))
	assert.False(t, HasAssertionFailure(New("plain")))
}

func TestInvalidInput(t *testing.T) {
	err := NewInvalidInputError("module %q has no name", "core")

	assert.True(t, IsInvalidInputError(err))
	assert.True(t, IsInvalidInputError(Wrap(err, "load")))
	assert.False(t, IsInvalidInputError(ErrUnsupportedFormat))
	assert.False(t, IsInvalidInputError(nil))
	assert.Contains(t, err.Error(), `module "core" has no name`)
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func ExampleWrap() {
	baseErr := New("dangling reference")
	err := Wrap(baseErr, "failed to build dependency graph")
	fmt.Println(err)
	// Output: failed to build dependency graph: dangling reference
}
