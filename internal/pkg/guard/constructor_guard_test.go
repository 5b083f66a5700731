package guard_test

import (
	"errors"
	"testing"

	"tubertreats/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardUsageExample shows the guard embedded in a query-like type.
func TestConstructorGuardUsageExample(t *testing.T) {
	type lookup struct {
		id    int
		guard guard.ConstructorGuard
	}

	errLookupNotConstructed := errors.New("lookup must be created via newLookup")

	newLookup := func(id int) (lookup, error) {
		if id <= 0 {
			return lookup{}, errors.New("id must be positive")
		}
		return lookup{id: id, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		l, err := newLookup(3)

		require.NoError(t, err)
		require.NoError(t, l.guard.Validate(errLookupNotConstructed))
		assert.Equal(t, 3, l.id)
	})

	t.Run("failed_constructor_returns_unusable_zero_value", func(t *testing.T) {
		l, err := newLookup(0)

		require.Error(t, err)
		assert.Equal(t, errLookupNotConstructed, l.guard.Validate(errLookupNotConstructed))
	})

	t.Run("guard_survives_copy_by_value", func(t *testing.T) {
		l, _ := newLookup(1)
		cp := l

		require.NoError(t, cp.guard.Validate(errLookupNotConstructed))
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
