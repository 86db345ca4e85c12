package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type TestConfig struct {
	Value    int
	Name     string
	Enabled  bool
	LastCall string
}

func (tc *TestConfig) SetName(name string) {
	tc.Name = name
	tc.LastCall = "SetName"
}

func (tc *TestConfig) SetEnabled(enabled bool) {
	tc.Enabled = enabled
	tc.LastCall = "SetEnabled"
}

// failingOption is a package-local Option that always errors, standing in
// for the fallible option no real call site in this module produces. It
// exercises Apply's short-circuit behavior without exposing a public
// fallible constructor that nothing would ever call.
type failingOption[T any] struct {
	msg string
}

func (f failingOption[T]) apply(T) error {
	return errors.New(f.msg)
}

func TestOption_NoError(t *testing.T) {
	config := &TestConfig{}

	t.Run("creates option from function without error", func(t *testing.T) {
		opt := NoError(func(c *TestConfig) {
			c.SetName("test")
		})

		err := opt.apply(config)
		require.NoError(t, err)
		require.Equal(t, "test", config.Name)
		require.Equal(t, "SetName", config.LastCall)
	})

	t.Run("works with boolean setter", func(t *testing.T) {
		opt := NoError(func(c *TestConfig) {
			c.SetEnabled(true)
		})

		err := opt.apply(config)
		require.NoError(t, err)
		require.True(t, config.Enabled)
		require.Equal(t, "SetEnabled", config.LastCall)
	})
}

func TestOption_Apply(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		config := &TestConfig{}

		opts := []Option[*TestConfig]{
			NoError(func(c *TestConfig) { c.Value = 10 }),
			NoError(func(c *TestConfig) { c.SetName("test") }),
			NoError(func(c *TestConfig) { c.SetEnabled(true) }),
		}

		err := Apply(config, opts...)
		require.NoError(t, err)
		require.Equal(t, 10, config.Value)
		require.Equal(t, "test", config.Name)
		require.True(t, config.Enabled)
		require.Equal(t, "SetEnabled", config.LastCall)
	})

	t.Run("stops at first error and returns it", func(t *testing.T) {
		config := &TestConfig{}

		opts := []Option[*TestConfig]{
			NoError(func(c *TestConfig) { c.SetName("first") }),
			failingOption[*TestConfig]{msg: "value cannot be negative"},
			NoError(func(c *TestConfig) { c.SetName("should not be set") }),
		}

		err := Apply(config, opts...)
		require.Error(t, err)
		require.Contains(t, err.Error(), "value cannot be negative")
		require.Equal(t, "first", config.Name)
	})

	t.Run("works with empty options slice", func(t *testing.T) {
		config := &TestConfig{}
		err := Apply(config)
		require.NoError(t, err)
		require.Equal(t, 0, config.Value)
		require.Equal(t, "", config.Name)
		require.False(t, config.Enabled)
	})
}

func TestOption_Integration(t *testing.T) {
	config := &TestConfig{}

	withName := func(name string) Option[*TestConfig] {
		return NoError(func(c *TestConfig) {
			c.SetName(name)
		})
	}

	withEnabled := func(enabled bool) Option[*TestConfig] {
		return NoError(func(c *TestConfig) {
			c.SetEnabled(enabled)
		})
	}

	t.Run("works with helper functions", func(t *testing.T) {
		err := Apply(config,
			withName("integration test"),
			withEnabled(true),
		)

		require.NoError(t, err)
		require.Equal(t, "integration test", config.Name)
		require.True(t, config.Enabled)
	})
}

type SimpleStruct struct {
	Data string
}

func TestOption_GenericsWithDifferentTypes(t *testing.T) {
	t.Run("works with simple struct", func(t *testing.T) {
		s := &SimpleStruct{}
		opt := NoError(func(ss *SimpleStruct) {
			ss.Data = "generic test"
		})

		err := opt.apply(s)
		require.NoError(t, err)
		require.Equal(t, "generic test", s.Data)
	})

	t.Run("works with primitive types", func(t *testing.T) {
		var num int
		opt := NoError(func(n *int) {
			*n = 42
		})

		err := opt.apply(&num)
		require.NoError(t, err)
		require.Equal(t, 42, num)
	})
}
