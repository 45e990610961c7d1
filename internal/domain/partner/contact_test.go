package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContact(t *testing.T) {
	t.Run("valid contact", func(t *testing.T) {
		c, err := NewContact("  Azure Interior  ", "Vendor@Example.COM")
		require.NoError(t, err)
		assert.Equal(t, "Azure Interior", c.Name)
		assert.Equal(t, "vendor@example.com", c.Email)
		assert.True(t, c.HasEmail())
	})

	t.Run("contact without email", func(t *testing.T) {
		c, err := NewContact("Walk-in", "")
		require.NoError(t, err)
		assert.False(t, c.HasEmail())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := NewContact("   ", "a@b.com")
		assert.Error(t, err)
	})
}

func TestContact_Rename(t *testing.T) {
	c, err := NewContact("Azure Interior", "vendor@example.com")
	require.NoError(t, err)

	require.NoError(t, c.Rename("Azure Interiors Pvt Ltd"))
	assert.Equal(t, "Azure Interiors Pvt Ltd", c.Name)

	assert.Error(t, c.Rename("  "))
}

func TestContact_SetEmail(t *testing.T) {
	c, err := NewContact("Azure Interior", "vendor@example.com")
	require.NoError(t, err)

	c.SetEmail("NEW@Example.com")
	assert.Equal(t, "new@example.com", c.Email)

	// Clearing the email detaches any portal account linkage on the next write
	c.SetEmail("")
	assert.False(t, c.HasEmail())
}

func TestContact_Archive(t *testing.T) {
	c, err := NewContact("Azure Interior", "vendor@example.com")
	require.NoError(t, err)

	before := c.Version
	c.Archive()
	assert.True(t, c.Archived)
	assert.Equal(t, before+1, c.Version)
}
