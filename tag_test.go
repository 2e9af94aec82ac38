package sdl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdl "github.com/ikayzo/sdl-go"
)

func TestNewTagValidatesIdentifiers(t *testing.T) {
	_, err := sdl.NewTag("", "valid_name")
	require.NoError(t, err)

	_, err = sdl.NewTag("", "5invalid")
	require.Error(t, err)

	_, err = sdl.NewTag("bad ns", "name")
	require.Error(t, err)
}

func TestTagQualifiedName(t *testing.T) {
	tag, err := sdl.NewTag("", "name")
	require.NoError(t, err)
	require.Equal(t, "name", tag.QualifiedName())

	tag, err = sdl.NewTag("ns", "name")
	require.NoError(t, err)
	require.Equal(t, "ns:name", tag.QualifiedName())
}

func TestTagAttributesOrderIndependentEquality(t *testing.T) {
	a, err := sdl.NewTag("", "tag")
	require.NoError(t, err)
	require.NoError(t, a.SetAttribute("", "x", int32(1)))
	require.NoError(t, a.SetAttribute("", "y", int32(2)))

	b, err := sdl.NewTag("", "tag")
	require.NoError(t, err)
	require.NoError(t, b.SetAttribute("", "y", int32(2)))
	require.NoError(t, b.SetAttribute("", "x", int32(1)))

	require.True(t, a.Equal(b))
}

func TestTagAttributeNamesSorted(t *testing.T) {
	tag, err := sdl.NewTag("", "tag")
	require.NoError(t, err)
	require.NoError(t, tag.SetAttribute("", "zebra", int32(1)))
	require.NoError(t, tag.SetAttribute("", "apple", int32(2)))
	require.Equal(t, []string{"apple", "zebra"}, tag.AttributeNames())
}

func TestTagSetAttributeReplacesExisting(t *testing.T) {
	tag, err := sdl.NewTag("", "tag")
	require.NoError(t, err)
	require.NoError(t, tag.SetAttribute("", "x", int32(1)))
	require.NoError(t, tag.SetAttribute("", "x", int32(2)))
	v, _, ok := tag.Attribute("x")
	require.True(t, ok)
	i, _ := v.Int32Val()
	require.Equal(t, int32(2), i)
}

func TestTagChild(t *testing.T) {
	parent, err := sdl.NewTag("", "parent")
	require.NoError(t, err)
	son, err := sdl.NewTag("", "son")
	require.NoError(t, err)
	parent.AddChild(son)

	require.Equal(t, son, parent.Child("son"))
	require.Nil(t, parent.Child("daughter"))
}

func TestTagIsAnonymous(t *testing.T) {
	tag, err := sdl.NewTag("", "content")
	require.NoError(t, err)
	require.True(t, tag.IsAnonymous())

	tag2, err := sdl.NewTag("", "greeting")
	require.NoError(t, err)
	require.False(t, tag2.IsAnonymous())
}

func TestTagEqualNil(t *testing.T) {
	var a, b *sdl.Tag
	require.True(t, a.Equal(b))

	c, err := sdl.NewTag("", "tag")
	require.NoError(t, err)
	require.False(t, a.Equal(c))
	require.False(t, c.Equal(a))
}
