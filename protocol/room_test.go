package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameTag(t *testing.T) {
	assert.Equal(t, "game:demo", GameTag("demo"))
}

func TestAugmentTags_AddsGameTag(t *testing.T) {
	got := AugmentTags([]string{"ranked"}, "demo", false)
	assert.Equal(t, []string{"ranked", "game:demo"}, got)
}

func TestAugmentTags_Private(t *testing.T) {
	got := AugmentTags(nil, "demo", true)
	assert.Equal(t, []string{"game:demo", "private"}, got)
}

func TestAugmentTags_NoDuplicates(t *testing.T) {
	got := AugmentTags([]string{"game:demo", "private", "ranked"}, "demo", true)
	assert.Equal(t, []string{"game:demo", "private", "ranked"}, got)
}

func TestAugmentTags_InputUntouched(t *testing.T) {
	in := []string{"ranked"}
	_ = AugmentTags(in, "demo", true)
	assert.Equal(t, []string{"ranked"}, in)
}
