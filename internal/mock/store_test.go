package mock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateAssignsSequentialIDs(t *testing.T) {
	s := NewStore()
	a := s.Create("A", "first", nil)
	b := s.Create("B", "second", []string{"x"})

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, []string{}, a.Tags)
	assert.Equal(t, []string{"x"}, b.Tags)
}

func TestStoreCreateDedupesTags(t *testing.T) {
	s := NewStore()
	tmpl := s.Create("A", "c", []string{"a", "b", "b"})

	assert.Equal(t, []string{"a", "b"}, tmpl.Tags)
	assert.Len(t, s.Tags(), 2)
}

func TestStoreList(t *testing.T) {
	s := NewStore()
	s.Create("Shipping delay", "Your parcel is late", []string{"shipping"})
	s.Create("Refund", "We issued a REFUND", []string{"billing"})
	s.Create("Storage", "Keep frozen", []string{"storage", "shipping"})

	tests := []struct {
		name   string
		search string
		tag    string
		want   []string
	}{
		{name: "no filter", want: []string{"Shipping delay", "Refund", "Storage"}},
		{name: "search title", search: "ship", want: []string{"Shipping delay"}},
		{name: "search content case-insensitive", search: "refund", want: []string{"Refund"}},
		{name: "tag", tag: "shipping", want: []string{"Shipping delay", "Storage"}},
		{name: "search and tag", search: "frozen", tag: "shipping", want: []string{"Storage"}},
		{name: "unknown tag ignored", tag: "nope", want: []string{"Shipping delay", "Refund", "Storage"}},
		{name: "no match", search: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]string, 0)
			for _, tmpl := range s.List(tt.search, tt.tag) {
				got = append(got, tmpl.Title)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStoreUpdatePartial(t *testing.T) {
	s := NewStore()
	created := s.Create("Title", "Content", []string{"a"})

	title := "New title"
	updated, ok := s.Update(created.ID, templateUpdate{Title: &title})
	require.True(t, ok)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "Content", updated.Content)
	assert.Equal(t, []string{"a"}, updated.Tags)

	tags := []string{}
	updated, ok = s.Update(created.ID, templateUpdate{Tags: &tags})
	require.True(t, ok)
	assert.Empty(t, updated.Tags)

	_, ok = s.Update(99, templateUpdate{Title: &title})
	assert.False(t, ok)
}

func TestStoreDeleteKeepsTags(t *testing.T) {
	s := NewStore()
	created := s.Create("Title", "Content", []string{"keep"})

	assert.True(t, s.Delete(created.ID))
	assert.False(t, s.Delete(created.ID))

	_, ok := s.Get(created.ID)
	assert.False(t, ok)
	assert.Equal(t, []Tag{{ID: 1, Name: "keep"}}, s.Tags())
}
