package services

import (
	"testing"

	"github.com/devfolio/portfolio-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestBlogSlugUniqueness(t *testing.T) {
	svc := NewBlogService(newTestDB(t))

	_, err := svc.Create(&dto.BlogRequest{Title: "First", Slug: "first", Content: "hello"})
	require.NoError(t, err)

	_, err = svc.Create(&dto.BlogRequest{Title: "Other", Slug: "first", Content: "world"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestBlogPublicListExcludesDrafts(t *testing.T) {
	svc := NewBlogService(newTestDB(t))

	_, err := svc.Create(&dto.BlogRequest{
		Title: "Live", Slug: "live", Content: "x", IsPublished: boolPtr(true),
	})
	require.NoError(t, err)
	_, err = svc.Create(&dto.BlogRequest{
		Title: "Draft", Slug: "draft", Content: "x",
	})
	require.NoError(t, err)

	public, err := svc.List(true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "live", public[0].Slug)

	all, err := svc.List(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBlogGetBySlug(t *testing.T) {
	svc := NewBlogService(newTestDB(t))

	_, err := svc.Create(&dto.BlogRequest{
		Title: "Live", Slug: "live", Content: "x", IsPublished: boolPtr(true),
	})
	require.NoError(t, err)
	_, err = svc.Create(&dto.BlogRequest{Title: "Draft", Slug: "draft", Content: "x"})
	require.NoError(t, err)

	blog, err := svc.GetBySlug("live")
	require.NoError(t, err)
	assert.EqualValues(t, 1, blog.ViewCount)

	blog, err = svc.GetBySlug("live")
	require.NoError(t, err)
	assert.EqualValues(t, 2, blog.ViewCount)

	// Drafts are invisible on the slug route.
	_, err = svc.GetBySlug("draft")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlogTagsAttachAndReplace(t *testing.T) {
	svc := NewBlogService(newTestDB(t))

	gotag, err := svc.CreateTag(&dto.BlogTagRequest{Name: "go"})
	require.NoError(t, err)
	webtag, err := svc.CreateTag(&dto.BlogTagRequest{Name: "web"})
	require.NoError(t, err)

	blog, err := svc.Create(&dto.BlogRequest{
		Title: "Post", Slug: "post", Content: "x", TagIDs: []uint{gotag.ID},
	})
	require.NoError(t, err)
	require.Len(t, blog.Tags, 1)
	assert.Equal(t, "go", blog.Tags[0].Name)

	updated, err := svc.Update(blog.ID, &dto.BlogRequest{
		Title: "Post", Slug: "post", Content: "x", TagIDs: []uint{webtag.ID},
	})
	require.NoError(t, err)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "web", updated.Tags[0].Name)
}

func TestBlogDeleteClearsTags(t *testing.T) {
	svc := NewBlogService(newTestDB(t))

	tag, err := svc.CreateTag(&dto.BlogTagRequest{Name: "go"})
	require.NoError(t, err)
	blog, err := svc.Create(&dto.BlogRequest{
		Title: "Post", Slug: "post", Content: "x", TagIDs: []uint{tag.ID},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(blog.ID))

	_, err = svc.GetByID(blog.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The tag itself survives.
	tags, err := svc.ListTags()
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}
