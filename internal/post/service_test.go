package post

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/melvinb/postfeed/internal/apperr"
	"github.com/melvinb/postfeed/internal/models"
)

type fakePostStore struct {
	posts []models.Post
}

func (f *fakePostStore) Insert(_ context.Context, post *models.Post) (primitive.ObjectID, error) {
	stored := *post
	stored.ID = primitive.NewObjectID()
	stored.CreatedAt = time.Now()
	f.posts = append(f.posts, stored)
	return stored.ID, nil
}

func (f *fakePostStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakePostStore) All(_ context.Context) ([]models.Post, error) {
	return append([]models.Post(nil), f.posts...), nil
}

func (f *fakePostStore) ByOwner(_ context.Context, owner string) ([]models.Post, error) {
	var out []models.Post
	for _, p := range f.posts {
		if p.UserID == owner {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeAccounts struct {
	accounts map[primitive.ObjectID]models.Account
}

func (f *fakeAccounts) FindByID(_ context.Context, id primitive.ObjectID) (*models.Account, error) {
	acc, ok := f.accounts[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &acc, nil
}

func newTestService() (*Service, *fakePostStore, primitive.ObjectID) {
	author := primitive.NewObjectID()
	accounts := &fakeAccounts{accounts: map[primitive.ObjectID]models.Account{
		author: {ID: author, Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"},
	}}
	posts := &fakePostStore{}
	return NewService(posts, accounts), posts, author
}

func TestCreate_StampsAuthorSnapshot(t *testing.T) {
	t.Parallel()

	svc, _, author := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, author, models.CreatePostRequest{Title: "T", Content: "C"})
	require.NoError(t, err)

	require.Equal(t, author.Hex(), created.UserID)
	require.Equal(t, "T", created.Title)
	require.Equal(t, "C", created.Content)
	require.Equal(t, "Ada", created.FirstName)
	require.NotNil(t, created.Comments)
	require.Empty(t, created.Comments)
	require.NotNil(t, created.UpVotes)
	require.Empty(t, created.UpVotes)
	require.False(t, created.CreatedAt.IsZero())
}

func TestCreate_VanishedAuthor(t *testing.T) {
	t.Parallel()

	svc, posts, _ := newTestService()

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), models.CreatePostRequest{Title: "T", Content: "C"})
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.Empty(t, posts.posts, "nothing may be inserted when the author lookup fails")
}

func TestListByOwner_FiltersOtherAccounts(t *testing.T) {
	t.Parallel()

	svc, _, author := newTestService()
	ctx := context.Background()

	other := primitive.NewObjectID()
	svcOther := NewService(svc.posts.(*fakePostStore), &fakeAccounts{accounts: map[primitive.ObjectID]models.Account{
		other: {ID: other, FirstName: "Grace"},
	}})

	for _, title := range []string{"one", "two", "three"} {
		_, err := svc.Create(ctx, author, models.CreatePostRequest{Title: title, Content: "c"})
		require.NoError(t, err)
	}
	_, err := svcOther.Create(ctx, other, models.CreatePostRequest{Title: "theirs", Content: "c"})
	require.NoError(t, err)

	mine, err := svc.ListByOwner(ctx, author)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	for _, p := range mine {
		require.Equal(t, author.Hex(), p.UserID)
	}

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
}

func TestListAll_EmptyStoreReturnsEmptySlice(t *testing.T) {
	t.Parallel()

	svc, _, author := newTestService()
	ctx := context.Background()

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.NotNil(t, all)
	require.Empty(t, all)

	mine, err := svc.ListByOwner(ctx, author)
	require.NoError(t, err)
	require.NotNil(t, mine)
	require.Empty(t, mine)
}

func TestCreate_SnapshotStaysAfterNameChange(t *testing.T) {
	t.Parallel()

	author := primitive.NewObjectID()
	accounts := &fakeAccounts{accounts: map[primitive.ObjectID]models.Account{
		author: {ID: author, FirstName: "Ada"},
	}}
	posts := &fakePostStore{}
	svc := NewService(posts, accounts)
	ctx := context.Background()

	created, err := svc.Create(ctx, author, models.CreatePostRequest{Title: "T", Content: "C"})
	require.NoError(t, err)

	// The author renames; the stored post keeps the old snapshot.
	acc := accounts.accounts[author]
	acc.FirstName = "Augusta"
	accounts.accounts[author] = acc

	got, err := svc.posts.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada", got.FirstName)
}
