package lending

import (
	"context"
	"testing"
	"time"

	"github.com/project/lending/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateAuthor(t *testing.T) {
	t.Parallel()
	ctx, r, s := initLendingTest(t)

	const name = "Test Testovich"
	born := time.Date(1870, time.April, 22, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		errRequire error
	}{
		{name: "valid creation", errRequire: nil},
		{name: "creation with internal error", errRequire: errInternalStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tErr := tt.errRequire
			r.authors.EXPECT().CreateAuthor(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, input entity.Author) (entity.Author, error) {
					if tErr != nil {
						return entity.Author{}, tErr
					}
					input.ID = 1
					return input, nil
				})

			author, err := s.CreateAuthor(ctx, name, "biography", born)
			require.ErrorIs(t, err, tErr)
			if err != nil {
				require.Empty(t, author)
				return
			}
			require.Equal(t, name, author.Name)
			require.Equal(t, born, author.Born)
		})
	}
}

func TestUpdateAuthorFields(t *testing.T) {
	t.Parallel()
	ctx, r, s := initLendingTest(t)

	born := time.Date(1870, time.April, 22, 0, 0, 0, 0, time.UTC)

	r.authors.EXPECT().UpdateAuthor(ctx, int64(1), map[string]any{
		"name":      "new name",
		"biography": "new biography",
		"born":      born,
	}).Return(entity.Author{ID: 1, Name: "new name"}, nil)

	author, err := s.UpdateAuthor(ctx, 1, "new name", "new biography", born)
	require.NoError(t, err)
	require.Equal(t, "new name", author.Name)
}

func TestDeleteAuthorGuard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		linked     int64
		wantErr    error
		wantMsg    string
		wantDelete bool
	}{
		{name: "free author is deleted", linked: 0, wantDelete: true},
		{
			name:    "linked author is refused",
			linked:  3,
			wantErr: entity.ErrConflict,
			wantMsg: "can not delete author, because there are 3 links to books",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx, r, s := initLendingTest(t)

			r.authorBooks.EXPECT().CountLeftLinks(ctx, int64(1)).Return(tt.linked, nil)
			if tt.wantDelete {
				r.authors.EXPECT().DeleteAuthor(ctx, int64(1)).Return(entity.Author{ID: 1}, nil)
			}

			author, err := s.DeleteAuthor(ctx, 1)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorContains(t, err, tt.wantMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, int64(1), author.ID)
		})
	}
}

func TestDeleteGenreGuard(t *testing.T) {
	t.Parallel()
	ctx, r, s := initLendingTest(t)

	r.genreBooks.EXPECT().CountLeftLinks(ctx, int64(2)).Return(int64(1), nil)

	_, err := s.DeleteGenre(ctx, 2)
	require.ErrorIs(t, err, entity.ErrConflict)
	require.ErrorContains(t, err, "can not delete genre, because there are 1 links to books")
}

// DeleteBook checks author links, genre links, copies out and loan
// history in that order; the first failing guard names the refusal.
func TestDeleteBookGuards(t *testing.T) {
	t.Parallel()

	const idBook = int64(5)

	tests := []struct {
		name    string
		expect  func(ctx context.Context, r *testRepos)
		wantMsg string
	}{
		{
			name: "author links win",
			expect: func(ctx context.Context, r *testRepos) {
				r.authorBooks.EXPECT().CountRightLinks(ctx, idBook).Return(int64(2), nil)
			},
			wantMsg: "can not delete book, because there are 2 links to authors",
		},
		{
			name: "genre links next",
			expect: func(ctx context.Context, r *testRepos) {
				r.authorBooks.EXPECT().CountRightLinks(ctx, idBook).Return(int64(0), nil)
				r.genreBooks.EXPECT().CountRightLinks(ctx, idBook).Return(int64(1), nil)
			},
			wantMsg: "can not delete book, because there are 1 links to genres",
		},
		{
			name: "copies out next",
			expect: func(ctx context.Context, r *testRepos) {
				r.authorBooks.EXPECT().CountRightLinks(ctx, idBook).Return(int64(0), nil)
				r.genreBooks.EXPECT().CountRightLinks(ctx, idBook).Return(int64(0), nil)
				r.queries.EXPECT().BookReaders(ctx, idBook, false, int64(0), int64(1)).Return([]entity.User{{ID: 1}}, nil)
			},
			wantMsg: "can not delete book, because there are 1 copies out",
		},
		{
			name: "loan history last",
			expect: func(ctx context.Context, r *testRepos) {
				r.authorBooks.EXPECT().CountRightLinks(ctx, idBook).Return(int64(0), nil)
				r.genreBooks.EXPECT().CountRightLinks(ctx, idBook).Return(int64(0), nil)
				r.queries.EXPECT().BookReaders(ctx, idBook, false, int64(0), int64(1)).Return(nil, nil)
				r.loans.EXPECT().CountRightLinks(ctx, idBook).Return(int64(4), nil)
			},
			wantMsg: "can not delete book, because there are 4 links to users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx, r, s := initLendingTest(t)

			tt.expect(ctx, r)

			_, err := s.DeleteBook(ctx, idBook)
			require.ErrorIs(t, err, entity.ErrConflict)
			require.ErrorContains(t, err, tt.wantMsg)
		})
	}
}

func TestDeleteBookClean(t *testing.T) {
	t.Parallel()
	ctx, r, s := initLendingTest(t)

	const idBook = int64(5)

	r.authorBooks.EXPECT().CountRightLinks(ctx, idBook).Return(int64(0), nil)
	r.genreBooks.EXPECT().CountRightLinks(ctx, idBook).Return(int64(0), nil)
	r.queries.EXPECT().BookReaders(ctx, idBook, false, int64(0), int64(1)).Return(nil, nil)
	r.loans.EXPECT().CountRightLinks(ctx, idBook).Return(int64(0), nil)
	r.books.EXPECT().DeleteBook(ctx, idBook).Return(entity.Book{ID: idBook}, nil)

	book, err := s.DeleteBook(ctx, idBook)
	require.NoError(t, err)
	require.Equal(t, idBook, book.ID)
}

func TestUpdateBookLeavesAmountAlone(t *testing.T) {
	t.Parallel()
	ctx, r, s := initLendingTest(t)

	r.books.EXPECT().UpdateBook(ctx, int64(5), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, fields map[string]any) (entity.Book, error) {
			require.NotContains(t, fields, "amount")
			return entity.Book{ID: 5}, nil
		})

	_, err := s.UpdateBook(ctx, 5, "name", "description", 1999)
	require.NoError(t, err)
}

func TestLinkManagement(t *testing.T) {
	t.Parallel()
	ctx, r, s := initLendingTest(t)

	r.authorBooks.EXPECT().CreateLink(ctx, int64(1), int64(5)).Return(nil)
	require.NoError(t, s.LinkAuthorBook(ctx, 1, 5))

	r.authorBooks.EXPECT().DeleteLink(ctx, int64(1), int64(5)).Return(int64(1), nil)
	removed, err := s.UnlinkAuthorBook(ctx, 1, 5)
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)

	r.genreBooks.EXPECT().CreateLink(ctx, int64(2), int64(5)).Return(nil)
	require.NoError(t, s.LinkGenreBook(ctx, 2, 5))

	r.genreBooks.EXPECT().DeleteRightLinks(ctx, int64(5)).Return(int64(2), nil)
	removed, err = s.UnlinkBookGenres(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, int64(2), removed)

	r.loans.EXPECT().DeleteRightLinksReturned(ctx, int64(5), true).Return(int64(3), nil)
	removed, err = s.PurgeBookReturnedLoans(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, int64(3), removed)
}
