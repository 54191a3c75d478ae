package review_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	appreview "github.com/muhammadheryan/micromarket/application/review"
	"github.com/muhammadheryan/micromarket/constant"
	reviewappmocks "github.com/muhammadheryan/micromarket/mocks/application/review"
	sessionmocks "github.com/muhammadheryan/micromarket/mocks/application/session"
	reviewmocks "github.com/muhammadheryan/micromarket/mocks/repository/review"
	rabbitmocks "github.com/muhammadheryan/micromarket/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/micromarket/model"
	"github.com/muhammadheryan/micromarket/thirdparty/marketapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewApp_Submit(t *testing.T) {
	type fields struct {
		reviewRepo *reviewmocks.ReviewRepository
		session    *sessionmocks.Provider
		catalog    *reviewappmocks.Catalog
		publisher  *rabbitmocks.Publisher
	}
	valid := &model.ReviewRequest{SupplierID: "s1", Rating: 5, Comment: "Crisp lettuce"}
	stored := &model.Review{ID: "r1", VendorID: "v1", SupplierID: "s1", Rating: 5, Comment: "Crisp lettuce"}

	newFields := func(t *testing.T, token string) fields {
		f := fields{
			reviewRepo: reviewmocks.NewReviewRepository(t),
			session:    sessionmocks.NewProvider(t),
			catalog:    reviewappmocks.NewCatalog(t),
			publisher:  rabbitmocks.NewPublisher(t),
		}
		f.session.On("Token").Return(token).Maybe()
		f.session.On("Current").Return(&model.User{ID: "v1"}, token != "").Maybe()
		return f
	}

	tests := []struct {
		name      string
		token     string
		req       *model.ReviewRequest
		mockCall  func(f fields)
		want      *model.Review
		wantErr   string
		wantDraft bool
	}{
		{
			name:  "success: active stall reviews refreshed and draft cleared",
			token: "tok",
			req:   valid,
			mockCall: func(f fields) {
				f.reviewRepo.On("Create", mock.Anything, "tok", valid).Return(stored, nil).Once()
				f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e model.ActivityEvent) bool {
					return e.Type == constant.ActivityReviewSubmit && e.SupplierID == "s1" && e.UserID == "v1"
				})).Return(nil).Once()
				f.catalog.On("RefreshSuppliers", mock.Anything).Return(nil).Once()
				f.catalog.On("ActiveSupplierID").Return("s1").Once()
				f.catalog.On("RefreshReviews", mock.Anything, "s1").Return(nil).Once()
			},
			want: stored,
		},
		{
			name:  "success: other stall active, reviews untouched, refresh failure tolerated",
			token: "tok",
			req:   valid,
			mockCall: func(f fields) {
				f.reviewRepo.On("Create", mock.Anything, "tok", valid).Return(stored, nil).Once()
				f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
				f.catalog.On("RefreshSuppliers", mock.Anything).Return(errors.New("timeout")).Once()
				f.catalog.On("ActiveSupplierID").Return("s2").Once()
			},
			want: stored,
		},
		{
			name:      "error: rating out of range is rejected locally",
			token:     "tok",
			req:       &model.ReviewRequest{SupplierID: "s1", Rating: 6, Comment: "x"},
			wantErr:   "rating must be at most 5",
			wantDraft: true,
		},
		{
			name:      "error: empty comment",
			token:     "tok",
			req:       &model.ReviewRequest{SupplierID: "s1", Rating: 3},
			wantErr:   "comment is required",
			wantDraft: true,
		},
		{
			name:      "error: anonymous",
			req:       valid,
			wantErr:   "please login to continue",
			wantDraft: true,
		},
		{
			name:  "error: backend detail, draft kept",
			token: "tok",
			req:   valid,
			mockCall: func(f fields) {
				f.reviewRepo.On("Create", mock.Anything, "tok", valid).
					Return(nil, &marketapi.Error{StatusCode: http.StatusForbidden, Detail: "Only vendors can create reviews"}).Once()
			},
			wantErr:   "Only vendors can create reviews",
			wantDraft: true,
		},
		{
			name:  "error: generic message",
			token: "tok",
			req:   valid,
			mockCall: func(f fields) {
				f.reviewRepo.On("Create", mock.Anything, "tok", valid).Return(nil, errors.New("eof")).Once()
			},
			wantErr:   constant.MsgReviewFailed,
			wantDraft: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t, tt.token)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appreview.NewReviewApp(f.reviewRepo, f.session, f.catalog, f.publisher)

			got, err := app.Submit(context.Background(), tt.req)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			draft, ok := app.Draft(tt.req.SupplierID)
			assert.Equal(t, tt.wantDraft, ok)
			if ok {
				assert.Equal(t, *tt.req, draft)
			}
		})
	}
}

func TestReviewApp_Drafts(t *testing.T) {
	session := sessionmocks.NewProvider(t)
	var current *model.User
	session.On("Current").Return(func() (*model.User, bool) {
		return current, current != nil
	})
	app := appreview.NewReviewApp(reviewmocks.NewReviewRepository(t), session, reviewappmocks.NewCatalog(t), nil)

	current = &model.User{ID: "v1", Role: constant.RoleVendor}
	_, ok := app.Draft("s1")
	assert.False(t, ok)

	app.SaveDraft(model.ReviewRequest{SupplierID: "s1", Rating: 4, Comment: "half typed"})
	app.SaveDraft(model.ReviewRequest{SupplierID: "s2", Rating: 2})

	d, ok := app.Draft("s1")
	require.True(t, ok)
	assert.Equal(t, "half typed", d.Comment)
	d, ok = app.Draft("s2")
	require.True(t, ok)
	assert.Equal(t, 2, d.Rating)

	// another account never sees them
	current = &model.User{ID: "v2", Role: constant.RoleVendor}
	_, ok = app.Draft("s1")
	assert.False(t, ok)

	// and saving its own draft drops the previous account's ones
	app.SaveDraft(model.ReviewRequest{SupplierID: "s2", Rating: 5, Comment: "mine"})
	current = &model.User{ID: "v1", Role: constant.RoleVendor}
	_, ok = app.Draft("s1")
	assert.False(t, ok)
}

func TestReviewApp_Reset(t *testing.T) {
	session := sessionmocks.NewProvider(t)
	session.On("Current").Return(&model.User{ID: "v1"}, true)
	app := appreview.NewReviewApp(reviewmocks.NewReviewRepository(t), session, reviewappmocks.NewCatalog(t), nil)

	app.SaveDraft(model.ReviewRequest{SupplierID: "s1", Rating: 3, Comment: "unsent"})
	app.Reset()

	_, ok := app.Draft("s1")
	assert.False(t, ok)
}
