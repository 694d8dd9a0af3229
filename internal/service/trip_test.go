package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbook/internal/domain"
	"travelbook/internal/service"
)

// ---- Create ----------------------------------------------------------------

func TestTripService_Create_OK(t *testing.T) {
	stored := tripWithTags(uuid.New(), domain.Tag{ID: "food", Name: "Food", ColorID: "yellow"})

	svc := service.NewTripService(&mockTripRepo{
		create: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			return stored, nil
		},
	}, nil)

	got, err := svc.Create(context.Background(), domain.Trip{Name: "Kyoto", Days: 5})

	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
}

func TestTripService_Create_NameRequired(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{}, nil)

	_, err := svc.Create(context.Background(), domain.Trip{Name: "   "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// A trip created without tags gets the three defaults, in order.
func TestTripService_Create_SeedsDefaultTags(t *testing.T) {
	var created domain.Trip
	svc := service.NewTripService(&mockTripRepo{
		create: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			created = trip
			return trip, nil
		},
	}, nil)

	_, err := svc.Create(context.Background(), domain.Trip{Name: "Kyoto"})

	require.NoError(t, err)
	require.Len(t, created.Tags, 3)
	assert.Equal(t, "sightseeing", created.Tags[0].ID)
	assert.Equal(t, "transport", created.Tags[1].ID)
	assert.Equal(t, "food", created.Tags[2].ID)
}

func TestTripService_Create_ClampsDaysToOne(t *testing.T) {
	var created domain.Trip
	svc := service.NewTripService(&mockTripRepo{
		create: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			created = trip
			return trip, nil
		},
	}, nil)

	_, err := svc.Create(context.Background(), domain.Trip{Name: "Kyoto", Days: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, created.Days)
}

func TestTripService_Create_CoverImageTooLarge(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{}, nil)

	oversized := strings.Repeat("a", domain.MaxImageBytes+1)
	_, err := svc.Create(context.Background(), domain.Trip{Name: "Kyoto", CoverImage: oversized})

	assert.ErrorIs(t, err, domain.ErrImageTooLarge)
}

// ---- List ------------------------------------------------------------------

func TestTripService_List_NilBecomesEmptySlice(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) {
			return nil, nil
		},
	}, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- Update ----------------------------------------------------------------

func TestTripService_Update_PublishesSnapshot(t *testing.T) {
	tripID := uuid.New()
	pub := &mockPublisher{}
	svc := service.NewTripService(&mockTripRepo{
		update: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			return trip, nil
		},
	}, pub)

	_, err := svc.Update(context.Background(), domain.Trip{ID: tripID, Name: "Kyoto", Days: 5})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{tripID}, pub.published)
}

func TestTripService_Update_NotFound(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{
		update: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}, nil)

	_, err := svc.Update(context.Background(), domain.Trip{ID: uuid.New(), Name: "Kyoto"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- SetDayCount -----------------------------------------------------------

func TestTripService_SetDayCount_ClampsToOne(t *testing.T) {
	var gotDays int
	svc := service.NewTripService(&mockTripRepo{
		updateDays: func(_ context.Context, id uuid.UUID, days int) (domain.Trip, error) {
			gotDays = days
			return domain.Trip{ID: id, Days: days}, nil
		},
	}, nil)

	_, err := svc.SetDayCount(context.Background(), uuid.New(), -3)

	require.NoError(t, err)
	assert.Equal(t, 1, gotDays)
}

// ---- AddTag ----------------------------------------------------------------

func TestTripService_AddTag_AppendsToExisting(t *testing.T) {
	tripID := uuid.New()
	existing := domain.Tag{ID: "food", Name: "Food", ColorID: "yellow"}

	var gotTags []domain.Tag
	svc := service.NewTripService(&mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			return tripWithTags(id, existing), nil
		},
		updateTags: func(_ context.Context, id uuid.UUID, tags []domain.Tag) (domain.Trip, error) {
			gotTags = tags
			return tripWithTags(id, tags...), nil
		},
	}, nil)

	got, err := svc.AddTag(context.Background(), tripID, domain.Tag{ID: "onsen", Name: "Onsen", ColorID: "purple"})

	require.NoError(t, err)
	require.Len(t, gotTags, 2)
	assert.Equal(t, "food", gotTags[0].ID)
	assert.Equal(t, "onsen", gotTags[1].ID)
	assert.Len(t, got.Tags, 2)
}

// Adding a tag whose ID already exists is a silent no-op: no write, no
// publish, and the unchanged trip comes back.
func TestTripService_AddTag_DuplicateIDIsNoOp(t *testing.T) {
	tripID := uuid.New()
	existing := domain.Tag{ID: "food", Name: "Food", ColorID: "yellow"}
	pub := &mockPublisher{}

	svc := service.NewTripService(&mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			return tripWithTags(id, existing), nil
		},
		// updateTags deliberately unset: calling it would panic the test.
	}, pub)

	got, err := svc.AddTag(context.Background(), tripID, domain.Tag{ID: "food", Name: "Renamed", ColorID: "red"})

	require.NoError(t, err)
	assert.Len(t, got.Tags, 1)
	assert.Equal(t, "Food", got.Tags[0].Name)
	assert.Empty(t, pub.published)
}

// Duplicate names are allowed; only the ID is identity.
func TestTripService_AddTag_DuplicateNameAllowed(t *testing.T) {
	tripID := uuid.New()
	existing := domain.Tag{ID: "food", Name: "Food", ColorID: "yellow"}

	var gotTags []domain.Tag
	svc := service.NewTripService(&mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			return tripWithTags(id, existing), nil
		},
		updateTags: func(_ context.Context, id uuid.UUID, tags []domain.Tag) (domain.Trip, error) {
			gotTags = tags
			return tripWithTags(id, tags...), nil
		},
	}, nil)

	_, err := svc.AddTag(context.Background(), tripID, domain.Tag{ID: "street-food", Name: "Food", ColorID: "red"})

	require.NoError(t, err)
	assert.Len(t, gotTags, 2)
}

func TestTripService_AddTag_GeneratesMissingID(t *testing.T) {
	tripID := uuid.New()

	var gotTags []domain.Tag
	svc := service.NewTripService(&mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			return tripWithTags(id), nil
		},
		updateTags: func(_ context.Context, id uuid.UUID, tags []domain.Tag) (domain.Trip, error) {
			gotTags = tags
			return tripWithTags(id, tags...), nil
		},
	}, nil)

	_, err := svc.AddTag(context.Background(), tripID, domain.Tag{Name: "Onsen", ColorID: "purple"})

	require.NoError(t, err)
	require.Len(t, gotTags, 1)
	_, parseErr := uuid.Parse(gotTags[0].ID)
	assert.NoError(t, parseErr)
}

func TestTripService_AddTag_NameRequired(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{}, nil)

	_, err := svc.AddTag(context.Background(), uuid.New(), domain.Tag{ID: "x", Name: ""})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Delete ----------------------------------------------------------------

func TestTripService_Delete_PropagatesRepoError(t *testing.T) {
	boom := errors.New("connection reset")
	svc := service.NewTripService(&mockTripRepo{
		delete: func(_ context.Context, _ uuid.UUID) error {
			return boom
		},
	}, nil)

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, boom)
}
