package domain

import (
	"testing"

	"github.com/fanpassport/backend/internal/model"
	"github.com/fanpassport/backend/internal/repository"
	"github.com/fanpassport/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestClubDomain() ClubDomain {
	db := testutil.CreateFixtureDb()
	return NewClubDomain(
		repository.NewClubRepository(db),
		repository.NewSettingRepository(db),
	)
}

func Test_clubDomain_GetClubs(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newTestClubDomain()

	resp, err := domain.GetClubs(ctx, &model.GetClubsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Clubs, 2)
	require.Equal(t, "FC United", resp.Clubs[1].Name)

	club, err := domain.GetClub(ctx, &model.GetClubRequest{ID: testutil.Club1ID})
	require.NoError(t, err)
	require.Equal(t, "Football Club United", club.FullName)
	require.Equal(t, "The club of the north stand.", club.Description)

	_, err = domain.GetClub(ctx, &model.GetClubRequest{ID: "nowhere"})
	require.Error(t, err)
}

func Test_clubDomain_CurrentClub(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newTestClubDomain()

	// Without a stored selection the first club is the current one.
	current, err := domain.GetCurrentClub(ctx, &model.GetCurrentClubRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.Club2ID, current.ClubID)

	_, err = domain.SetCurrentClub(ctx, &model.SetCurrentClubRequest{ClubID: "nowhere"})
	require.Error(t, err)

	_, err = domain.SetCurrentClub(ctx, &model.SetCurrentClubRequest{ClubID: testutil.Club1ID})
	require.NoError(t, err)

	current, err = domain.GetCurrentClub(ctx, &model.GetCurrentClubRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.Club1ID, current.ClubID)
}
