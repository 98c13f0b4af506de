package friends

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinetech/api/internal/user"
)

type edge struct {
	userID   uuid.UUID
	friendID uuid.UUID
}

type fakeFriendStore struct {
	edges    map[edge]bool
	order    []edge
	profiles map[uuid.UUID]user.Profile
}

func newFakeFriendStore() *fakeFriendStore {
	return &fakeFriendStore{
		edges:    make(map[edge]bool),
		profiles: make(map[uuid.UUID]user.Profile),
	}
}

func (s *fakeFriendStore) Insert(ctx context.Context, userID, friendID uuid.UUID) error {
	e := edge{userID: userID, friendID: friendID}
	if s.edges[e] {
		return ErrAlreadyFriends
	}
	s.edges[e] = true
	s.order = append(s.order, e)
	return nil
}

func (s *fakeFriendStore) Delete(ctx context.Context, userID, friendID uuid.UUID) (bool, error) {
	e := edge{userID: userID, friendID: friendID}
	if !s.edges[e] {
		return false, nil
	}
	delete(s.edges, e)
	return true, nil
}

func (s *fakeFriendStore) List(ctx context.Context, userID uuid.UUID) ([]user.Profile, error) {
	var profiles []user.Profile
	for i := len(s.order) - 1; i >= 0; i-- {
		e := s.order[i]
		if e.userID != userID || !s.edges[e] {
			continue
		}
		profiles = append(profiles, s.profiles[e.friendID])
	}
	return profiles, nil
}

type fakeDirectory struct {
	byUsername map[string]*user.User
}

func (d *fakeDirectory) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	existing, ok := d.byUsername[username]
	if !ok {
		return nil, user.ErrNotFound
	}
	copied := *existing
	return &copied, nil
}

func newFriendsFixture() (*Service, *fakeFriendStore, *fakeDirectory) {
	store := newFakeFriendStore()
	directory := &fakeDirectory{byUsername: make(map[string]*user.User)}
	return NewService(store, directory), store, directory
}

func addAccount(store *fakeFriendStore, directory *fakeDirectory, username string) *user.User {
	account := &user.User{
		ID:       uuid.New(),
		Email:    username + "@example.com",
		Username: username,
		Verified: true,
	}
	directory.byUsername[username] = account
	store.profiles[account.ID] = account.ToProfile()
	return account
}

func TestAddFriendByUsername(t *testing.T) {
	service, store, directory := newFriendsFixture()
	me := addAccount(store, directory, "ellen")
	other := addAccount(store, directory, "dallas")

	profile, err := service.Add(context.Background(), me.ID, "dallas")

	require.NoError(t, err)
	assert.Equal(t, other.ID, profile.ID)
	assert.Equal(t, "dallas", profile.Username)

	friends, err := service.List(context.Background(), me.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, other.ID, friends[0].ID)
}

func TestAddFriendUnknownUsername(t *testing.T) {
	service, store, directory := newFriendsFixture()
	me := addAccount(store, directory, "ellen")

	_, err := service.Add(context.Background(), me.ID, "ghost")
	assert.ErrorIs(t, err, ErrFriendNotFound)

	_, err = service.Add(context.Background(), me.ID, "   ")
	assert.ErrorIs(t, err, ErrFriendNotFound)
}

func TestAddFriendSelf(t *testing.T) {
	service, store, directory := newFriendsFixture()
	me := addAccount(store, directory, "ellen")

	_, err := service.Add(context.Background(), me.ID, "ellen")
	assert.ErrorIs(t, err, ErrSelfFriend)
}

func TestAddFriendTwice(t *testing.T) {
	service, store, directory := newFriendsFixture()
	me := addAccount(store, directory, "ellen")
	addAccount(store, directory, "dallas")

	_, err := service.Add(context.Background(), me.ID, "dallas")
	require.NoError(t, err)

	_, err = service.Add(context.Background(), me.ID, "dallas")
	assert.ErrorIs(t, err, ErrAlreadyFriends)
}

func TestFriendshipIsDirected(t *testing.T) {
	service, store, directory := newFriendsFixture()
	me := addAccount(store, directory, "ellen")
	other := addAccount(store, directory, "dallas")

	_, err := service.Add(context.Background(), me.ID, "dallas")
	require.NoError(t, err)

	// The reverse edge does not exist until dallas adds ellen
	theirs, err := service.List(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	_, err = service.Add(context.Background(), other.ID, "ellen")
	require.NoError(t, err)

	theirs, err = service.List(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}

func TestRemoveFriend(t *testing.T) {
	service, store, directory := newFriendsFixture()
	me := addAccount(store, directory, "ellen")
	other := addAccount(store, directory, "dallas")

	_, err := service.Add(context.Background(), me.ID, "dallas")
	require.NoError(t, err)

	removed, err := service.Remove(context.Background(), me.ID, other.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = service.Remove(context.Background(), me.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, removed, "removing a missing edge is a no-op")

	friends, err := service.List(context.Background(), me.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestListNewestFirst(t *testing.T) {
	service, store, directory := newFriendsFixture()
	me := addAccount(store, directory, "ellen")
	addAccount(store, directory, "dallas")
	addAccount(store, directory, "lambert")

	_, err := service.Add(context.Background(), me.ID, "dallas")
	require.NoError(t, err)
	_, err = service.Add(context.Background(), me.ID, "lambert")
	require.NoError(t, err)

	friends, err := service.List(context.Background(), me.ID)

	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "lambert", friends[0].Username)
	assert.Equal(t, "dallas", friends[1].Username)
}
